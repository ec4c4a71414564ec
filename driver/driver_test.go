package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/sf-git-merge-driver/keys"
	"github.com/signadot/sf-git-merge-driver/merge"
)

const profileTmpl = `<?xml version="1.0" encoding="UTF-8"?>
<Profile xmlns="http://soap.sforce.com/2006/04/metadata">
    <custom>false</custom>
    <fieldPermissions>
        <editable>%EDIT%</editable>
        <field>Account.Name</field>
        <readable>%READ%</readable>
    </fieldPermissions>
</Profile>
`

func profile(edit, read string) string {
	return strings.NewReplacer("%EDIT%", edit, "%READ%", read).Replace(profileTmpl)
}

type files struct {
	dir                     string
	ancestor, ours, theirs string
}

func writeFiles(t *testing.T, ancestor, ours, theirs string) files {
	t.Helper()
	dir := t.TempDir()
	fs := files{
		dir:      dir,
		ancestor: filepath.Join(dir, "base.xml"),
		ours:     filepath.Join(dir, "ours.xml"),
		theirs:   filepath.Join(dir, "theirs.xml"),
	}
	require.NoError(t, os.WriteFile(fs.ancestor, []byte(ancestor), 0o644))
	require.NoError(t, os.WriteFile(fs.ours, []byte(ours), 0o644))
	require.NoError(t, os.WriteFile(fs.theirs, []byte(theirs), 0o644))
	return fs
}

func (fs files) options() Options {
	return Options{
		AncestorFile: fs.ancestor,
		OurFile:      fs.ours,
		TheirsFile:   fs.theirs,
		Config:       merge.DefaultConfig(),
		Keys:         keys.Default(),
	}
}

func TestRunClean(t *testing.T) {
	fs := writeFiles(t, profile("false", "true"), profile("true", "true"), profile("false", "false"))
	res, err := Run(context.Background(), fs.options())
	require.NoError(t, err)
	assert.False(t, res.HasConflict)
	assert.False(t, res.Restored)

	got, err := os.ReadFile(fs.ours)
	require.NoError(t, err)
	assert.Equal(t, profile("true", "false"), string(got))
}

func TestRunConflict(t *testing.T) {
	fs := writeFiles(t, profile("false", "true"), profile("true", "true"), profile("maybe", "true"))
	res, err := Run(context.Background(), fs.options())
	require.NoError(t, err)
	assert.True(t, res.HasConflict)

	got, err := os.ReadFile(fs.ours)
	require.NoError(t, err)
	want := `<?xml version="1.0" encoding="UTF-8"?>
<Profile xmlns="http://soap.sforce.com/2006/04/metadata">
    <custom>false</custom>
    <fieldPermissions>
<<<<<<< LOCAL
        <editable>true</editable>
||||||| BASE
        <editable>false</editable>
=======
        <editable>maybe</editable>
>>>>>>> REMOTE
        <field>Account.Name</field>
        <readable>true</readable>
    </fieldPermissions>
</Profile>
`
	assert.Equal(t, want, string(got))
}

func TestRunKeepsCRLF(t *testing.T) {
	crlf := func(s string) string { return strings.ReplaceAll(s, "\n", "\r\n") }
	fs := writeFiles(t, profile("false", "true"), crlf(profile("true", "true")), profile("false", "false"))
	_, err := Run(context.Background(), fs.options())
	require.NoError(t, err)
	got, err := os.ReadFile(fs.ours)
	require.NoError(t, err)
	assert.Equal(t, crlf(profile("true", "false")), string(got))
}

func TestRunRestoresOnParseFailure(t *testing.T) {
	ours := profile("true", "true")
	fs := writeFiles(t, profile("false", "true"), ours, "<Profile><custom>")
	opts := fs.options()
	opts.OutputFile = filepath.Join(fs.dir, "out.xml")
	res, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, res.HasConflict)
	assert.True(t, res.Restored)
	got, err := os.ReadFile(opts.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, ours, string(got))
}

func TestRunMissingInput(t *testing.T) {
	fs := writeFiles(t, "", "", "")
	opts := fs.options()
	opts.TheirsFile = filepath.Join(fs.dir, "nope.xml")
	res, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.True(t, res.HasConflict)
}

func TestMergeDocumentsAddedInBoth(t *testing.T) {
	// git passes an empty ancestor for files added on both sides
	doc := profile("true", "true")
	got, conflict, err := MergeDocuments(context.Background(), nil, []byte(doc), []byte(doc), merge.DefaultConfig(), keys.Default())
	require.NoError(t, err)
	assert.False(t, conflict)
	assert.Equal(t, doc, string(got))
}

func TestMergeDocumentsAttributeConflict(t *testing.T) {
	doc := func(attr string) []byte {
		return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<CustomField xmlns="http://soap.sforce.com/2006/04/metadata">
    <description attr="` + attr + `">d</description>
</CustomField>
`)
	}
	got, conflict, err := MergeDocuments(context.Background(), doc("a"), doc("b"), doc("c"), merge.DefaultConfig(), keys.Empty())
	require.NoError(t, err)
	assert.True(t, conflict)
	want := `<?xml version="1.0" encoding="UTF-8"?>
<CustomField xmlns="http://soap.sforce.com/2006/04/metadata">
<<<<<<< LOCAL
    <description attr="b">d</description>
||||||| BASE
    <description attr="a">d</description>
=======
    <description attr="c">d</description>
>>>>>>> REMOTE
</CustomField>
`
	assert.Equal(t, want, string(got))
}

func TestMergeDocumentsRootAttributeConflict(t *testing.T) {
	doc := func(kind string) []byte {
		return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<CustomField xmlns="http://soap.sforce.com/2006/04/metadata" kind="` + kind + `">
    <label>x</label>
</CustomField>
`)
	}
	got, conflict, err := MergeDocuments(context.Background(), doc("a"), doc("b"), doc("c"), merge.DefaultConfig(), keys.Empty())
	require.NoError(t, err)
	assert.True(t, conflict)
	want := `<?xml version="1.0" encoding="UTF-8"?>
<<<<<<< LOCAL
<CustomField xmlns="http://soap.sforce.com/2006/04/metadata" kind="b">
    <label>x</label>
</CustomField>
||||||| BASE
<CustomField xmlns="http://soap.sforce.com/2006/04/metadata" kind="a">
    <label>x</label>
</CustomField>
=======
<CustomField xmlns="http://soap.sforce.com/2006/04/metadata" kind="c">
    <label>x</label>
</CustomField>
>>>>>>> REMOTE
`
	assert.Equal(t, want, string(got))
}
