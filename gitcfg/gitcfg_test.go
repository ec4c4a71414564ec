package gitcfg

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverCommand(t *testing.T) {
	assert.Equal(t,
		"/usr/local/bin/sfm run --ancestor-file %O --our-file %A --theirs-file %B --output-file %A --conflict-marker-size %L",
		DriverCommand("/usr/local/bin/sfm"))
}

func TestAttributes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info", "attributes")
	require.NoError(t, RemoveAttributes(path, "d"))
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("*.png binary"), 0o644))
	require.NoError(t, AddAttributes(path, []string{"*.xml", "*.cls"}, "d"))
	require.NoError(t, AddAttributes(path, []string{"*.xml"}, "d"))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "*.png binary\n*.xml merge=d\n*.cls merge=d\n", string(got))

	require.NoError(t, os.WriteFile(path, append(got, []byte("*.md merge=other\n")...), 0o644))
	require.NoError(t, RemoveAttributes(path, "d"))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "*.png binary\n*.md merge=other\n", string(got))
}

func gitRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	g := &Git{Dir: dir}
	_, err := g.Run(context.Background(), "init", "-q")
	require.NoError(t, err)
	return dir
}

func TestInstallUninstall(t *testing.T) {
	dir := gitRepo(t)
	ctx := context.Background()
	g := &Git{Dir: dir}
	require.NoError(t, Install(ctx, Options{Dir: dir, Binary: "sfm"}))

	got, err := g.Run(ctx, "config", "merge."+DefaultDriver+".driver")
	require.NoError(t, err)
	assert.Equal(t, DriverCommand("sfm"), got)
	got, err = g.Run(ctx, "config", "merge."+DefaultDriver+".recursive")
	require.NoError(t, err)
	assert.Equal(t, "binary", got)
	attrs, err := os.ReadFile(filepath.Join(dir, ".gitattributes"))
	require.NoError(t, err)
	assert.Equal(t, "*.xml merge="+DefaultDriver+"\n", string(attrs))

	require.NoError(t, Uninstall(ctx, Options{Dir: dir}))
	_, err = g.Run(ctx, "config", "merge."+DefaultDriver+".driver")
	assert.Error(t, err)
	attrs, err = os.ReadFile(filepath.Join(dir, ".gitattributes"))
	require.NoError(t, err)
	assert.Empty(t, string(attrs))

	// nothing left to remove
	require.NoError(t, Uninstall(ctx, Options{Dir: dir}))
}

func TestInstallLocalAttributes(t *testing.T) {
	dir := gitRepo(t)
	require.NoError(t, Install(context.Background(), Options{Dir: dir, LocalAttributes: true, Patterns: []string{"*.profile-meta.xml"}}))
	attrs, err := os.ReadFile(filepath.Join(dir, ".git", "info", "attributes"))
	require.NoError(t, err)
	assert.Contains(t, string(attrs), "*.profile-meta.xml merge="+DefaultDriver+"\n")
	_, err = os.Stat(filepath.Join(dir, ".gitattributes"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNotRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	err := Install(context.Background(), Options{Dir: t.TempDir()})
	assert.ErrorIs(t, err, ErrNotRepo)
}
