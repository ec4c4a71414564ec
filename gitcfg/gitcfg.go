// Package gitcfg registers the merge driver with git: the
// merge.<driver>.* configuration and the attributes lines routing
// metadata files to it.
package gitcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var ErrNotRepo = errors.New("not a git repository")

const (
	DefaultDriver      = "salesforce-source"
	DefaultBinary      = "sf-git-merge-driver"
	DefaultDescription = "Salesforce source merge driver"
)

var DefaultPatterns = []string{"*.xml"}

type Options struct {
	Dir      string
	Driver   string
	Binary   string
	Patterns []string
	// LocalAttributes writes .git/info/attributes rather than the
	// committed .gitattributes.
	LocalAttributes bool
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.Driver == "" {
		o.Driver = DefaultDriver
	}
	if o.Binary == "" {
		o.Binary = DefaultBinary
	}
	if len(o.Patterns) == 0 {
		o.Patterns = DefaultPatterns
	}
	return o
}

// DriverCommand is the merge.<driver>.driver value: git substitutes
// %O, %A, %B and %L.
func DriverCommand(binary string) string {
	return binary + " run --ancestor-file %O --our-file %A --theirs-file %B --output-file %A --conflict-marker-size %L"
}

// Git runs git commands against one repository.
type Git struct {
	Dir string
}

func (g *Git) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", g.Dir}, args...)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
	}
	return strings.TrimSpace(string(out)), nil
}

type repo struct {
	top, gitDir string
}

func (g *Git) repo(ctx context.Context) (*repo, error) {
	top, err := g.Run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotRepo, g.Dir, err)
	}
	gitDir, err := g.Run(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotRepo, g.Dir, err)
	}
	return &repo{top: top, gitDir: gitDir}, nil
}

func (r *repo) attributesFile(local bool) string {
	if local {
		return filepath.Join(r.gitDir, "info", "attributes")
	}
	return filepath.Join(r.top, ".gitattributes")
}

// Install writes the driver configuration into the repository's local
// git config and adds the attributes lines.
func Install(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()
	g := &Git{Dir: opts.Dir}
	r, err := g.repo(ctx)
	if err != nil {
		return err
	}
	section := "merge." + opts.Driver
	for _, kv := range [][2]string{
		{section + ".name", DefaultDescription},
		{section + ".driver", DriverCommand(opts.Binary)},
		{section + ".recursive", "binary"},
	} {
		if _, err := g.Run(ctx, "config", kv[0], kv[1]); err != nil {
			return err
		}
	}
	return AddAttributes(r.attributesFile(opts.LocalAttributes), opts.Patterns, opts.Driver)
}

// Uninstall removes the driver configuration and every attributes line
// routing to the driver, from both attributes files.
func Uninstall(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()
	g := &Git{Dir: opts.Dir}
	r, err := g.repo(ctx)
	if err != nil {
		return err
	}
	if _, err := g.Run(ctx, "config", "--get-regexp", "^merge\\."+opts.Driver+"\\."); err == nil {
		if _, err := g.Run(ctx, "config", "--remove-section", "merge."+opts.Driver); err != nil {
			return err
		}
	}
	for _, local := range []bool{false, true} {
		if err := RemoveAttributes(r.attributesFile(local), opts.Driver); err != nil {
			return err
		}
	}
	return nil
}

// AttributeLine is the attributes line routing pattern to driver.
func AttributeLine(pattern, driver string) string {
	return pattern + " merge=" + driver
}

// AddAttributes appends the lines for patterns missing from the
// attributes file at path, creating it if needed.
func AddAttributes(path string, patterns []string, driver string) error {
	d, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	have := map[string]bool{}
	for _, ln := range strings.Split(string(d), "\n") {
		have[strings.Join(strings.Fields(ln), " ")] = true
	}
	buf := bytes.NewBuffer(d)
	if len(d) != 0 && !bytes.HasSuffix(d, []byte("\n")) {
		buf.WriteByte('\n')
	}
	added := false
	for _, p := range patterns {
		ln := AttributeLine(p, driver)
		if have[ln] {
			continue
		}
		buf.WriteString(ln + "\n")
		have[ln] = true
		added = true
	}
	if !added {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// RemoveAttributes drops the lines of the attributes file at path that
// route to driver. A missing file is left missing.
func RemoveAttributes(path, driver string) error {
	d, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	attr := "merge=" + driver
	lines := strings.SplitAfter(string(d), "\n")
	kept := lines[:0]
	for _, ln := range lines {
		fields := strings.Fields(ln)
		drop := false
		for _, f := range fields[min(1, len(fields)):] {
			drop = drop || f == attr
		}
		if !drop {
			kept = append(kept, ln)
		}
	}
	res := strings.Join(kept, "")
	if res == string(d) {
		return nil
	}
	return os.WriteFile(path, []byte(res), 0o644)
}
