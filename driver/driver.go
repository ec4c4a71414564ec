// Package driver runs one merge as git invokes a merge driver: three
// files in, the merged local file out.
package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/signadot/sf-git-merge-driver/encode"
	"github.com/signadot/sf-git-merge-driver/ir"
	"github.com/signadot/sf-git-merge-driver/keys"
	"github.com/signadot/sf-git-merge-driver/merge"
	"github.com/signadot/sf-git-merge-driver/namespace"
	"github.com/signadot/sf-git-merge-driver/parse"
)

type Options struct {
	AncestorFile string
	OurFile      string
	TheirsFile   string
	// OutputFile defaults to OurFile.
	OutputFile string

	Config merge.Config
	Keys   *keys.Registry
	Log    *slog.Logger
}

type Result struct {
	HasConflict bool
	// Restored is set when the merge failed and the output holds the
	// local file unchanged.
	Restored bool
}

// Run merges the files named in opts and writes the output file. A
// failure to parse or encode is not returned: the local content is
// written back verbatim and reported as a conflict. Errors are returned
// only when the inputs cannot be read or the output cannot be written.
func Run(ctx context.Context, opts Options) (Result, error) {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	out := opts.OutputFile
	if out == "" {
		out = opts.OurFile
	}
	var ancestor, local, other []byte
	g, _ := errgroup.WithContext(ctx)
	for _, in := range []struct {
		path string
		dst  *[]byte
	}{
		{opts.AncestorFile, &ancestor},
		{opts.OurFile, &local},
		{opts.TheirsFile, &other},
	} {
		g.Go(func() error {
			d, err := os.ReadFile(in.path)
			if err != nil {
				return fmt.Errorf("could not read %q: %w", in.path, err)
			}
			*in.dst = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{HasConflict: true}, err
	}
	mode := fs.FileMode(0o644)
	if fi, err := os.Stat(opts.OurFile); err == nil {
		mode = fi.Mode().Perm()
	}

	merged, conflict, err := MergeDocuments(ctx, ancestor, local, other, opts.Config, opts.Keys)
	if err != nil {
		log.Error("merge failed, keeping local version", "file", opts.OurFile, "error", err)
		if werr := os.WriteFile(out, local, mode); werr != nil {
			return Result{HasConflict: true}, fmt.Errorf("could not restore %q: %w", out, errors.Join(err, werr))
		}
		return Result{HasConflict: true, Restored: true}, nil
	}
	if err := os.WriteFile(out, merged, mode); err != nil {
		return Result{HasConflict: true}, fmt.Errorf("could not write %q: %w", out, err)
	}
	log.Debug("merged", "file", opts.OurFile, "conflict", conflict)
	return Result{HasConflict: conflict}, nil
}

// MergeDocuments merges three XML documents in memory. The output keeps
// the line endings of local.
func MergeDocuments(ctx context.Context, ancestor, local, other []byte, cfg merge.Config, reg *keys.Registry, opts ...encode.EncodeOption) ([]byte, bool, error) {
	crlf := bytes.Contains(local, []byte("\r\n"))
	var docs [3]*ir.Node
	g, _ := errgroup.WithContext(ctx)
	for i, d := range [][]byte{ancestor, local, other} {
		g.Go(func() error {
			doc, err := parse.Parse(bytes.ReplaceAll(d, []byte("\r\n"), []byte("\n")))
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}
	a, l, o := docs[0], docs[1], docs[2]
	ns := namespace.Merge(namespace.Strip(l), namespace.Strip(o), namespace.Strip(a))

	res := merge.New(cfg, reg).MergeDocument(a, l, o)
	frags := header(l, o, a)
	frags = append(frags, namespace.Inject(res.Output, ns)...)

	buf := bytes.NewBuffer(nil)
	opts = append([]encode.EncodeOption{encode.EncodeMarkers(cfg)}, opts...)
	if err := encode.Encode(frags, buf, opts...); err != nil {
		return nil, false, err
	}
	d := buf.Bytes()
	if crlf {
		d = bytes.ReplaceAll(d, []byte("\n"), []byte("\r\n"))
	}
	return d, res.HasConflict, nil
}

// header renders what precedes the root element of the first document
// that has a root: the declaration and leading comments.
func header(docs ...*ir.Node) []*ir.Node {
	for _, doc := range docs {
		if merge.RootName(doc) == "" {
			continue
		}
		var res []*ir.Node
		for i, f := range doc.Fields {
			if f != merge.DeclarationKey && f != merge.CommentKey {
				break
			}
			res = append(res, merge.Fragments(f, doc.Values[i])...)
		}
		return res
	}
	return nil
}
