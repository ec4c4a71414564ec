// Package config loads the optional per repository settings file,
// .sf-merge.yaml, which adjusts conflict markers and adds key
// extractors:
//
//	conflictMarkerSize: 7
//	localTag: LOCAL
//	ancestorTag: BASE
//	otherTag: REMOTE
//	keys:
//	  myCustomElement: name + "." + type
//	ordered:
//	  - myCustomElement
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/signadot/sf-git-merge-driver/keys"
	"github.com/signadot/sf-git-merge-driver/merge"
)

var ErrConfig = errors.New("config error")

var Names = []string{".sf-merge.yaml", ".sf-merge.yml"}

type File struct {
	ConflictMarkerSize int               `yaml:"conflictMarkerSize,omitempty"`
	LocalTag           string            `yaml:"localTag,omitempty"`
	AncestorTag        string            `yaml:"ancestorTag,omitempty"`
	OtherTag           string            `yaml:"otherTag,omitempty"`
	Keys               map[string]string `yaml:"keys,omitempty"`
	Ordered            []string          `yaml:"ordered,omitempty"`

	// Path is the file the settings were read from, empty if none.
	Path string `yaml:"-"`
}

// Load reads the settings file found in dir or its nearest parent that
// has one. No file is not an error, the result is then the zero File.
func Load(dir string) (*File, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for {
		for _, name := range Names {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrConfig, err)
			}
			f, err := Parse(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			f.Path = path
			return f, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return &File{}, nil
		}
		dir = parent
	}
}

func Parse(d []byte) (*File, error) {
	f := &File{}
	if err := yaml.UnmarshalWithOptions(d, f, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if f.ConflictMarkerSize < 0 {
		return nil, fmt.Errorf("%w: negative conflictMarkerSize %d", ErrConfig, f.ConflictMarkerSize)
	}
	return f, nil
}

// MergeConfig builds the merge config from the file settings, then
// opts, so that opts take precedence.
func (f *File) MergeConfig(opts ...merge.ConfigOpt) (merge.Config, error) {
	var all []merge.ConfigOpt
	if f.ConflictMarkerSize != 0 {
		all = append(all, merge.WithMarkerSize(f.ConflictMarkerSize))
	}
	if f.LocalTag != "" {
		all = append(all, merge.WithLocalTag(f.LocalTag))
	}
	if f.AncestorTag != "" {
		all = append(all, merge.WithAncestorTag(f.AncestorTag))
	}
	if f.OtherTag != "" {
		all = append(all, merge.WithOtherTag(f.OtherTag))
	}
	return merge.NewConfig(append(all, opts...)...)
}

// Registry extends base with the extractors and ordered fields of f.
func (f *File) Registry(base *keys.Registry) (*keys.Registry, error) {
	res := base
	for field, src := range f.Keys {
		x, err := keys.CompileExpr(src)
		if err != nil {
			return nil, fmt.Errorf("%w: key for %s: %w", ErrConfig, field, err)
		}
		res = res.With(field, x)
	}
	if len(f.Ordered) != 0 {
		res = res.WithOrdered(f.Ordered...)
	}
	return res, nil
}
