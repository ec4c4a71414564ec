package commands

import (
	"github.com/signadot/sf-git-merge-driver/config"
	"github.com/signadot/sf-git-merge-driver/keys"
	"github.com/signadot/sf-git-merge-driver/merge"
)

// markerOpts holds the conflict marker flags shared by run and merge.
// Zero values leave the settings file or the defaults in place.
type markerOpts struct {
	size                   int
	local, ancestor, other string
}

// settings combines the settings file found from dir with the flags.
func (m *markerOpts) settings(dir string) (merge.Config, *keys.Registry, error) {
	f, err := config.Load(dir)
	if err != nil {
		return merge.Config{}, nil, err
	}
	if f.Path != "" {
		theLog.Debug("settings", "file", f.Path)
	}
	var opts []merge.ConfigOpt
	if m.size != 0 {
		opts = append(opts, merge.WithMarkerSize(m.size))
	}
	if m.local != "" {
		opts = append(opts, merge.WithLocalTag(m.local))
	}
	if m.ancestor != "" {
		opts = append(opts, merge.WithAncestorTag(m.ancestor))
	}
	if m.other != "" {
		opts = append(opts, merge.WithOtherTag(m.other))
	}
	cfg, err := f.MergeConfig(opts...)
	if err != nil {
		return merge.Config{}, nil, err
	}
	reg, err := f.Registry(keys.Default())
	if err != nil {
		return merge.Config{}, nil, err
	}
	return cfg, reg, nil
}
