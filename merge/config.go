package merge

import (
	"errors"
	"fmt"
	"strings"
)

var ErrConfig = errors.New("bad merge config")

const (
	DefaultMarkerSize  = 7
	DefaultLocalTag    = "LOCAL"
	DefaultAncestorTag = "BASE"
	DefaultOtherTag    = "REMOTE"
)

// Config holds the conflict marker settings. The zero value is not
// valid; use NewConfig or DefaultConfig.
type Config struct {
	markerSize  int
	localTag    string
	ancestorTag string
	otherTag    string
}

type ConfigOpt func(*Config)

func WithMarkerSize(n int) ConfigOpt {
	return func(c *Config) {
		c.markerSize = n
	}
}

func WithLocalTag(tag string) ConfigOpt {
	return func(c *Config) {
		c.localTag = tag
	}
}

func WithAncestorTag(tag string) ConfigOpt {
	return func(c *Config) {
		c.ancestorTag = tag
	}
}

func WithOtherTag(tag string) ConfigOpt {
	return func(c *Config) {
		c.otherTag = tag
	}
}

func DefaultConfig() Config {
	return Config{
		markerSize:  DefaultMarkerSize,
		localTag:    DefaultLocalTag,
		ancestorTag: DefaultAncestorTag,
		otherTag:    DefaultOtherTag,
	}
}

// NewConfig applies opts over the defaults and validates the result.
func NewConfig(opts ...ConfigOpt) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.markerSize <= 0 {
		return Config{}, fmt.Errorf("%w: conflict marker size must be positive, got %d", ErrConfig, c.markerSize)
	}
	for _, tag := range []string{c.localTag, c.ancestorTag, c.otherTag} {
		if tag == "" || strings.ContainsAny(tag, "\r\n") {
			return Config{}, fmt.Errorf("%w: bad conflict tag %q", ErrConfig, tag)
		}
	}
	return c, nil
}

func (c Config) MarkerSize() int     { return c.markerSize }
func (c Config) LocalTag() string    { return c.localTag }
func (c Config) AncestorTag() string { return c.ancestorTag }
func (c Config) OtherTag() string    { return c.otherTag }

func (c Config) LocalMarker() string {
	return strings.Repeat("<", c.markerSize) + " " + c.localTag
}

func (c Config) AncestorMarker() string {
	return strings.Repeat("|", c.markerSize) + " " + c.ancestorTag
}

func (c Config) SeparatorMarker() string {
	return strings.Repeat("=", c.markerSize)
}

func (c Config) OtherMarker() string {
	return strings.Repeat(">", c.markerSize) + " " + c.otherTag
}

// IsMarker reports whether line, stripped of surrounding blanks, is one
// of the four marker lines of c.
func (c Config) IsMarker(line string) bool {
	line = strings.TrimSpace(line)
	switch line {
	case c.LocalMarker(), c.AncestorMarker(), c.SeparatorMarker(), c.OtherMarker():
		return true
	}
	return false
}
