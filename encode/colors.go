package encode

import (
	"github.com/fatih/color"
)

type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrColor
	ValueColor
	CommentColor
	MarkerColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			TagColor:     color.BlueString,
			AttrColor:    color.CyanString,
			ValueColor:   colorDefault,
			CommentColor: color.New(color.Faint).SprintfFunc(),
			MarkerColor:  color.New(color.FgRed, color.Bold).SprintfFunc(),
		},
	}
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	f := c.Map[attr]
	if f == nil {
		f = c.Default
	}
	return f("%s", s)
}

func colorDefault(f string, args ...any) string {
	return color.New(color.Reset).Sprintf(f, args...)
}
