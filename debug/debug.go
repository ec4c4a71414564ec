package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Merge bool
	Keys  bool
	Align bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("SFMERGE_DEBUG_MERGE")
	d.Keys = boolEnv("SFMERGE_DEBUG_KEYS")
	d.Align = boolEnv("SFMERGE_DEBUG_ALIGN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Keys() bool {
	return d.Keys
}
func Align() bool {
	return d.Align
}
