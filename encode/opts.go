package encode

import "github.com/signadot/sf-git-merge-driver/merge"

type EncodeOption func(*EncState)

// EncodeIndent sets the number of spaces per level, 4 by default.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeMarkers applies the conflict marker post-pass for cfg.
func EncodeMarkers(cfg merge.Config) EncodeOption {
	return func(es *EncState) {
		es.markers = &cfg
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
