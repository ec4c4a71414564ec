package encode

import (
	"strings"

	"github.com/signadot/sf-git-merge-driver/merge"
)

// FixMarkers cleans up the marker lines of cfg in text: indentation in
// front of a marker is removed, and blank lines right before or after
// a marker are dropped.
func FixMarkers(text string, cfg merge.Config) string {
	trailingNL := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	marker := make([]bool, len(lines))
	for i, ln := range lines {
		if cfg.IsMarker(ln) {
			marker[i] = true
			lines[i] = strings.TrimLeft(ln, " \t")
		}
	}
	blank := func(i int) bool {
		return strings.TrimSpace(lines[i]) == ""
	}
	res := make([]string, 0, len(lines))
	for i, ln := range lines {
		if !blank(i) {
			res = append(res, ln)
			continue
		}
		j := i - 1
		for j >= 0 && blank(j) {
			j--
		}
		k := i + 1
		for k < len(lines) && blank(k) {
			k++
		}
		if (j >= 0 && marker[j]) || (k < len(lines) && marker[k]) {
			continue
		}
		res = append(res, ln)
	}
	out := strings.Join(res, "\n")
	if trailingNL {
		out += "\n"
	}
	return out
}
