package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/sf-git-merge-driver/ir"
	"github.com/signadot/sf-git-merge-driver/merge"
)

type EncState struct {
	depth, indent int
	markers       *merge.Config

	Color func(ColorAttr, string) string
}

// Encode writes frags as an XML document ending in a newline.
func Encode(frags []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 4}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	for _, f := range frags {
		if err := encodeFragment(f, buf, es); err != nil {
			return err
		}
	}
	out := buf.String()
	if es.markers != nil {
		out = FixMarkers(out, *es.markers)
		if es.Color != nil {
			out = colorMarkers(out, *es.markers, es)
		}
	}
	_, err := io.WriteString(w, out)
	return err
}

// MustString encodes frags, panicking on error.
func MustString(frags []*ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(frags, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func encodeFragment(f *ir.Node, w *bytes.Buffer, es *EncState) error {
	if f == nil || f.Type != ir.ObjectType || len(f.Fields) != 1 {
		return fmt.Errorf("%w: fragment %v", ir.ErrFormat, f)
	}
	name, v := f.Fields[0], f.Values[0]
	switch {
	case name == merge.MarkerKey:
		w.WriteString(v.Text())
		w.WriteByte('\n')
	case name == merge.TextKey:
		text := v.Text()
		if strings.TrimSpace(text) == "" {
			w.WriteString(text)
			if !strings.HasSuffix(text, "\n") {
				w.WriteByte('\n')
			}
			return nil
		}
		writeIndent(w, es)
		w.WriteString(es.color(ValueColor, escapeText(text)))
		w.WriteByte('\n')
	case name == merge.CommentKey:
		writeIndent(w, es)
		w.WriteString(es.color(CommentColor, "<!--"+v.Text()+"-->"))
		w.WriteByte('\n')
	case strings.HasPrefix(name, merge.AttrPrefix):
		// an attribute the enclosing element could not place, only at the
		// top level
		return fmt.Errorf("%w: attribute %s outside an element", ir.ErrFormat, name)
	case strings.HasPrefix(name, "?"):
		return encodeProcInst(name[1:], ir.EnsureArray(v), w, es)
	default:
		return encodeElement(name, ir.EnsureArray(v), w, es)
	}
	return nil
}

func encodeProcInst(target string, kids []*ir.Node, w *bytes.Buffer, es *EncState) error {
	attrs, _ := splitAttrs(kids)
	writeIndent(w, es)
	w.WriteString("<?" + target)
	writeAttrs(attrs, w, es)
	w.WriteString("?>\n")
	return nil
}

func encodeElement(name string, kids []*ir.Node, w *bytes.Buffer, es *EncState) error {
	attrs, rest := splitAttrs(kids)
	writeIndent(w, es)
	w.WriteString(es.color(TagColor, "<"+name))
	writeAttrs(attrs, w, es)
	text, inline := inlineText(rest)
	switch {
	case inline && text == "":
		w.WriteString(es.color(TagColor, "/>"))
		w.WriteByte('\n')
		return nil
	case inline:
		w.WriteString(es.color(TagColor, ">"))
		w.WriteString(es.color(ValueColor, escapeText(text)))
		w.WriteString(es.color(TagColor, "</"+name+">"))
		w.WriteByte('\n')
		return nil
	}
	w.WriteString(es.color(TagColor, ">"))
	w.WriteByte('\n')
	es.depth++
	for _, k := range rest {
		if err := encodeFragment(k, w, es); err != nil {
			return err
		}
	}
	es.depth--
	writeIndent(w, es)
	w.WriteString(es.color(TagColor, "</"+name+">"))
	w.WriteByte('\n')
	return nil
}

// splitAttrs separates attribute fragments from the other children.
func splitAttrs(kids []*ir.Node) (attrs, rest []*ir.Node) {
	for _, k := range kids {
		if k != nil && len(k.Fields) == 1 && strings.HasPrefix(k.Fields[0], merge.AttrPrefix) {
			attrs = append(attrs, k)
			continue
		}
		rest = append(rest, k)
	}
	return attrs, rest
}

func writeAttrs(attrs []*ir.Node, w *bytes.Buffer, es *EncState) {
	for _, a := range attrs {
		name := strings.TrimPrefix(a.Fields[0], merge.AttrPrefix)
		w.WriteByte(' ')
		w.WriteString(es.color(AttrColor, name+"="))
		w.WriteString(es.color(ValueColor, `"`+escapeText(a.Values[0].Text())+`"`))
	}
}

// inlineText reports whether kids are text only, and their text.
func inlineText(kids []*ir.Node) (string, bool) {
	var b strings.Builder
	for _, k := range kids {
		if k == nil || len(k.Fields) != 1 || k.Fields[0] != merge.TextKey {
			return "", false
		}
		b.WriteString(k.Values[0].Text())
	}
	return b.String(), true
}

func writeIndent(w *bytes.Buffer, es *EncState) {
	w.WriteString(strings.Repeat(" ", es.depth*es.indent))
}

func (es *EncState) color(attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(attr, s)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeText(s string) string {
	return escaper.Replace(s)
}

func colorMarkers(text string, cfg merge.Config, es *EncState) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if cfg.IsMarker(ln) {
			lines[i] = es.Color(MarkerColor, ln)
		}
	}
	return strings.Join(lines, "\n")
}
