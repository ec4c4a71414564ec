package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/sf-git-merge-driver/ir"
	"github.com/signadot/sf-git-merge-driver/merge"
)

type frame struct {
	name string
	obj  *ir.Node
	text strings.Builder
}

// Parse reads one XML document. Empty input is the empty document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	dec := xml.NewDecoder(bytes.NewReader(d))
	dec.Strict = true
	doc := &frame{obj: ir.FromKeyVals(nil)}
	stack := []*frame{doc}
	roots := 0
	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapErr(dec, err)
		}
		top := stack[len(stack)-1]
		switch x := tok.(type) {
		case xml.ProcInst:
			if x.Target == "xml" && len(stack) == 1 {
				doc.obj.Set(merge.DeclarationKey, declaration(x.Inst))
			}
		case xml.StartElement:
			if len(stack) == 1 {
				roots++
				if roots > 1 {
					return nil, wrapErr(dec, ErrNoRoot)
				}
			}
			f := &frame{name: qname(x.Name), obj: ir.FromKeyVals(nil)}
			for _, a := range x.Attr {
				f.obj.Set(merge.AttrPrefix+qname(a.Name), ir.FromString(a.Value))
			}
			stack = append(stack, f)
		case xml.EndElement:
			if len(stack) == 1 || top.name != qname(x.Name) {
				return nil, wrapErr(dec, fmt.Errorf("%w: </%s>", ErrUnbalanced, qname(x.Name)))
			}
			stack = stack[:len(stack)-1]
			addChild(stack[len(stack)-1].obj, top.name, top.value())
		case xml.CharData:
			if len(stack) > 1 {
				top.text.Write(x)
			}
		case xml.Comment:
			if pOpts.comments {
				addChild(top.obj, merge.CommentKey, ir.FromString(string(x)))
			}
		case xml.Directive:
		}
	}
	if len(stack) != 1 {
		return nil, wrapErr(dec, fmt.Errorf("%w: <%s> not closed", ErrUnbalanced, stack[len(stack)-1].name))
	}
	return doc.obj, nil
}

func (f *frame) value() *ir.Node {
	text := f.text.String()
	blank := strings.TrimSpace(text) == ""
	if len(f.obj.Fields) == 0 {
		if blank {
			return ir.FromString("")
		}
		return ir.FromString(text)
	}
	if !blank {
		f.obj.Set(merge.TextKey, ir.FromString(strings.TrimSpace(text)))
	}
	return f.obj
}

// addChild adds v under name, collapsing repeated names into an array.
func addChild(obj *ir.Node, name string, v *ir.Node) {
	prev := ir.Get(obj, name)
	switch {
	case prev == nil:
		obj.Set(name, v)
	case prev.Type == ir.ArrayType:
		prev.Values = append(prev.Values, v)
	default:
		obj.Set(name, ir.FromSlice([]*ir.Node{prev, v}))
	}
}

func qname(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// declaration reads the pseudo attributes of an XML declaration.
func declaration(inst []byte) *ir.Node {
	res := ir.FromKeyVals(nil)
	s := string(inst)
	for {
		s = strings.TrimLeft(s, " \t\r\n")
		eq := strings.IndexByte(s, '=')
		if eq <= 0 || eq+1 >= len(s) {
			return res
		}
		name := strings.TrimSpace(s[:eq])
		rest := strings.TrimLeft(s[eq+1:], " \t")
		if rest == "" || (rest[0] != '"' && rest[0] != '\'') {
			return res
		}
		end := strings.IndexByte(rest[1:], rest[0])
		if end < 0 {
			return res
		}
		res.Set(merge.AttrPrefix+name, ir.FromString(rest[1:end+1]))
		s = rest[end+2:]
	}
}

func wrapErr(dec *xml.Decoder, err error) error {
	line, col := dec.InputPos()
	if errors.Is(err, ErrParse) {
		return fmt.Errorf("line %d col %d: %w", line, col, err)
	}
	return fmt.Errorf("%w: line %d col %d: %w", ErrParse, line, col, err)
}
