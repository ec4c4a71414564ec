package merge

import (
	"github.com/signadot/sf-git-merge-driver/debug"
	"github.com/signadot/sf-git-merge-driver/ir"
	"github.com/signadot/sf-git-merge-driver/keys"
)

// Merger merges document trees. It holds no per merge state and may be
// used concurrently.
type Merger struct {
	cfg  Config
	keys *keys.Registry
}

func New(cfg Config, reg *keys.Registry) *Merger {
	if reg == nil {
		reg = keys.Empty()
	}
	return &Merger{cfg: cfg, keys: reg}
}

func (m *Merger) Config() Config {
	return m.cfg
}

// RootKey describes the root element of a document under merge.
type RootKey struct {
	Name          string
	ExistsInLocal bool
	ExistsInOther bool
}

type mergeContext struct {
	ancestor  *ir.Node
	local     *ir.Node
	other     *ir.Node
	attribute string
	factory   NodeFactory
	root      *RootKey
	// wrapped is set when the output already holds whole root elements.
	wrapped bool
}

// Merge merges the values found under attribute in the three versions.
// With a non nil root the values are the contents of the document root
// and the output is wrapped in the root element.
func (m *Merger) Merge(ancestor, local, other *ir.Node, attribute string, root *RootKey) Result {
	return m.merge(ClassifyNode, ancestor, local, other, attribute, root)
}

func (m *Merger) merge(factory NodeFactory, ancestor, local, other *ir.Node, attribute string, root *RootKey) Result {
	ctx := &mergeContext{
		ancestor:  ancestor,
		local:     local,
		other:     other,
		attribute: attribute,
		factory:   factory,
		root:      root,
	}
	s := Classify(wrapLeaf(attribute, ancestor), wrapLeaf(attribute, local), wrapLeaf(attribute, other))
	var res Result
	if s == All && ir.Equal(ancestor, local) && ir.Equal(local, other) {
		res = Result{Output: m.adopt(ctx, local)}
	} else {
		res = m.dispatch(ctx, s)
	}
	if debug.Merge() {
		debug.Logf("merge %s %s conflict=%t%v\n", attribute, s, res.HasConflict, ir.FromSlice(res.Output))
	}
	if root != nil && !ctx.wrapped {
		return wrapRoot(root, res)
	}
	return res
}

// adopt renders v unchanged.
func (m *Merger) adopt(ctx *mergeContext, v *ir.Node) []*ir.Node {
	if ctx.root != nil {
		return children(v)
	}
	return Fragments(ctx.attribute, v)
}

func wrapRoot(root *RootKey, res Result) Result {
	switch {
	case len(res.Output) != 0:
	case root.ExistsInLocal || root.ExistsInOther:
	default:
		return res
	}
	return Result{
		Output:      []*ir.Node{element(root.Name, res.Output)},
		HasConflict: res.HasConflict,
	}
}

// MergeDocument merges three parsed documents. The root element is the
// first top level key of local, other or ancestor that is not the XML
// declaration or a comment. The output holds the merged root element
// only.
func (m *Merger) MergeDocument(ancestor, local, other *ir.Node) Result {
	name := RootName(local)
	if name == "" {
		name = RootName(other)
	}
	if name == "" {
		name = RootName(ancestor)
	}
	if name == "" {
		return Result{}
	}
	root := &RootKey{
		Name:          name,
		ExistsInLocal: ir.Get(local, name) != nil,
		ExistsInOther: ir.Get(other, name) != nil,
	}
	return m.Merge(rootValue(ancestor, name), rootValue(local, name), rootValue(other, name), name, root)
}

// RootName returns the name of the root element of doc, or "".
func RootName(doc *ir.Node) string {
	if doc == nil || doc.Type != ir.ObjectType {
		return ""
	}
	for _, f := range doc.Fields {
		if f == DeclarationKey || IsInline(f) {
			continue
		}
		return f
	}
	return ""
}

// rootValue gives the content of the root element object shape: an
// empty root becomes the empty object, a text only root an object
// holding its text.
func rootValue(doc *ir.Node, name string) *ir.Node {
	v := ir.Get(doc, name)
	switch {
	case v == nil:
		return nil
	case v.Type == ir.ObjectType:
		return v
	case ir.IsEmpty(v):
		return ir.FromKeyVals(nil)
	case v.IsScalar():
		return ir.FromKeyVals([]ir.KeyVal{{Key: TextKey, Val: v}})
	}
	return v
}
