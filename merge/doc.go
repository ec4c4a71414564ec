// Package merge implements the three-way merge of metadata document
// trees.
//
// # Overview
//
// A merge compares, at every position of the tree, the ancestor version
// with the local and other versions. Which of the three hold content at
// a position is its Scenario, one of eight; each scenario has a fixed
// rule (adopt, delete, recurse or conflict). Composite values recurse
// through a node kind chosen from the shapes of the three values:
//
//   - arrays of scalars merge as sets
//   - objects merge property by property
//   - repeated records merge by identity, see [keys.Registry]
//   - scalars merge as text
//
// # Output
//
// The output of a merge is an ordered list of fragments, each a tree in
// element form:
//
//	{name: [children...]}   an element
//	{"#text": value}        text
//	{"@_name": value}       an attribute of the enclosing element
//	{"#conflict": marker}   a conflict marker line
//
// Unresolved positions are wrapped in the marker envelope
//
//	<<<<<<< LOCAL
//	local content
//	||||||| BASE
//	ancestor content
//	=======
//	other content
//	>>>>>>> REMOTE
//
// localized to the smallest region that could not be resolved.
//
// # Usage
//
//	cfg, err := merge.NewConfig(merge.WithMarkerSize(7))
//	m := merge.New(cfg, keys.Default())
//	res := m.MergeDocument(ancestor, local, other)
//	if res.HasConflict {
//	    ...
//	}
//
// The merge never mutates its inputs and has no error path: every
// combination of inputs has a defined result.
package merge
