// Package parse reads XML metadata documents into [ir.Node] trees.
//
// # Conventions
//
//   - an element is a field of its parent object, named by its qualified
//     name (prefix:local)
//   - attributes are fields prefixed "@_"
//   - character data of an element that also has children or attributes
//     is the field "#text"
//   - an element with only text is a string; an empty element is ""
//   - repeated sibling elements collapse into an array at the position
//     of the first one
//   - comments are fields "#xml__comment"
//   - the XML declaration is the field "?xml" of the document
//
// All leaves are strings. Whitespace only character data between
// elements is dropped.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	root := ir.Get(doc, "Profile")
package parse
