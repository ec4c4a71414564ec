// Package ir provides the generic tree representation of a metadata
// document that the merge operates on.
//
// # Node Structure
//
// A Node is a tagged union:
//
//   - NullType: no value
//   - StringType, NumberType, BoolType: scalar leaves
//   - ObjectType: ordered fields, Fields[i] names Values[i]
//   - ArrayType: ordered list of nodes
//
// # Document Conventions
//
// Trees parsed from XML follow fixed conventions:
//
//   - an element holding only text is a String leaf
//   - attributes are object fields prefixed with "@_"
//   - text next to attributes or child elements lives under "#text"
//   - comments live under "#xml__comment"
//   - repeated sibling elements collapse into an Array
//
// For example
//
//	<Profile>
//	    <fieldPermissions>
//	        <editable>true</editable>
//	        <field>Account.Name</field>
//	    </fieldPermissions>
//	</Profile>
//
// is the tree
//
//	Profile:
//	  fieldPermissions:
//	    editable: "true"
//	    field: Account.Name
//
// # Comparison
//
// Compare is a total order on nodes and Equal is the deep equality used
// throughout the merge. Objects compare independently of field order.
//
// # YAML Interoperability
//
// FromYAML and ToYAML convert trees to and from YAML keeping field
// order, which is how test fixtures and the dump command see trees.
//
// Trees are not safe for concurrent mutation.
package ir
