// Package ir provides the in-memory representation of configuration trees.
//
// # Overview
//
// A configuration document is a tree of ir.Node values. The tree is a
// recursive tagged union: the Type field selects between the scalar kinds
// (null, boolean, number, string) and the composite kinds (object, array).
// Objects keep their key-value pairs in insertion order, which is semantic:
// it reflects the order the author wrote them and is preserved on output.
//
// Any node may carry a comment, text which logically precedes the node when
// the tree is rendered. Comments are orthogonal to node type; there is no
// comment node kind.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals(
//	    ir.KeyVal{Key: "name", Val: ir.FromString("app")},
//	    ir.KeyVal{Key: "port", Val: ir.FromInt(8080)},
//	)
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// FromAny coerces plain Go values (as produced by generic decoders) into
// nodes.
//
// # Related Packages
//
//   - github.com/DenWav/Configurate/hocon - render trees as text
//   - github.com/DenWav/Configurate/token - scalar literal rendering
//   - github.com/DenWav/Configurate/load - build trees from YAML/JSON
package ir
