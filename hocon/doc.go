// Package hocon renders configuration trees as HOCON-style text.
//
// # Usage
//
//	node := ir.FromKeyVals(
//	    ir.KeyVal{Key: "a", Val: ir.FromInt(1)},
//	    ir.KeyVal{Key: "b", Val: ir.FromKeyVals(
//	        ir.KeyVal{Key: "c", Val: ir.FromInt(2)},
//	    )},
//	)
//	out, err := hocon.Render(node, hocon.DefaultOptions())
//	// a: 1
//	// b {
//	//     c: 2
//	// }
//
// Formatting is controlled by an immutable Options value built through a
// Builder:
//
//	opts := hocon.NewBuilder().
//	    WithSeparatorCharacter(hocon.Equals).
//	    WithIndent(hocon.Tab, 1).
//	    Build()
//
// The root map renders bare, without enclosing braces. Lists render on a
// single line when all elements are scalars without comments and the line
// stays short, and one element per line otherwise. Comments attached to
// nodes precede them in the output, one prefixed line each.
//
// # Related Packages
//
//   - github.com/DenWav/Configurate/ir - the tree representation
//   - github.com/DenWav/Configurate/token - scalar literal rendering
//   - github.com/DenWav/Configurate/load - build trees from YAML/JSON
package hocon
