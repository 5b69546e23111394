// Package render emits node trees as text for a target sink.
//
// # Usage
//
//	f := ir.Fn("main")
//	f.Push(`println!("hello");`)
//	err := render.Render(f, os.Stdout, format.Rust())
//
// Rendering walks the tree depth first and switches on the node kind and
// the sink's dialect. It never mutates the tree, so the same tree can be
// rendered against several sinks to produce several dialect outputs. A
// render error aborts the whole pass; callers must not flush partial
// output, since a truncated source file is worse than none.
//
// The engine assumes the tree is acyclic. Cyclic trees are only
// supported by ir.Dump.
//
// # Related Packages
//
//   - github.com/loomgen/go-loom/ir - the node tree
//   - github.com/loomgen/go-loom/format - sinks and dialects
package render
