// Package ir provides the node tree that loom documents are built from.
//
// # Overview
//
// A single Node type represents both data and emittable text. Nodes carry
// a kind (the variant tag), an optional scalar payload, named children
// ("slots") and ordered children ("nest"). Template code builds trees
// through the construction algebra and hands them to the render package,
// which emits text for a target sink.
//
// # Node Structure
//
//   - Kind: explicit variant tag set once at construction. Its lower-case
//     name is the node's tag, used for dispatch and as the default slot
//     key for SetByTag.
//   - Scalar: at most one of Str, Int64, Float64 is set; all nil means
//     the value is absent. Absent and empty string are distinct states.
//   - Slots: string-keyed child map. Dumps iterate slots in sorted key
//     order, not insertion order.
//   - Nest: positional child sequence. Order is significant and preserved.
//
// # Construction Algebra
//
// All operators coerce their input through Coerce: a *Node passes through
// unchanged, a bare string is wrapped into a fresh text leaf, anything
// else is a coercion error. Operators return the receiver so trees can be
// built fluently:
//
//	mk := ir.Section("var").
//		Push("MODULE = $(notdir $(CURDIR))").
//		Push("OS     = $(shell uname -s)")
//
// Violations (coercing a non-node non-string, index out of range) are
// programmer errors: the operators panic with an error wrapping ErrCoerce
// or ErrIndex rather than returning it.
//
// # Sharing and Cycles
//
// Children are shared references, never copies. A node may appear under
// several parents, or be its own descendant. Mutations through one parent
// are visible through all of them. Dump tolerates cycles; the render
// engine assumes the trees it is given are acyclic.
//
// Node values are not safe for concurrent mutation.
package ir
