package ir

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

var lastID atomic.Uint64

// Node is the universal tree element. The kind and identity are fixed at
// construction; the scalar payload, slots and nest are mutated in place
// by the construction algebra.
type Node struct {
	kind Kind
	id   uint64

	// scalar payload; at most one is set, all nil means absent
	Str     *string
	Int64   *int64
	Float64 *float64

	// named children; dumped in sorted key order
	Slots map[string]*Node
	// ordered children; order significant
	Nest []*Node

	// block framing for text and section nodes. nil omits the line,
	// empty string emits a single blank line.
	Pfx, Sfx, End *string

	// declaration fields for fn, method and class nodes
	Args []string
	Ret  string
	Sup  []*Node
}

func newNode(kind Kind) *Node {
	return &Node{
		kind:  kind,
		id:    lastID.Add(1),
		Slots: map[string]*Node{},
	}
}

// Text creates a block text leaf carrying v.
func Text(v string) *Node {
	n := newNode(TextKind)
	n.Str = &v
	return n
}

// Empty creates a text node with no scalar value, useful as a bare
// container for nested children.
func Empty() *Node {
	return newNode(TextKind)
}

// Block creates a text node whose children sit between an opening value
// line and a closing end line.
func Block(open, close string) *Node {
	n := Text(open)
	n.End = &close
	return n
}

// Number creates a text leaf carrying an integer scalar.
func Number(v int64) *Node {
	n := newNode(TextKind)
	n.Int64 = &v
	return n
}

// Float creates a text leaf carrying a floating point scalar.
func Float(v float64) *Node {
	n := newNode(TextKind)
	n.Float64 = &v
	return n
}

// Section creates a named section: its children are framed by comment
// banners derived from name, and the whole block is suppressed when the
// section has no nested children.
func Section(name string) *Node {
	n := newNode(SectionKind)
	n.Str = &name
	return n
}

// Group creates a section with no banner value: children only, still
// suppressed when empty.
func Group() *Node {
	return newNode(SectionKind)
}

// Inline creates a node whose descendants render on a single line.
func Inline(v string) *Node {
	n := newNode(InlineKind)
	n.Str = &v
	return n
}

// Markup creates a markup element named tag with a matching closing tag.
func Markup(tag string) *Node {
	n := newNode(MarkupKind)
	n.Str = &tag
	return n
}

// InlineMarkup creates a markup element closed on its opening line.
func InlineMarkup(tag string) *Node {
	n := newNode(InlineMarkupKind)
	n.Str = &tag
	return n
}

// VoidMarkup creates a self-closing-only markup element: no closing tag,
// children are never rendered.
func VoidMarkup(tag string) *Node {
	n := newNode(VoidMarkupKind)
	n.Str = &tag
	return n
}

// Fn creates a function declaration.
func Fn(name string, args ...string) *Node {
	n := newNode(FnKind)
	n.Str = &name
	n.Args = args
	return n
}

// Method creates a function declaration with a leading receiver argument.
func Method(name string, args ...string) *Node {
	n := newNode(MethodKind)
	n.Str = &name
	n.Args = append([]string{"self"}, args...)
	return n
}

// Class creates a class declaration with optional superclasses.
func Class(name string, sup ...*Node) *Node {
	n := newNode(ClassKind)
	n.Str = &name
	n.Sup = sup
	return n
}

// WithPfx sets the prefix line. An empty string emits a blank line.
func (n *Node) WithPfx(v string) *Node {
	n.Pfx = &v
	return n
}

// WithSfx sets the suffix line. An empty string emits a blank line.
func (n *Node) WithSfx(v string) *Node {
	n.Sfx = &v
	return n
}

// WithEnd sets the end-marker line. An empty string emits a blank line.
func (n *Node) WithEnd(v string) *Node {
	n.End = &v
	return n
}

// WithRet sets the return annotation of a declaration node.
func (n *Node) WithRet(v string) *Node {
	n.Ret = v
	return n
}

// WithInt replaces the scalar payload with an integer.
func (n *Node) WithInt(v int64) *Node {
	n.Str, n.Float64 = nil, nil
	n.Int64 = &v
	return n
}

// WithFloat replaces the scalar payload with a float.
func (n *Node) WithFloat(v float64) *Node {
	n.Str, n.Int64 = nil, nil
	n.Float64 = &v
	return n
}

// Kind returns the node's variant.
func (n *Node) Kind() Kind {
	return n.kind
}

// Tag returns the lower-case variant name.
func (n *Node) Tag() string {
	return n.kind.Tag()
}

// ID returns the process-unique identity assigned at construction. It is
// for display only, never for equality or ordering.
func (n *Node) ID() uint64 {
	return n.id
}

// HasValue reports whether the scalar payload is present.
func (n *Node) HasValue() bool {
	return n.Str != nil || n.Int64 != nil || n.Float64 != nil
}

// Val returns the scalar payload as text, or "" when absent.
func (n *Node) Val() string {
	switch {
	case n.Str != nil:
		return *n.Str
	case n.Int64 != nil:
		return strconv.FormatInt(*n.Int64, 10)
	case n.Float64 != nil:
		v := strconv.FormatFloat(*n.Float64, 'f', -1, 64)
		if !strings.ContainsAny(v, ".e") {
			v += ".0"
		}
		return v
	default:
		return ""
	}
}

// Keys returns the slot keys in sorted order.
func (n *Node) Keys() []string {
	return slices.Sorted(maps.Keys(n.Slots))
}

// Get returns the slot child under key, or nil.
func (n *Node) Get(key string) *Node {
	return n.Slots[key]
}

// At returns the nest child at index i.
func (n *Node) At(i int) *Node {
	return n.Nest[i]
}

// Len returns the number of nest children.
func (n *Node) Len() int {
	return len(n.Nest)
}

// SlotLen returns the number of slot children.
func (n *Node) SlotLen() int {
	return len(n.Slots)
}
