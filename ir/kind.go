package ir

import "fmt"

// Kind classifies a node variant. It is fixed at construction and its
// lower-case name doubles as the node's tag.
type Kind int

const (
	// TextKind is a block text leaf: an optional value line framed by
	// optional prefix, end and suffix lines, with nested children one
	// depth deeper.
	TextKind Kind = iota
	// SectionKind groups children between comment banners. A section
	// with no nested children is never emitted.
	SectionKind
	// InlineKind renders all descendants on a single line.
	InlineKind
	// MarkupKind is a markup element with a matching closing tag.
	MarkupKind
	// InlineMarkupKind closes its element on the opening line.
	InlineMarkupKind
	// VoidMarkupKind emits the opening tag only.
	VoidMarkupKind
	// FnKind is a function declaration.
	FnKind
	// MethodKind is a function declaration carrying a receiver argument.
	MethodKind
	// ClassKind is a class declaration.
	ClassKind
)

// Kinds returns all node kinds.
func Kinds() []Kind {
	return []Kind{
		TextKind,
		SectionKind,
		InlineKind,
		MarkupKind,
		InlineMarkupKind,
		VoidMarkupKind,
		FnKind,
		MethodKind,
		ClassKind,
	}
}

// Tag returns the lower-case variant name.
func (k Kind) Tag() string {
	switch k {
	case TextKind:
		return "text"
	case SectionKind:
		return "section"
	case InlineKind:
		return "inline"
	case MarkupKind:
		return "markup"
	case InlineMarkupKind:
		return "inlinemarkup"
	case VoidMarkupKind:
		return "voidmarkup"
	case FnKind:
		return "fn"
	case MethodKind:
		return "method"
	case ClassKind:
		return "class"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) String() string {
	return k.Tag()
}
