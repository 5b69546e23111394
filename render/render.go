package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/loomgen/go-loom/debug"
	"github.com/loomgen/go-loom/format"
	"github.com/loomgen/go-loom/ir"
)

// ErrRender reports a node with no emission rule.
var ErrRender = errors.New("render error")

type state struct {
	sink  format.Sink
	depth int
	color func(ir.Kind, ColorAttr, string) string
}

// Render emits the tree rooted at n to w for the given sink.
func Render(n *ir.Node, w io.Writer, sink format.Sink, opts ...Option) error {
	st := &state{sink: sink}
	for _, opt := range opts {
		opt(st)
	}
	if debug.Render() {
		debug.Logf("render %s %v: %s\n", n.Tag(), sink.Dialect, debug.Tree{Node: n})
	}
	return render(n, w, st)
}

func render(n *ir.Node, w io.Writer, st *state) error {
	switch n.Kind() {
	case ir.TextKind:
		return renderText(n, w, st)
	case ir.SectionKind:
		return renderSection(n, w, st)
	case ir.InlineKind:
		return renderInline(n, w, st)
	case ir.MarkupKind, ir.InlineMarkupKind, ir.VoidMarkupKind:
		return renderMarkup(n, w, st)
	case ir.FnKind, ir.MethodKind:
		return renderFn(n, w, st)
	case ir.ClassKind:
		return renderClass(n, w, st)
	default:
		return fmt.Errorf("%w: no rule for %s node", ErrRender, n.Tag())
	}
}

func (st *state) pad() string {
	return strings.Repeat(st.sink.Indent, st.depth)
}

func writeLine(w io.Writer, st *state, s string) error {
	_, err := io.WriteString(w, st.pad()+s+"\n")
	return err
}

// writeFramer emits a pfx/end/sfx line: nil omits the line entirely, an
// empty string emits a single blank line. The two are distinct,
// observable states.
func writeFramer(w io.Writer, st *state, f *string) error {
	if f == nil {
		return nil
	}
	if *f == "" {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return writeLine(w, st, *f)
}

func applyColor(st *state, k ir.Kind, attr ColorAttr, v string) string {
	if st.color == nil {
		return v
	}
	return st.color(k, attr, v)
}

// Text node: prefix line, value line, children one depth deeper, end
// line, suffix line.
func renderText(n *ir.Node, w io.Writer, st *state) error {
	if err := writeFramer(w, st, n.Pfx); err != nil {
		return err
	}
	if n.HasValue() {
		if err := writeLine(w, st, applyColor(st, n.Kind(), ValueColor, n.Val())); err != nil {
			return err
		}
	}
	st.depth++
	for _, c := range n.Nest {
		if err := render(c, w, st); err != nil {
			st.depth--
			return err
		}
	}
	st.depth--
	if err := writeFramer(w, st, n.End); err != nil {
		return err
	}
	return writeFramer(w, st, n.Sfx)
}

// Section node: children framed by comment banners, at the section's own
// depth. An empty section emits nothing at all.
func renderSection(n *ir.Node, w io.Writer, st *state) error {
	if n.Len() == 0 {
		return nil
	}
	if err := writeFramer(w, st, n.Pfx); err != nil {
		return err
	}
	if n.HasValue() {
		open := st.sink.Comment + ` \ ` + n.Val()
		if err := writeLine(w, st, applyColor(st, n.Kind(), BannerColor, open)); err != nil {
			return err
		}
	}
	for _, c := range n.Nest {
		if err := render(c, w, st); err != nil {
			return err
		}
	}
	if n.HasValue() {
		close := st.sink.Comment + ` / ` + n.Val()
		if err := writeLine(w, st, applyColor(st, n.Kind(), BannerColor, close)); err != nil {
			return err
		}
	}
	return writeFramer(w, st, n.Sfx)
}

// Inline node: the value and all descendants on one indented line.
func renderInline(n *ir.Node, w io.Writer, st *state) error {
	sb := &strings.Builder{}
	inlineNode(n, sb, st)
	return writeLine(w, st, sb.String())
}

func inlineNode(n *ir.Node, sb *strings.Builder, st *state) {
	switch n.Kind() {
	case ir.MarkupKind, ir.InlineMarkupKind:
		sb.WriteString(openTag(n, st))
		for _, c := range n.Nest {
			inlineNode(c, sb, st)
		}
		sb.WriteString(closeTag(n, st))
	case ir.VoidMarkupKind:
		sb.WriteString(openTag(n, st))
	default:
		if n.HasValue() {
			sb.WriteString(applyColor(st, n.Kind(), ValueColor, n.Val()))
		}
		for _, c := range n.Nest {
			inlineNode(c, sb, st)
		}
	}
}

// Markup node: <tag attrs>, children one depth deeper, matching closing
// tag. The inline subtype closes on the opening line; the void subtype
// emits the opening tag only and never renders children.
func renderMarkup(n *ir.Node, w io.Writer, st *state) error {
	switch n.Kind() {
	case ir.VoidMarkupKind:
		return writeLine(w, st, openTag(n, st))
	case ir.InlineMarkupKind:
		sb := &strings.Builder{}
		for _, c := range n.Nest {
			inlineNode(c, sb, st)
		}
		return writeLine(w, st, openTag(n, st)+sb.String()+closeTag(n, st))
	default:
		if err := writeLine(w, st, openTag(n, st)); err != nil {
			return err
		}
		st.depth++
		for _, c := range n.Nest {
			if err := render(c, w, st); err != nil {
				st.depth--
				return err
			}
		}
		st.depth--
		return writeLine(w, st, closeTag(n, st))
	}
}

// openTag serializes attributes from the slots in sorted key order, so
// attribute order is stable regardless of insertion order.
func openTag(n *ir.Node, st *state) string {
	sb := &strings.Builder{}
	sb.WriteString("<")
	sb.WriteString(applyColor(st, n.Kind(), TagColor, n.Val()))
	for _, k := range n.Keys() {
		attr := k + `="` + n.Slots[k].Val() + `"`
		sb.WriteString(" ")
		sb.WriteString(applyColor(st, n.Kind(), AttrColor, attr))
	}
	sb.WriteString(">")
	return sb.String()
}

func closeTag(n *ir.Node, st *state) string {
	return "</" + applyColor(st, n.Kind(), TagColor, n.Val()) + ">"
}

// Fn and method nodes: a declaration line with name, argument list and
// optional return annotation, shaped by the sink's dialect. The body is
// emitted through a synthesized text block so the input tree is never
// mutated.
func renderFn(n *ir.Node, w io.Writer, st *state) error {
	args := strings.Join(n.Args, ", ")
	var block *ir.Node
	switch st.sink.Dialect {
	case format.BraceDialect:
		ret := " "
		if n.Ret != "" {
			ret = " -> " + n.Ret + " "
		}
		block = ir.Block("fn "+n.Val()+"("+args+")"+ret+"{", "}")
	case format.ColonDialect:
		block = ir.Text("def " + n.Val() + "(" + args + "):")
	default:
		return fmt.Errorf("%w: no %s rule for dialect %d", format.ErrBadDialect, n.Tag(), int(st.sink.Dialect))
	}
	block.Pfx, block.Sfx = n.Pfx, n.Sfx
	block.Nest = n.Nest
	return renderText(block, w, st)
}

// Class nodes only have a colon-indent shape; requesting one under any
// other dialect is a configuration error, not a silent fallback.
func renderClass(n *ir.Node, w io.Writer, st *state) error {
	if st.sink.Dialect != format.ColonDialect {
		return fmt.Errorf("%w: no class rule for dialect %s", format.ErrBadDialect, st.sink.Dialect)
	}
	sups := ""
	if len(n.Sup) > 0 {
		names := make([]string, len(n.Sup))
		for i, s := range n.Sup {
			names[i] = s.Val()
		}
		sups = "(" + strings.Join(names, ", ") + ")"
	}
	pass := ""
	if n.Len() == 0 {
		pass = " pass"
	}
	block := ir.Text("class " + n.Val() + sups + ":" + pass).WithPfx("")
	block.Nest = n.Nest
	return renderText(block, w, st)
}
