package render

import (
	"fmt"

	"github.com/loomgen/go-loom/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	BannerColor
	TagColor
	AttrColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: fmt.Sprintf,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range ir.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: BannerColor}] = color.BlueString
	}
	for _, k := range []ir.Kind{ir.MarkupKind, ir.InlineMarkupKind, ir.VoidMarkupKind} {
		able := Colorable{Kind: k, Attr: TagColor}
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = AttrColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	}
	colors.Map[Colorable{Kind: ir.TextKind, Attr: ValueColor}] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[Colorable{Kind: ir.InlineKind, Attr: ValueColor}] = color.RGB(8, 196, 16).SprintfFunc()
	return colors
}

func (c *Colors) Color(k ir.Kind, attr ColorAttr, v string) string {
	f, ok := c.Map[Colorable{Kind: k, Attr: attr}]
	if !ok {
		f = c.Default
	}
	if f == nil {
		return v
	}
	return f("%s", v)
}
