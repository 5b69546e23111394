package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/loomgen/go-loom/format"
	"github.com/loomgen/go-loom/ir"
)

func check(t *testing.T, n *ir.Node, sink format.Sink, want string, opts ...Option) {
	t.Helper()
	got, err := String(n, sink, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestTextLeaf(t *testing.T) {
	check(t, ir.Text("hello"), format.Plain(), "hello\n")
}

func TestTextDepth(t *testing.T) {
	check(t, ir.Text("hello"), format.Plain(), "    hello\n", Depth(1))
	check(t, ir.Text("hello"), format.Makefile(), "\thello\n", Depth(1))
}

func TestTextChildrenIndent(t *testing.T) {
	n := ir.Block("{", "}").Push("a").Push("b")
	check(t, n, format.Plain(), "{\n    a\n    b\n}\n")
}

func TestFramerStates(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"no framing", ir.Text("v"), "v\n"},
		{"pfx line", ir.Text("v").WithPfx("# head"), "# head\nv\n"},
		{"empty pfx is a blank line", ir.Text("v").WithPfx(""), "\nv\n"},
		{"sfx line", ir.Text("v").WithSfx("# tail"), "v\n# tail\n"},
		{"empty sfx is a blank line", ir.Text("v").WithSfx(""), "v\n\n"},
		{"end line", ir.Text("v").WithEnd("}"), "v\n}\n"},
		{"empty end is a blank line", ir.Text("v").WithEnd(""), "v\n\n"},
		{"absent value omits the value line", ir.Empty().Push("c"), "    c\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check(t, tt.node, format.Plain(), tt.want)
		})
	}
}

func TestSectionSuppressedWhenEmpty(t *testing.T) {
	sec := ir.Section("empty").WithPfx("").WithSfx("")
	for _, sink := range []format.Sink{
		format.Plain(), format.Rust(), format.Makefile(), format.HTML(),
	} {
		check(t, sec, sink, "")
	}
}

func TestSectionBanners(t *testing.T) {
	sec := ir.Section("var").Push("X = 1")
	check(t, sec, format.Python(), "# \\ var\nX = 1\n# / var\n")
	check(t, sec, format.Rust(), "// \\ var\nX = 1\n// / var\n")
}

func TestSectionChildrenSameDepth(t *testing.T) {
	sec := ir.Section("s").Push("child")
	got, err := String(sec, format.Plain(), Depth(1))
	if err != nil {
		t.Fatal(err)
	}
	want := "    # \\ s\n    child\n    # / s\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("section children must stay at the section depth (-want +got):\n%s", diff)
	}
}

func TestGroupHasNoBanner(t *testing.T) {
	check(t, ir.Group().Push("only"), format.Plain(), "only\n")
}

func TestSectionFraming(t *testing.T) {
	sec := ir.Section("s").WithPfx("").WithSfx("").Push("x")
	check(t, sec, format.Plain(), "\n# \\ s\nx\n# / s\n\n")
}

func TestInline(t *testing.T) {
	n := ir.Inline("title: ").Push("Hello").Push(" World")
	check(t, n, format.Plain(), "title: Hello World\n")
}

func TestInlineMarkupFragments(t *testing.T) {
	n := ir.Inline("").
		Push(ir.InlineMarkup("b").Push("bold")).
		Push(" plain")
	check(t, n, format.HTML(), "<b>bold</b> plain\n")
}

func TestMarkupElement(t *testing.T) {
	div := ir.Markup("div").Push(ir.InlineMarkup("span").Push("hi"))
	want := strings.Join([]string{
		"<div>",
		"    <span>hi</span>",
		"</div>",
		"",
	}, "\n")
	check(t, div, format.HTML(), want)
}

func TestMarkupAttrOrder(t *testing.T) {
	// inserted id first, class second; serialized alphabetically
	div := ir.Markup("div").
		Set("id", "x").
		Set("class", "y")
	want := "<div class=\"y\" id=\"x\">\n</div>\n"
	check(t, div, format.HTML(), want)
}

func TestVoidMarkup(t *testing.T) {
	img := ir.VoidMarkup("img").Set("src", "logo.png").Push("never rendered")
	check(t, img, format.HTML(), "<img src=\"logo.png\">\n")
}

func TestFnBrace(t *testing.T) {
	f := ir.Fn("run").Push("body();")
	check(t, f, format.Rust(), "fn run() {\n    body();\n}\n")
}

func TestFnColon(t *testing.T) {
	f := ir.Fn("run").Push("pass")
	check(t, f, format.Python(), "def run():\n    pass\n")
}

func TestFnDialectSwitch(t *testing.T) {
	f := ir.Fn("run").Push("one").Push("two")

	brace, err := String(f, format.Rust())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(brace, "run() {") || !strings.Contains(brace, "}\n") {
		t.Errorf("brace render = %q", brace)
	}

	colon, err := String(f, format.Python())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(colon, "run():") || strings.Contains(colon, "}") {
		t.Errorf("colon render = %q", colon)
	}

	// both shapes carry the children in the same relative order
	for _, out := range []string{brace, colon} {
		if strings.Index(out, "one") > strings.Index(out, "two") {
			t.Errorf("children out of order in %q", out)
		}
	}
}

func TestFnArgsAndRet(t *testing.T) {
	f := ir.Fn("add", "a: i32", "b: i32").WithRet("i32")
	check(t, f, format.Rust(), "fn add(a: i32, b: i32) -> i32 {\n}\n")
}

func TestFnFraming(t *testing.T) {
	f := ir.Fn("main").WithPfx("#[instrument]")
	check(t, f, format.Rust(), "#[instrument]\nfn main() {\n}\n")
}

func TestMethodReceiver(t *testing.T) {
	m := ir.Method("dump", "depth")
	check(t, m, format.Python(), "def dump(self, depth):\n")
}

func TestClassColon(t *testing.T) {
	base := ir.Class("Object")
	check(t, base, format.Python(), "\nclass Object: pass\n")

	sub := ir.Class("Primitive", base).Push(ir.Method("eval", "env").Push("return self"))
	want := strings.Join([]string{
		"",
		"class Primitive(Object):",
		"    def eval(self, env):",
		"        return self",
		"",
	}, "\n")
	check(t, sub, format.Python(), want)
}

func TestClassBraceUnsupported(t *testing.T) {
	_, err := String(ir.Class("Object"), format.Rust())
	if !errors.Is(err, format.ErrBadDialect) {
		t.Errorf("class under brace dialect err = %v, want ErrBadDialect", err)
	}
}

func TestUnknownDialect(t *testing.T) {
	sink := format.Sink{Indent: "  ", Comment: "#", Dialect: format.Dialect(99)}
	_, err := String(ir.Fn("run"), sink)
	if !errors.Is(err, format.ErrBadDialect) {
		t.Errorf("unknown dialect err = %v, want ErrBadDialect", err)
	}
}

func TestRenderReadOnly(t *testing.T) {
	f := ir.Fn("run").Push("body")
	before := ir.Dump(f)
	if _, err := String(f, format.Rust()); err != nil {
		t.Fatal(err)
	}
	if _, err := String(f, format.Python()); err != nil {
		t.Fatal(err)
	}
	if got := ir.Dump(f); got != before {
		t.Errorf("render mutated the tree:\nbefore%s\nafter%s", before, got)
	}
}

func TestNestedSectionsAndBlocks(t *testing.T) {
	mk := ir.Empty().
		Push(ir.Section("var").
			Push("MODULE = demo")).
		Push(ir.Section("all").WithPfx("").
			Push(ir.Block("all:", "").
				Push("$(MAKE) test")))
	want := strings.Join([]string{
		"    # \\ var",
		"    MODULE = demo",
		"    # / var",
		"",
		"    # \\ all",
		"    all:",
		"        $(MAKE) test",
		"",
		"    # / all",
		"",
	}, "\n")
	check(t, mk, format.Plain(), want)
}

func TestColorsPassThrough(t *testing.T) {
	// the color hook receives every value line; identity hook must not
	// change the output
	c := &Colors{Default: nil, Map: nil}
	plain, err := String(ir.Section("s").Push("x"), format.Plain())
	if err != nil {
		t.Fatal(err)
	}
	colored, err := String(ir.Section("s").Push("x"), format.Plain(), WithColors(c))
	if err != nil {
		t.Fatal(err)
	}
	if plain != colored {
		t.Errorf("identity colors changed output: %q vs %q", plain, colored)
	}
}
