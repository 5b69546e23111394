package ir

import "testing"

func TestKindTags(t *testing.T) {
	tests := []struct {
		node *Node
		tag  string
	}{
		{Text("x"), "text"},
		{Empty(), "text"},
		{Block("{", "}"), "text"},
		{Section("var"), "section"},
		{Group(), "section"},
		{Inline("title"), "inline"},
		{Markup("div"), "markup"},
		{InlineMarkup("span"), "inlinemarkup"},
		{VoidMarkup("img"), "voidmarkup"},
		{Fn("run"), "fn"},
		{Method("run"), "method"},
		{Class("Object"), "class"},
	}
	for _, tt := range tests {
		if got := tt.node.Tag(); got != tt.tag {
			t.Errorf("Tag() = %q, want %q", got, tt.tag)
		}
	}
}

func TestVal(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"string", Text("hello"), "hello"},
		{"empty string", Text(""), ""},
		{"absent", Empty(), ""},
		{"int", Number(42), "42"},
		{"negative int", Number(-7), "-7"},
		{"float", Float(2.5), "2.5"},
		{"zero float", Float(0), "0.0"},
		{"integral float", Float(2), "2.0"},
		{"negative integral float", Float(-3), "-3.0"},
		{"large integral float", Float(1e6), "1000000.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Val(); got != tt.want {
				t.Errorf("Val() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasValue(t *testing.T) {
	if Empty().HasValue() {
		t.Error("Empty() should have no value")
	}
	if !Text("").HasValue() {
		t.Error("Text(\"\") should have a value: empty and absent are distinct")
	}
	if !Number(0).HasValue() {
		t.Error("Number(0) should have a value")
	}
}

func TestIdentity(t *testing.T) {
	a, b := Text("x"), Text("x")
	if a.ID() == b.ID() {
		t.Errorf("distinct nodes share identity %x", a.ID())
	}
	if a.ID() == 0 {
		t.Error("identity must be non-zero")
	}
}

func TestMethodReceiver(t *testing.T) {
	m := Method("run", "n")
	want := []string{"self", "n"}
	if len(m.Args) != len(want) {
		t.Fatalf("Args = %v, want %v", m.Args, want)
	}
	for i := range want {
		if m.Args[i] != want[i] {
			t.Errorf("Args[%d] = %q, want %q", i, m.Args[i], want[i])
		}
	}
}

func TestFraming(t *testing.T) {
	n := Text("v").WithPfx("").WithEnd("}").WithSfx("done")
	if n.Pfx == nil || *n.Pfx != "" {
		t.Error("WithPfx(\"\") must set an empty, non-nil prefix")
	}
	if n.End == nil || *n.End != "}" {
		t.Error("WithEnd did not stick")
	}
	if n.Sfx == nil || *n.Sfx != "done" {
		t.Error("WithSfx did not stick")
	}
	if Text("v").Pfx != nil {
		t.Error("prefix must default to absent")
	}
}
