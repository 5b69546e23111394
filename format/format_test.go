package format

import (
	"errors"
	"testing"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in   string
		want Dialect
	}{
		{"b", BraceDialect},
		{"brace", BraceDialect},
		{"c", ColonDialect},
		{"colon", ColonDialect},
	}
	for _, tt := range tests {
		got, err := ParseDialect(tt.in)
		if err != nil {
			t.Errorf("ParseDialect(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDialect(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseDialect("curly"); !errors.Is(err, ErrBadDialect) {
		t.Errorf("ParseDialect(curly) err = %v, want ErrBadDialect", err)
	}
}

func TestDialectRoundTrip(t *testing.T) {
	for _, d := range Dialects() {
		b, err := d.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Dialect
		if err := back.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if back != d {
			t.Errorf("round trip %v -> %s -> %v", d, b, back)
		}
	}
}

func TestSinkPresets(t *testing.T) {
	if !Rust().Dialect.IsBrace() {
		t.Error("rust sink must select the brace dialect")
	}
	if !Python().Dialect.IsColon() {
		t.Error("python sink must select the colon dialect")
	}
	if Makefile().Indent != "\t" {
		t.Error("makefile sink must indent with hard tabs")
	}
	if JSON().Comment != "//" {
		t.Error("json sink must use // comments")
	}
}
