package loom

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loomgen/go-loom/dirbuild"
)

func writeManifest(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loom.yaml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerate(t *testing.T) {
	manifest := writeManifest(t, `
name: widget
title: the ${name} device
mods:
  - rust
  - web
`)
	dest := t.TempDir()
	if err := Generate(manifest, dest); err != nil {
		t.Fatal(err)
	}
	for _, rel := range []string{
		"widget/README.md",
		"widget/Makefile",
		"widget/Cargo.toml",
		"widget/src/main.rs",
		"widget/templates/index.html",
	} {
		if _, err := os.Stat(filepath.Join(dest, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	b, err := os.ReadFile(filepath.Join(dest, "widget", "README.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "## the widget device") {
		t.Errorf("README.md = %q", b)
	}
}

func TestGenerateDryRun(t *testing.T) {
	manifest := writeManifest(t, "name: widget\n")
	dest := t.TempDir()
	var buf bytes.Buffer
	if err := Generate(manifest, dest, dirbuild.WithDiff(&buf)); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dest, "widget")); !os.IsNotExist(err) {
		t.Error("dry run wrote to disk")
	}
	if !strings.Contains(buf.String(), "Makefile") {
		t.Errorf("diff preview missing Makefile: %q", buf.String())
	}
}

func TestGenerateUnknownMod(t *testing.T) {
	manifest := writeManifest(t, "name: widget\nmods: [cobol]\n")
	err := Generate(manifest, t.TempDir())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateBadManifest(t *testing.T) {
	manifest := writeManifest(t, "title: nameless\n")
	err := Generate(manifest, t.TempDir())
	if !errors.Is(err, dirbuild.ErrManifest) {
		t.Fatalf("err = %v", err)
	}
}
