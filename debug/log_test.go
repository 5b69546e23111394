package debug

import (
	"strings"
	"testing"

	"github.com/loomgen/go-loom/ir"
)

func TestTreeString(t *testing.T) {
	n := ir.Section("top").Push(ir.Text("leaf"))
	got := Tree{n}.String()
	if !strings.Contains(got, "<section:top>") || !strings.Contains(got, "<text:leaf>") {
		t.Errorf("Tree.String() = %q", got)
	}
	if !strings.Contains(got, "@") {
		t.Errorf("Tree.String() missing node ids: %q", got)
	}
}
