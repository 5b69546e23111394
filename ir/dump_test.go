package ir

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDumpLeaf(t *testing.T) {
	got := Dump(Text("hi"))
	want := "\n<text:hi>"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpSlotsSorted(t *testing.T) {
	n := Empty().
		Set("b", "B").
		Set("a", "A")
	got := Dump(n)
	want := strings.Join([]string{
		"",
		"<text:>",
		"\ta = <text:A>",
		"\tb = <text:B>",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpNestIndexed(t *testing.T) {
	n := Section("s").Push("one").Push("two")
	got := Dump(n)
	want := strings.Join([]string{
		"",
		"<section:s>",
		"\t0: <text:one>",
		"\t1: <text:two>",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpSlotsBeforeNest(t *testing.T) {
	n := Empty().Push("nested").Set("k", "slotted")
	got := Dump(n)
	want := strings.Join([]string{
		"",
		"<text:>",
		"\tk = <text:slotted>",
		"\t0: <text:nested>",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpDepth(t *testing.T) {
	n := Empty().Push(Empty().Push("deep"))
	got := Dump(n)
	if !strings.Contains(got, "\n\t\t0: <text:deep>") {
		t.Errorf("depth-two node must be indented with two tabs, got %q", got)
	}
}

func TestDumpCycle(t *testing.T) {
	x := Text("x")
	x.Push(x)
	got := Dump(x) // must terminate
	want := strings.Join([]string{
		"",
		"<text:x>",
		"\t0: <text:x> _/",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpSharedNotCycle(t *testing.T) {
	shared := Text("s")
	n := Empty().Push(shared).Push(shared)
	got := Dump(n)
	// second visit carries the marker even without a true cycle:
	// the visited set is per traversal, not per path
	want := strings.Join([]string{
		"",
		"<text:>",
		"\t0: <text:s>",
		"\t1: <text:s> _/",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpVisitedResetPerCall(t *testing.T) {
	n := Text("again")
	first := Dump(n)
	second := Dump(n)
	if first != second {
		t.Error("the visited set must reset at each traversal root")
	}
}

func TestDumpShowIDs(t *testing.T) {
	n := Text("x")
	got := Dump(n, ShowIDs())
	want := fmt.Sprintf("\n<text:x> @%x", n.ID())
	if got != want {
		t.Errorf("Dump(ShowIDs()) = %q, want %q", got, want)
	}
	if strings.Contains(Dump(n), "@") {
		t.Error("identities must be absent by default")
	}
}

func TestDumpReadOnly(t *testing.T) {
	n := Section("s").Push("child").Set("k", "v")
	before := Dump(n)
	_ = Dump(n, ShowIDs())
	after := Dump(n)
	if before != after {
		t.Error("dump must never mutate the tree")
	}
}
