package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// cycle marker appended to the header of an already visited node
const cycleMark = " _/"

type dumpState struct {
	ids     bool
	visited map[*Node]bool
}

type DumpOption func(*dumpState)

// ShowIDs appends each node's identity to its header line.
func ShowIDs() DumpOption {
	return func(ds *dumpState) { ds.ids = true }
}

// Dump produces a human readable tree dump: one line per node with a
// leading newline, depth tab units, an optional slot-key or nest-index
// prefix and a <tag:value> header. Slots come first in sorted key order,
// then nest children in index order. A node already visited in this
// traversal is dumped as its header plus a cycle marker, without
// recursing, so dumping always terminates. The traversal is read-only.
func Dump(n *Node, opts ...DumpOption) string {
	ds := &dumpState{visited: map[*Node]bool{}}
	for _, opt := range opts {
		opt(ds)
	}
	sb := &strings.Builder{}
	dump(n, sb, ds, 0, "")
	return sb.String()
}

func dump(n *Node, sb *strings.Builder, ds *dumpState, depth int, prefix string) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("\t", depth))
	sb.WriteString(prefix)
	sb.WriteString("<" + n.Tag() + ":" + n.Val() + ">")
	if ds.ids {
		fmt.Fprintf(sb, " @%x", n.id)
	}
	if ds.visited[n] {
		sb.WriteString(cycleMark)
		return
	}
	ds.visited[n] = true
	for _, k := range n.Keys() {
		dump(n.Slots[k], sb, ds, depth+1, k+" = ")
	}
	for i, c := range n.Nest {
		dump(c, sb, ds, depth+1, strconv.Itoa(i)+": ")
	}
}
