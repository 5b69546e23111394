package debug

import (
	"fmt"
	"os"

	"github.com/loomgen/go-loom/ir"
)

// Tree wraps a node so it formats as its debug dump.
type Tree struct{ *ir.Node }

func (t Tree) String() string {
	return ir.Dump(t.Node, ir.ShowIDs())
}

func Logf(msg string, args ...any) {
	for i := range args {
		if n, ok := args[i].(*ir.Node); ok {
			args[i] = Tree{n}
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
