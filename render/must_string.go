package render

import (
	"bytes"

	"github.com/loomgen/go-loom/format"
	"github.com/loomgen/go-loom/ir"
)

// String renders n against sink and returns the text.
func String(n *ir.Node, sink format.Sink, opts ...Option) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Render(n, buf, sink, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(n *ir.Node, sink format.Sink, opts ...Option) string {
	s, err := String(n, sink, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
