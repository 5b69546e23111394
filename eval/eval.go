// Package eval expands ${...} expression spans inside manifest strings.
package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/loomgen/go-loom/debug"
)

var ErrExpand = errors.New("cannot expand")

// Env is the expression environment: manifest vars plus anything the
// caller injects.
type Env map[string]any

// ExpandString replaces every ${expr} span in s with the result of
// evaluating expr against env. Non-string results are formatted with %v.
// Text outside spans passes through untouched; a string without spans is
// returned as is.
func ExpandString(s string, env Env) (string, error) {
	if !strings.Contains(s, "${") {
		return s, nil
	}
	sb := &strings.Builder{}
	for {
		i := strings.Index(s, "${")
		if i < 0 {
			sb.WriteString(s)
			break
		}
		sb.WriteString(s[:i])
		j := strings.Index(s[i:], "}")
		if j < 0 {
			return "", fmt.Errorf("%w: unterminated ${ in %q", ErrExpand, s)
		}
		raw := s[i+2 : i+j]
		out, err := expr.Eval(raw, map[string]any(env))
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrExpand, raw, err)
		}
		if debug.Expand() {
			debug.Logf("expand %q = %v\n", raw, out)
		}
		fmt.Fprintf(sb, "%v", out)
		s = s[i+j+1:]
	}
	return sb.String(), nil
}

// ExpandAll expands every value of vars in place against the whole map,
// so entries may refer to each other. Entries are expanded in one pass;
// forward references see the unexpanded value.
func ExpandAll(vars map[string]string) error {
	env := Env{}
	for k, v := range vars {
		env[k] = v
	}
	for k, v := range vars {
		out, err := ExpandString(v, env)
		if err != nil {
			return err
		}
		vars[k] = out
		env[k] = out
	}
	return nil
}
