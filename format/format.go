package format

import (
	"errors"
	"fmt"
)

// Dialect selects the textual shape of declaration nodes: trailing-brace
// blocks or colon-indented blocks. The render engine switches on this
// value explicitly; there is no fallback for an unknown dialect.
type Dialect int

const (
	BraceDialect Dialect = iota
	ColonDialect
)

var ErrBadDialect = errors.New("bad dialect")

func ParseDialect(v string) (Dialect, error) {
	d, ok := map[string]Dialect{
		"b":     BraceDialect,
		"brace": BraceDialect,
		"c":     ColonDialect,
		"colon": ColonDialect,
	}[v]
	if ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDialect, v)
}

func (d Dialect) String() string {
	b, err := d.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(b)
}

func (d Dialect) MarshalText() ([]byte, error) {
	switch d {
	case BraceDialect:
		return []byte("brace"), nil
	case ColonDialect:
		return []byte("colon"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a dialect>", d)
	}
}

func (d *Dialect) UnmarshalText(b []byte) error {
	pd, err := ParseDialect(string(b))
	if err != nil {
		return err
	}
	*d = pd
	return nil
}

func (d Dialect) IsBrace() bool { return d == BraceDialect }
func (d Dialect) IsColon() bool { return d == ColonDialect }

// Dialects returns all supported dialects.
func Dialects() []Dialect {
	return []Dialect{BraceDialect, ColonDialect}
}
