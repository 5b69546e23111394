package dirbuild

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/loomgen/go-loom/debug"
)

type syncState struct {
	diff io.Writer
}

// SyncOption adjusts one Sync call.
type SyncOption func(*syncState)

// WithDiff switches Sync into preview mode: instead of writing, each
// file is rendered and diffed against its on-disk content, and the
// diffs are written to w. Nothing on disk changes, and no directories
// are created.
func WithDiff(w io.Writer) SyncOption {
	return func(st *syncState) {
		st.diff = w
	}
}

// Sync writes the directory tree under parent. The tree's own Name
// becomes the top-level directory.
func (d *Dir) Sync(parent string, opts ...SyncOption) error {
	st := &syncState{}
	for _, opt := range opts {
		opt(st)
	}
	return d.sync(filepath.Join(parent, d.Name), st)
}

func (d *Dir) sync(path string, st *syncState) error {
	if st.diff == nil {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return err
		}
	}
	for _, f := range d.Files {
		target := filepath.Join(path, f.Name)
		var buf bytes.Buffer
		if err := f.Render(&buf); err != nil {
			return fmt.Errorf("render %s: %w", target, err)
		}
		if st.diff != nil {
			if err := diffFile(st.diff, target, buf.String()); err != nil {
				return err
			}
			continue
		}
		if debug.Sync() {
			debug.Logf("sync %s (%d bytes)\n", target, buf.Len())
		}
		if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
			return err
		}
	}
	for _, sub := range d.Dirs {
		if err := sub.sync(filepath.Join(path, sub.Name), st); err != nil {
			return err
		}
	}
	return nil
}

func diffFile(w io.Writer, target, next string) error {
	prev := ""
	if b, err := os.ReadFile(target); err == nil {
		prev = string(b)
	} else if !os.IsNotExist(err) {
		return err
	}
	if prev == next {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(prev, next, false)
	if _, err := fmt.Fprintf(w, "--- %s\n", target); err != nil {
		return err
	}
	_, err := io.WriteString(w, dmp.DiffPrettyText(diffs))
	return err
}
