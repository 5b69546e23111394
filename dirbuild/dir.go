package dirbuild

import (
	"github.com/loomgen/go-loom/format"
)

// Dir is one directory in the output tree. Subdirectories and files
// keep insertion order; Sync creates them in that order.
type Dir struct {
	Name  string
	Dirs  []*Dir
	Files []*File
}

func NewDir(name string) *Dir {
	return &Dir{Name: name}
}

// Dir attaches and returns a new subdirectory.
func (d *Dir) Dir(name string) *Dir {
	sub := NewDir(name)
	d.Dirs = append(d.Dirs, sub)
	return sub
}

// File attaches and returns a new file.
func (d *Dir) File(name string, sink format.Sink) *File {
	f := NewFile(name, sink)
	d.Files = append(d.Files, f)
	return f
}

// Attach adds an already-built file, returning the directory for
// chaining.
func (d *Dir) Attach(f *File) *Dir {
	d.Files = append(d.Files, f)
	return d
}

// Lookup returns the immediate child directory with the given name, or
// nil.
func (d *Dir) Lookup(name string) *Dir {
	for _, sub := range d.Dirs {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// LookupFile returns the file with the given name in this directory, or
// nil.
func (d *Dir) LookupFile(name string) *File {
	for _, f := range d.Files {
		if f.Name == name {
			return f
		}
	}
	return nil
}
