package dirbuild

import (
	"io"

	"github.com/loomgen/go-loom/format"
	"github.com/loomgen/go-loom/ir"
	"github.com/loomgen/go-loom/render"
)

// File is one generated file. Top and Bot are bannerless groups that
// frame the body; the body accumulates nodes via Push. All three render
// at depth zero with the file's Sink.
type File struct {
	Name string
	Sink format.Sink

	Top *ir.Node
	Bot *ir.Node

	body *ir.Node
}

func NewFile(name string, sink format.Sink) *File {
	return &File{
		Name: name,
		Sink: sink,
		Top:  ir.Group(),
		Bot:  ir.Group(),
		body: ir.Empty(),
	}
}

// Gitignore returns a .gitignore file whose bottom region re-includes
// the file itself, so a sync into a fresh repository never hides it.
func Gitignore() *File {
	f := NewFile(".gitignore", format.Plain())
	f.Bot.Push(ir.Text("!.gitignore"))
	return f
}

// Push appends v to the file body, coercing per ir.Coerce rules.
func (f *File) Push(v any) *File {
	f.body.Push(v)
	return f
}

// Body exposes the body region for callers that need more than Push.
func (f *File) Body() *ir.Node {
	return f.body
}

// Render writes the whole file to w. Body children render one by one so
// the carrier node adds no indentation of its own.
func (f *File) Render(w io.Writer) error {
	if err := render.Render(f.Top, w, f.Sink); err != nil {
		return err
	}
	for i := 0; i < f.body.Len(); i++ {
		if err := render.Render(f.body.At(i), w, f.Sink); err != nil {
			return err
		}
	}
	return render.Render(f.Bot, w, f.Sink)
}
