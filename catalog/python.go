package catalog

import (
	"github.com/loomgen/go-loom/format"
	"github.com/loomgen/go-loom/ir"
)

func init() {
	Register(pythonMod{})
}

// pythonMod scaffolds a venv-local python setup: requirements.txt, the
// interpreter tools pinned to ./bin, and editor config for the venv
// clutter.
type pythonMod struct{}

func (pythonMod) Name() string { return "python" }

func (m pythonMod) Pipe(p *Project) error {
	m.gitignore(p)
	m.packages(p)
	m.mk(p)
	m.src(p)
	m.editor(p)
	return nil
}

func (pythonMod) gitignore(p *Project) {
	p.Giti.Push(ir.Group().WithSfx("").
		Push(ir.Text("/bin/")).
		Push(ir.Text("/lib64/")).
		Push(ir.Text("/include/")).
		Push(ir.Text("/share/")).
		Push(ir.Text("pyvenv.cfg")).
		Push(ir.Text("*.pyc")))
	p.Lib.LookupFile(".gitignore").Body().Ins(0, ir.Text("python*/"))
}

func (pythonMod) packages(p *Project) {
	p.Root.File("requirements.txt", format.Plain())
	p.Apt.Push(ir.Text("python3 python3-venv"))
}

func (pythonMod) mk(p *Project) {
	p.Mk.Tools.Push(ir.Group().
		Push(mkVar("PY", "$(BIN)/python3")).
		Push(mkVar("PIP", "$(BIN)/pip3")).
		Push(mkVar("PYT", "$(BIN)/pytest")).
		Push(mkVar("PEP", "$(BIN)/autopep8")))
	p.Mk.UpdateRule.
		Push(ir.Text("$(PIP) install -U pytest autopep8")).
		Push(ir.Text("$(PIP) install -U -r requirements.txt"))
	*p.Mk.InstallRule.Str += " $(PIP)"
	p.Mk.Install.Push(ir.Text("$(PY) $(PIP) $(PYT) $(PEP):").WithPfx("").
		Push(ir.Text("python3 -m venv .")).
		Push(ir.Text("$(MAKE) update")))
}

func (pythonMod) src(p *Project) {
	f := p.Src.File(p.Manifest.Name+".py", format.Python())
	f.Top.Push(ir.Text("#!/usr/bin/env python3"))
	f.Push(ir.Class("Object").
		Push(ir.Method("__init__", "V").
			Push(ir.Text("self.value = V")).
			Push(ir.Text("self.nest = []"))).
		Push(ir.Method("box", "that").WithPfx("").
			Push(ir.Text("if isinstance(that, Object): return that")).
			Push(ir.Text("raise TypeError(['box', type(that), that])"))))
}

func (pythonMod) editor(p *Project) {
	py := ir.Group().WithSfx("").
		Push(ir.Text(`"python.pythonPath":          "./bin/python3",`)).
		Push(ir.Text(`"python.formatting.provider": "autopep8",`))
	p.SettingsRoot.Ins(0, py)

	ex := ir.Text(`"**/lib/python**": true, "**/pyvenv.cfg": true,`)
	p.Exclude.Push(ex)
	p.Watcher.Push(ex)
	p.Recommend.Push(ir.Text(`"tht13.python",`))
}
