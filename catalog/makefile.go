package catalog

import (
	"fmt"

	"github.com/loomgen/go-loom/dirbuild"
	"github.com/loomgen/go-loom/format"
	"github.com/loomgen/go-loom/ir"
)

// Makefile wraps the generated Makefile with hooks into its sections,
// so modules can add variables, tools and rules without re-parsing the
// tree they built.
type Makefile struct {
	File *dirbuild.File

	Vars    *ir.Node
	Dirs    *ir.Node
	Tools   *ir.Node
	Srcs    *ir.Node
	All     *ir.Node
	Doc     *ir.Node
	Install *ir.Node

	InstallRule *ir.Node
	UpdateRule  *ir.Node
}

func mkVar(name, value string) *ir.Node {
	return ir.Text(fmt.Sprintf("%-7s = %s", name, value))
}

func newMakefile(d *dirbuild.Dir) *Makefile {
	mk := &Makefile{File: d.File("Makefile", format.Makefile())}

	mk.Vars = ir.Section("var").
		Push(mkVar("MODULE", "$(notdir $(CURDIR))")).
		Push(mkVar("OS", "$(shell uname -s)")).
		Push(mkVar("NOW", "$(shell date +%d%m%y)")).
		Push(mkVar("REL", "$(shell git rev-parse --short=4 HEAD)")).
		Push(mkVar("BRANCH", "$(shell git rev-parse --abbrev-ref HEAD)"))

	mk.Dirs = ir.Section("dir").WithPfx("").
		Push(mkVar("CWD", "$(CURDIR)")).
		Push(mkVar("BIN", "$(CWD)/bin")).
		Push(mkVar("DOC", "$(CWD)/doc")).
		Push(mkVar("LIB", "$(CWD)/lib")).
		Push(mkVar("SRC", "$(CWD)/src")).
		Push(mkVar("TMP", "$(CWD)/tmp"))

	mk.Tools = ir.Section("tool").WithPfx("").
		Push(mkVar("CURL", "curl -L -o"))

	mk.Srcs = ir.Section("src").WithPfx("")

	mk.All = ir.Section("all").WithPfx("").
		Push(ir.Text("all:")).
		Push(ir.Text("test:").WithPfx(""))

	mk.Doc = ir.Section("doc").WithPfx("").
		Push(ir.Text("doxy:").
			Push(ir.Text("rm -rf docs ; doxygen doxy.gen 1>/dev/null")))

	mk.InstallRule = ir.Text("install: $(OS)_install").
		Push(ir.Text("$(MAKE) update"))
	mk.UpdateRule = ir.Text("update: $(OS)_update").WithPfx("")
	mk.Install = ir.Section("install").WithPfx("").
		Push(mk.InstallRule).
		Push(mk.UpdateRule).
		Push(ir.Text("Linux_install Linux_update:").WithPfx("").
			Push(ir.Text("sudo apt update")).
			Push(ir.Text("sudo apt install -u `cat apt.txt apt.dev`")))

	mk.File.
		Push(mk.Vars).
		Push(mk.Dirs).
		Push(mk.Tools).
		Push(mk.Srcs).
		Push(mk.All).
		Push(mk.Doc).
		Push(mk.Install)
	return mk
}
