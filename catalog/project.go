package catalog

import (
	"fmt"

	"github.com/loomgen/go-loom/dirbuild"
	"github.com/loomgen/go-loom/format"
	"github.com/loomgen/go-loom/ir"
)

// Project is one generated project skeleton. The exported fields are
// hooks: modules push into them to grow the shared files. Cargo, Deps
// and Main stay nil until the rust module runs.
type Project struct {
	Manifest *dirbuild.Manifest

	Root *dirbuild.Dir
	Bin  *dirbuild.Dir
	Doc  *dirbuild.Dir
	Lib  *dirbuild.Dir
	Src  *dirbuild.Dir
	Tmp  *dirbuild.Dir

	Giti   *dirbuild.File
	Apt    *dirbuild.File
	AptDev *dirbuild.File
	Readme *dirbuild.File
	Doxy   *dirbuild.File
	Mk     *Makefile

	Settings   *dirbuild.File
	Tasks      *dirbuild.File
	Extensions *dirbuild.File

	SettingsRoot *ir.Node
	Exclude      *ir.Node
	Watcher      *ir.Node
	Recommend    *ir.Node

	Cargo   *dirbuild.File
	Deps    *ir.Node
	Main    *dirbuild.File
	MainMod *ir.Node
	MainUse *ir.Node

	applied []string
}

// NewProject builds the base skeleton for a manifest: the directory
// layout with per-directory gitignores, apt package lists, README,
// Makefile, and vscode config. Modules add everything else.
func NewProject(m *dirbuild.Manifest) *Project {
	p := &Project{Manifest: m}
	p.dirs()
	p.apt()
	p.readme()
	p.doxy()
	p.Mk = newMakefile(p.Root)
	p.vscode()
	return p
}

// Sync writes the project tree under parent; see dirbuild.Dir.Sync.
func (p *Project) Sync(parent string, opts ...dirbuild.SyncOption) error {
	return p.Root.Sync(parent, opts...)
}

func gitiFor(d *dirbuild.Dir, lines ...string) *dirbuild.File {
	f := dirbuild.Gitignore()
	for _, l := range lines {
		f.Push(ir.Text(l))
	}
	d.Attach(f)
	return f
}

func (p *Project) dirs() {
	p.Root = dirbuild.NewDir(p.Manifest.Name)
	p.Giti = gitiFor(p.Root,
		"*~", "*.swp", "*.log", "",
		"/docs/", "")
	p.Bin = p.Root.Dir("bin")
	gitiFor(p.Bin, "*")
	p.Doc = p.Root.Dir("doc")
	gitiFor(p.Doc, "*.pdf")
	p.Lib = p.Root.Dir("lib")
	gitiFor(p.Lib)
	p.Src = p.Root.Dir("src")
	gitiFor(p.Src)
	p.Tmp = p.Root.Dir("tmp")
	gitiFor(p.Tmp, "*")
}

func (p *Project) apt() {
	p.Apt = p.Root.File("apt.txt", format.Plain())
	p.Apt.Push(ir.Text("git make curl"))
	p.AptDev = p.Root.File("apt.dev", format.Plain())
	p.AptDev.Push(ir.Text("code meld doxygen"))
}

func (p *Project) readme() {
	m := p.Manifest
	p.Readme = p.Root.File("README.md", format.Plain())
	p.Readme.Push(ir.Text("# `" + m.Name + "`"))
	p.Readme.Push(ir.Text("## " + m.Title))
	if m.Author != "" || m.License != "" {
		line := "(c) " + m.Author
		if m.Email != "" {
			line += " <<" + m.Email + ">>"
		}
		if m.License != "" {
			line += " " + m.License
		}
		p.Readme.Push(ir.Text(line).WithPfx(""))
	}
	if m.About != "" {
		p.Readme.Push(ir.Text(m.About).WithPfx(""))
	}
}

// doxy writes the doxygen config; `make doxy` regenerates /docs from it.
func (p *Project) doxy() {
	m := p.Manifest
	p.Doxy = p.Root.File("doxy.gen", format.Plain())
	for _, kv := range [][2]string{
		{"PROJECT_NAME", `"` + m.Name + `"`},
		{"PROJECT_BRIEF", `"` + m.Title + `"`},
		{"PROJECT_LOGO", "doc/logo.png"},
		{"OUTPUT_DIRECTORY", ""},
		{"WARN_IF_UNDOCUMENTED", "NO"},
		{"INPUT", "README.md src"},
		{"RECURSIVE", "YES"},
		{"USE_MDFILE_AS_MAINPAGE", "README.md"},
		{"HTML_OUTPUT", "docs"},
		{"GENERATE_LATEX", "NO"},
	} {
		line := fmt.Sprintf("%-22s =", kv[0])
		if kv[1] != "" {
			line += " " + kv[1]
		}
		p.Doxy.Push(ir.Text(line))
	}
}

func (p *Project) vscode() {
	vs := p.Root.Dir(".vscode")
	p.settings(vs)
	p.tasks(vs)
	p.extensions(vs)
}

func multiCommand(key, command string) *ir.Node {
	send := ir.Text(`{"command": "workbench.action.terminal.sendSequence",`).
		Push(ir.Text(`"args": {"text": "\u000D clear ; ` + command + ` \u000D"}}`))
	seq := ir.Block(`"sequence": [`, `]`).
		Push(ir.Text(`"workbench.action.files.saveAll",`)).
		Push(send)
	return ir.Block(`{`, `},`).
		Push(ir.Text(`"command": "multiCommand.` + key + `",`)).
		Push(seq)
}

func (p *Project) settings(vs *dirbuild.Dir) {
	p.Settings = vs.File("settings.json", format.JSON())

	multi := ir.Block(`"multiCommand.commands": [`, `],`).
		Push(multiCommand("f12", "make all"))

	p.Exclude = ir.Block(`"files.exclude": {`, `},`).
		Push(ir.Text(`"**/docs/**": true,`))
	p.Watcher = ir.Block(`"files.watcherExclude": {`, `},`)
	assoc := ir.Block(`"files.associations": {`, `},`)
	files := ir.Section("files").WithPfx("").
		Push(p.Exclude).Push(p.Watcher).Push(assoc)

	editor := ir.Section("editor").WithPfx("").
		Push(ir.Text(`"editor.tabSize": 4,`)).
		Push(ir.Text(`"editor.rulers": [80],`)).
		Push(ir.Text(`"workbench.tree.indent": 32`))

	p.SettingsRoot = ir.Block("{", "}").
		Push(multi).Push(files).Push(editor)
	p.Settings.Push(p.SettingsRoot)
}

func vsTask(group, target string) *ir.Node {
	return ir.Block(`{`, `},`).
		Push(ir.Text(`"label":          "` + group + `: ` + target + `",`)).
		Push(ir.Text(`"type":           "shell",`)).
		Push(ir.Text(`"command":        "make ` + target + `",`)).
		Push(ir.Text(`"problemMatcher": []`))
}

func (p *Project) tasks(vs *dirbuild.Dir) {
	p.Tasks = vs.File("tasks.json", format.JSON())
	list := ir.Block(`"tasks": [`, `]`).
		Push(vsTask("project", "install")).
		Push(vsTask("project", "update"))
	p.Tasks.Push(ir.Block("{", "}").
		Push(ir.Text(`"version": "2.0.0",`)).
		Push(list))
}

func (p *Project) extensions(vs *dirbuild.Dir) {
	p.Extensions = vs.File("extensions.json", format.JSON())
	p.Recommend = ir.Block(`"recommendations": [`, `]`).
		Push(ir.Text(`"ryuta46.multi-command",`)).
		Push(ir.Text(`"stkb.rewrap",`))
	p.Extensions.Push(ir.Block("{", "}").Push(p.Recommend))
}
