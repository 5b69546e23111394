package catalog

import "github.com/loomgen/go-loom/ir"

func init() {
	Register(gameMod{})
}

// gameMod layers the SDL2 stack onto a cargo crate. Like the web
// module it only touches Cargo.toml and main.rs when the rust module
// ran first.
type gameMod struct{}

func (gameMod) Name() string { return "game" }

func (g gameMod) Pipe(p *Project) error {
	g.packages(p)
	g.cargo(p)
	g.src(p)
	return nil
}

func (gameMod) packages(p *Project) {
	p.Apt.Push(ir.Text("libsdl2-2.0-0 libsdl2-ttf-2.0-0 libsdl2-image-2.0-0"))
	p.AptDev.Push(ir.Text("libsdl2-dev libsdl2-ttf-dev libsdl2-image-dev"))
}

func (gameMod) cargo(p *Project) {
	if p.Deps == nil {
		return
	}
	p.Deps.Push(ir.Section("game").
		Push(ir.Text(`sdl2 = { version = "0.34", features = ["image"] }`)))
}

func (gameMod) src(p *Project) {
	if p.Main == nil {
		return
	}
	p.MainMod.Ins(0, ir.Text("mod game;"))
	p.MainUse.Ins(0, ir.Text("extern crate sdl2;"))
}
