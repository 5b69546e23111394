package catalog

import (
	"strings"

	"github.com/loomgen/go-loom/format"
	"github.com/loomgen/go-loom/ir"
)

func init() {
	Register(rustMod{})
}

// rustMod scaffolds a cargo crate: Cargo.toml, src/main.rs wired to
// tracing, and the toolchain glue in the Makefile.
type rustMod struct{}

func (rustMod) Name() string { return "rust" }

func (r rustMod) Pipe(p *Project) error {
	r.gitignore(p)
	r.cargo(p)
	r.packages(p)
	r.mk(p)
	r.src(p)
	r.editor(p)
	return nil
}

func (rustMod) gitignore(p *Project) {
	p.Giti.Push(ir.Group().WithSfx("").
		Push(ir.Text("target/")).
		Push(ir.Text("Cargo.lock")))
}

func (rustMod) cargo(p *Project) {
	p.Cargo = p.Root.File("Cargo.toml", format.TOML())

	pkg := ir.Group().WithPfx("[package]").
		Push(ir.Text(`name    = "` + strings.ToLower(p.Manifest.Name) + `"`)).
		Push(ir.Text(`version = "0.0.1"`))

	p.Deps = ir.Group().WithPfx("").
		Push(ir.Text("[dependencies]")).
		Push(ir.Text(`tracing = "0.1"`)).
		Push(ir.Text(`tracing-subscriber = "0.2"`))

	dev := ir.Group().WithPfx("").
		Push(ir.Text("[dev-dependencies]"))

	p.Cargo.Push(pkg).Push(p.Deps).Push(dev)
}

func (rustMod) packages(p *Project) {
	p.AptDev.Push(ir.Text("build-essential"))
}

func (rustMod) mk(p *Project) {
	p.Mk.Dirs.Push(mkVar("CAR", "$(HOME)/.cargo/bin"))
	p.Mk.Tools.Push(ir.Group().
		Push(mkVar("RUSTUP", "$(CAR)/rustup")).
		Push(mkVar("CARGO", "$(CAR)/cargo")).
		Push(mkVar("CWATCH", "$(CAR)/cargo-watch")))
	p.Mk.Srcs.Push(ir.Text(`R += $(shell find src -type f -regex ".+.rs$$")`))
	p.Mk.All.Push(ir.Text("rust:").WithPfx("").
		Push(ir.Text("$(CWATCH) -w Cargo.toml -w src -x test -x fmt -x run")))
	*p.Mk.InstallRule.Str += " $(RUSTUP)"
	p.Mk.UpdateRule.Push(ir.Text("$(RUSTUP) update && $(CARGO) update"))
	p.Mk.Install.Push(ir.Text("$(RUSTUP):").WithPfx("").
		Push(ir.Text(`curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh`)))
}

func (rustMod) src(p *Project) {
	p.Main = p.Src.File("main.rs", format.Rust())
	p.MainMod = ir.Section("mod").
		Push(ir.Text("mod test;"))
	p.Main.Push(p.MainMod)
	p.MainUse = ir.Section("use").WithPfx("").
		Push(ir.Text("use tracing::{info, instrument};"))
	p.Main.Push(p.MainUse)

	main := ir.Fn("main").WithPfx("#[instrument]").
		Push(ir.Text("tracing_subscriber::fmt().compact().init();")).
		Push(ir.Text("let argv: Vec<String> = std::env::args().collect();")).
		Push(ir.Text(`info!("start {:?}", argv);`)).
		Push(ir.Text(`info!("stop");`))
	p.Main.Push(ir.Group().WithPfx("").Push(main))

	test := p.Src.File("test.rs", format.Rust())
	test.Push(ir.Text("#[cfg(test)]"))
	test.Push(ir.Fn("any").WithPfx("#[test]").
		Push(ir.Text("assert_eq!(1, 1);")))
}

func (rustMod) editor(p *Project) {
	// one node feeds both exclude lists
	ex := ir.Text(`"**/target/**": true, "**/Cargo.lock": true,`)
	p.Exclude.Push(ex)
	p.Watcher.Push(ex)
	p.Recommend.
		Push(ir.Text(`"rust-lang.rust",`)).
		Push(ir.Text(`"bungcip.better-toml",`))
}
