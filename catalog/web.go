package catalog

import (
	"github.com/loomgen/go-loom/format"
	"github.com/loomgen/go-loom/ir"
)

func init() {
	Register(webMod{})
}

// webMod scaffolds a static/templates web layer. When the rust module
// ran first it also pulls the rocket stack into Cargo.toml.
type webMod struct{}

func (webMod) Name() string { return "web" }

func (m webMod) Pipe(p *Project) error {
	m.static(p)
	m.templates(p)
	m.cargo(p)
	m.src(p)
	p.Recommend.Push(ir.Text(`"karunamurti.tera",`))
	return nil
}

func (webMod) static(p *Project) {
	static := p.Root.Dir("static")
	gitiFor(static)
	css := static.File("css.css", format.Plain())
	css.Push(ir.Text("#localtime { position: absolute; top: 0; right: 0; }"))
	css.Push(ir.Text("#logo      { max-height: 64px; }"))
}

func (webMod) templates(p *Project) {
	tpl := p.Root.Dir("templates")
	gitiFor(tpl)
	idx := tpl.File("index.html", format.HTML())
	idx.Push(ir.Text("<!DOCTYPE html>"))

	head := ir.Markup("head").
		Push(ir.InlineMarkup("title").Push(ir.Text(p.Manifest.Title))).
		Push(ir.VoidMarkup("meta").Set("charset", "utf-8")).
		Push(ir.VoidMarkup("meta").
			Set("name", "viewport").
			Set("content", "width=device-width, initial-scale=1")).
		Push(ir.VoidMarkup("link").
			Set("rel", "stylesheet").
			Set("href", "/static/css.css")).
		Push(ir.InlineMarkup("script").Set("src", "/static/js.js"))

	nav := ir.Markup("nav").
		Push(ir.VoidMarkup("img").Set("id", "logo").Set("src", "/static/logo.png")).
		Push(ir.InlineMarkup("span").Set("id", "localtime").
			Push(ir.Text("{{localtime}}")))
	body := ir.Markup("body").
		Push(nav).
		Push(ir.Markup("div").Set("class", "container").
			Push(ir.Text("{% block body %}{% endblock %}")))

	idx.Push(ir.Markup("html").Set("lang", "en").Push(head).Push(body))
}

// src wires the rocket routes into src/main.rs. Without the rust
// module there is no main.rs, so the web layer stays static-only.
func (webMod) src(p *Project) {
	if p.Main == nil {
		return
	}
	p.Main.Body().Ins(0, ir.Section("rocket").WithSfx("").
		Push(ir.Text("#[macro_use]")).
		Push(ir.Text("extern crate rocket;")).
		Push(ir.Text("extern crate rocket_contrib;")).
		Push(ir.Text("use rocket_contrib::templates::Template;")))

	p.Main.Push(ir.Group().WithPfx("").
		Push(ir.Text("use rocket::response::NamedFile;")).
		Push(ir.Text("use std::path::{Path, PathBuf};")).
		Push(ir.Fn("static_file", "file: PathBuf").
			WithRet("Option<NamedFile>").
			WithPfx(`#[get("/static/<file..>")]`).
			Push(ir.Text(`NamedFile::open(Path::new("static/").join(file)).ok()`))).
		Push(ir.Fn("index").
			WithRet("Template").
			WithPfx(`#[get("/")]`).
			Push(ir.Text(`let context: std::collections::HashMap<&str, &str> = [("title", "index")].into();`)).
			Push(ir.Text(`Template::render("index", &context)`))))
}

func (webMod) cargo(p *Project) {
	if p.Deps == nil {
		return
	}
	p.Deps.Push(ir.Section("web").
		Push(ir.Text(`chrono = "0.4"`)).
		Push(ir.Text(`serde = "1.0"`)).
		Push(ir.Text(`rocket = { version = "0.4" }`)).
		Push(ir.Text(`rocket_contrib = { version = "0.4", features = ["tera_templates"] }`)))
}
