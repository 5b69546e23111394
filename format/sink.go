package format

// Sink describes one output target: the indentation unit repeated per
// depth, the single-line comment marker used for section banners, and
// the dialect selecting declaration shapes. The render engine treats a
// Sink as read-only configuration.
type Sink struct {
	Indent  string
	Comment string
	Dialect Dialect
}

// Plain is the default sink: four-space indent, hash comments, colon
// blocks.
func Plain() Sink {
	return Sink{Indent: "    ", Comment: "#", Dialect: ColonDialect}
}

func Rust() Sink {
	return Sink{Indent: "    ", Comment: "//", Dialect: BraceDialect}
}

func Python() Sink {
	return Sink{Indent: "    ", Comment: "#", Dialect: ColonDialect}
}

// Makefile sinks indent with hard tabs; make requires them.
func Makefile() Sink {
	return Sink{Indent: "\t", Comment: "#", Dialect: ColonDialect}
}

func JSON() Sink {
	return Sink{Indent: "    ", Comment: "//", Dialect: BraceDialect}
}

func TOML() Sink {
	return Sink{Indent: "    ", Comment: "#", Dialect: ColonDialect}
}

func HTML() Sink {
	return Sink{Indent: "    ", Comment: "#", Dialect: BraceDialect}
}
