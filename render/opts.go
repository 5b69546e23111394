package render

type Option func(*state)

// Depth sets the starting indentation depth.
func Depth(n int) Option {
	return func(st *state) { st.depth = n }
}

// WithColors enables ANSI colored output, for terminal previews only;
// artifact output must stay plain.
func WithColors(c *Colors) Option {
	return func(st *state) { st.color = c.Color }
}
