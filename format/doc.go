// Package format describes rendering targets: the Dialect enum selecting
// the declaration shape and the Sink descriptor carrying indentation and
// comment conventions for one output artifact.
package format
