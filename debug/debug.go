// Package debug gates diagnostic logging behind LOOM_DEBUG_* environment
// variables.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Sync   bool
	Render bool
	Expand bool
	Pipe   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Sync = boolEnv("LOOM_DEBUG_SYNC")
	d.Render = boolEnv("LOOM_DEBUG_RENDER")
	d.Expand = boolEnv("LOOM_DEBUG_EXPAND")
	d.Pipe = boolEnv("LOOM_DEBUG_PIPE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Sync() bool {
	return d.Sync
}
func Render() bool {
	return d.Render
}
func Expand() bool {
	return d.Expand
}
func Pipe() bool {
	return d.Pipe
}
