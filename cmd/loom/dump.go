package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/loomgen/go-loom/catalog"
	"github.com/loomgen/go-loom/dirbuild"
	"github.com/loomgen/go-loom/ir"
)

func isattyTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	m, err := cfg.loadOrDefault()
	if err != nil {
		return err
	}
	p := catalog.NewProject(m)
	modNames := args
	if len(modNames) == 0 {
		modNames = m.Mods
	}
	if err := p.Apply(modNames...); err != nil {
		return err
	}
	return dumpDir(cfg, cc, p.Root, "")
}

func dumpDir(cfg *DumpConfig, cc *cli.Context, d *dirbuild.Dir, prefix string) error {
	dir := path.Join(prefix, d.Name)
	var opts []ir.DumpOption
	if cfg.IDs {
		opts = append(opts, ir.ShowIDs())
	}
	for _, f := range d.Files {
		hdr := dir + "/" + f.Name
		if cfg.useColor(cc) {
			hdr = color.BlueString(hdr)
		}
		if _, err := fmt.Fprintln(cc.Out, hdr); err != nil {
			return err
		}
		tree := ir.Group().Push(f.Top)
		for i := 0; i < f.Body().Len(); i++ {
			tree.Push(f.Body().At(i))
		}
		tree.Push(f.Bot)
		out := strings.TrimPrefix(ir.Dump(tree, opts...), "\n")
		if _, err := fmt.Fprintln(cc.Out, out); err != nil {
			return err
		}
	}
	for _, sub := range d.Dirs {
		if err := dumpDir(cfg, cc, sub, dir); err != nil {
			return err
		}
	}
	return nil
}
