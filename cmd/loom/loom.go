package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/loomgen/go-loom/catalog"
	"github.com/loomgen/go-loom/dirbuild"
)

func loomMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func gen(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		return err
	}
	m, err := dirbuild.LoadManifest(cfg.manifestPath())
	if err != nil {
		return err
	}
	for k, v := range cfg.Env {
		m.Vars[k] = v
	}
	p := catalog.NewProject(m)
	if err := p.Apply(m.Mods...); err != nil {
		return err
	}
	dest := "."
	if len(args) > 0 {
		dest = args[0]
	}
	if cfg.DryRun {
		return p.Sync(dest, dirbuild.WithDiff(cc.Out))
	}
	if err := p.Sync(dest); err != nil {
		return err
	}
	loomLog.Info("synced",
		"project", m.Name,
		"mods", strings.Join(p.Applied(), ","),
		"dest", dest)
	return nil
}

func mods(cfg *ModsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Mods.Parse(cc, args); err != nil {
		return err
	}
	for _, name := range catalog.Names() {
		fmt.Fprintln(cc.Out, name)
	}
	return nil
}
