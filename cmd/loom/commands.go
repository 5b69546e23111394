package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "m",
			Aliases:     []string{"manifest"},
			Description: "manifest file (default loom.yaml)",
			Type:        cli.NamedFuncOpt(cfg.manifestOpt, "(filepath)"),
		},
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "loom").
		WithSynopsis("loom [opts] command [opts]").
		WithDescription("loom generates project skeletons from a manifest.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return loomMain(cfg, cc, args)
		}).
		WithSubs(
			GenCommand(cfg),
			ModsCommand(cfg),
			DumpCommand(cfg))
}

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg, Env: map[string]string{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "override a manifest var",
			Type:        cli.NamedFuncOpt(envOptFunc(cfg.Env), "(var=value)"),
		})

	cmd := cli.NewCommand("gen").
		WithAliases("g").
		WithSynopsis("gen [-n] [-e var=value ...] [dir]").
		WithDescription("Generate the project tree under dir (default .)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
	cfg.Gen = cmd
	return cmd
}

func ModsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ModsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("mods").
		WithSynopsis("mods").
		WithDescription("List the registered project modules").
		WithRun(func(cc *cli.Context, args []string) error {
			return mods(cfg, cc, args)
		})
	cfg.Mods = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump [-ids] [-color] [mod...]").
		WithDescription("Dump the node trees behind the generated files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}
