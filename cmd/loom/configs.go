package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/loomgen/go-loom/dirbuild"
)

type MainConfig struct {
	Manifest string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) manifestOpt(_ *cli.Context, a string) (any, error) {
	cfg.Manifest = a
	return nil, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) manifestPath() string {
	if cfg.Manifest != "" {
		return cfg.Manifest
	}
	return "loom.yaml"
}

// loadOrDefault falls back to a throwaway manifest when no manifest
// file exists, so inspection commands work outside a project.
func (cfg *MainConfig) loadOrDefault() (*dirbuild.Manifest, error) {
	m, err := dirbuild.LoadManifest(cfg.manifestPath())
	if err == nil {
		return m, nil
	}
	if cfg.Manifest == "" && errors.Is(err, fs.ErrNotExist) {
		return &dirbuild.Manifest{
			Name:  "demo",
			Title: "demo",
			Vars:  map[string]string{},
		}, nil
	}
	return nil, err
}

type GenConfig struct {
	*MainConfig
	DryRun bool `cli:"name=n desc='preview changes as a diff, write nothing'"`
	Env    map[string]string

	Gen *cli.Command
}

func envOptFunc(env map[string]string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: -e wants var=value, got %q", cli.ErrUsage, a)
		}
		env[k] = v
		return v, nil
	})
}

type ModsConfig struct {
	*MainConfig

	Mods *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Color bool `cli:"name=color desc='color the file headers'"`
	IDs   bool `cli:"name=ids desc='show node identities'"`

	Dump *cli.Command
}

func (cfg *DumpConfig) useColor(cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isattyTerminal(f)
}
