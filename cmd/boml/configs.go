package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/boml-format/go-boml/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='force colored output'"`
	NoColor bool `cli:"name=nocolor desc='disable colored output'"`
	Depth   int  `cli:"name=depth desc='max value nesting depth'"`
	Copy    bool `cli:"name=copy desc='copy strings out of the source buffer'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Depth > 0 {
		res = append(res, parse.MaxDepth(cfg.Depth))
	}
	if cfg.Copy {
		res = append(res, parse.CopyStrings())
	}
	return res
}

// setupColor resolves the color flags against w: explicit flags win,
// otherwise color turns on when w is a terminal.
func (cfg *MainConfig) setupColor(w io.Writer) {
	switch {
	case cfg.Color:
		color.NoColor = false
	case cfg.NoColor:
		color.NoColor = true
	default:
		f, ok := w.(*os.File)
		color.NoColor = !ok || !isatty.IsTerminal(f.Fd())
	}
}

// readArg reads a file argument, with "-" meaning stdin.
func readArg(arg string) (string, error) {
	if arg == "-" {
		d, err := io.ReadAll(os.Stdin)
		return string(d), err
	}
	d, err := os.ReadFile(arg)
	return string(d), err
}

type CheckConfig struct {
	*MainConfig
	Watch bool `cli:"name=watch desc='re-check files whenever they change'"`
	Quiet bool `cli:"name=q desc='no diagnostics, just the exit status'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DumpConfig struct {
	*MainConfig
	J bool `cli:"name=j aliases=json desc='JSON output (default)'"`
	Y bool `cli:"name=y aliases=yaml desc='YAML output'"`

	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='RFC 7386 merge patch instead of RFC 6902'"`

	Patch *cli.Command
}
