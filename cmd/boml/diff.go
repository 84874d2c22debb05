package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/boml-format/go-boml/ir"
	"github.com/boml-format/go-boml/libdiff"
	"github.com/boml-format/go-boml/parse"
)

var (
	addColor = color.New(color.FgGreen).SprintFunc()
	delColor = color.New(color.FgRed).SprintFunc()
	modColor = color.New(color.FgYellow).SprintFunc()
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	cfg.setupColor(cc.Out)
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: at most one argument may be stdin", cli.ErrUsage)
	}
	from, err := diffArg(cfg, args[0])
	if err != nil {
		return err
	}
	to, err := diffArg(cfg, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	changes := libdiff.Diff(from, to)
	for _, c := range changes {
		line := c.String()
		switch line[0] {
		case '+':
			line = addColor(line)
		case '-':
			line = delColor(line)
		case '~':
			line = modColor(line)
		}
		fmt.Fprintf(cc.Out, "%s\n", line)
	}
	if len(changes) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffArg(cfg *DiffConfig, arg string) (*ir.Table, error) {
	src, err := readArg(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	doc, err := parse.Parse(src, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, nil
}
