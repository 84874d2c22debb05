package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/boml-format/go-boml/ir"
	"github.com/boml-format/go-boml/parse"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, arg := range files {
		if err := getArg(cfg, cc, arg, path); err != nil {
			return err
		}
	}
	return nil
}

func getArg(cfg *GetConfig, cc *cli.Context, arg, path string) error {
	src, err := readArg(arg)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", arg, err)
	}
	doc, err := parse.Parse(src, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	v, err := doc.Lookup(path)
	if err != nil {
		if errors.Is(err, ir.ErrInvalidKey) {
			// don't encode anything and don't yell either
			return nil
		}
		return fmt.Errorf("error executing get on %s: %w", arg, err)
	}
	d, err := v.MarshalJSON()
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	fmt.Fprintf(cc.Out, "%s\n", d)
	return nil
}
