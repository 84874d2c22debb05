package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/boml-format/go-boml/debug"
	"github.com/boml-format/go-boml/parse"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	if args[0] == "-" && len(args) == 1 {
		return fmt.Errorf("%w: a patch from stdin requires file arguments", cli.ErrUsage)
	}
	patchSrc, err := readArg(args[0])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	var ops jsonpatch.Patch
	if !cfg.Merge {
		ops, err = jsonpatch.DecodePatch([]byte(patchSrc))
		if err != nil {
			return fmt.Errorf("error decoding patch %s: %w", args[0], err)
		}
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, arg := range files {
		if err := patchArg(cfg, cc, arg, ops, []byte(patchSrc)); err != nil {
			return err
		}
	}
	return nil
}

func patchArg(cfg *PatchConfig, cc *cli.Context, arg string, ops jsonpatch.Patch, merge []byte) error {
	src, err := readArg(arg)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", arg, err)
	}
	doc, err := parse.Parse(src, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	var res []byte
	if cfg.Merge {
		res, err = jsonpatch.MergePatch(raw, merge)
	} else {
		res, err = ops.Apply(raw)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", arg, err)
	}
	if debug.Patch() {
		debug.Logf("patch %s -> %s\n", arg, res)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, res, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = cc.Out.Write(buf.Bytes())
	return err
}
