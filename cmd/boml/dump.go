package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/boml-format/go-boml/eval"
	"github.com/boml-format/go-boml/ir"
	"github.com/boml-format/go-boml/parse"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if err := dumpArg(cfg, cc, arg); err != nil {
			return err
		}
		if cfg.Y && i < len(args)-1 {
			fmt.Fprintf(cc.Out, "---\n")
		}
	}
	return nil
}

func dumpArg(cfg *DumpConfig, cc *cli.Context, arg string) error {
	src, err := readArg(arg)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", arg, err)
	}
	doc, err := parse.Parse(src, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if cfg.Y {
		d, err := yaml.Marshal(yamlValue(ir.FromTable(doc)))
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		_, err = cc.Out.Write(d)
		return err
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = cc.Out.Write(buf.Bytes())
	return err
}

// yamlValue converts a value into goccy types that keep table key
// order when marshaled.
func yamlValue(v *ir.Value) any {
	switch v.Kind() {
	case ir.TableKind:
		t, _ := v.AsTable()
		ms := make(yaml.MapSlice, 0, t.Len())
		for k, el := range t.All() {
			ms = append(ms, yaml.MapItem{Key: k, Value: yamlValue(el)})
		}
		return ms
	case ir.ArrayKind:
		arr, _ := v.AsArray()
		res := make([]any, len(arr))
		for i, el := range arr {
			res[i] = yamlValue(el)
		}
		return res
	default:
		return eval.ToAny(v)
	}
}
