package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/boml-format/go-boml/eval"
	"github.com/boml-format/go-boml/parse"
)

func bomlEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires one argument, an expression", cli.ErrUsage)
	}
	code := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	fail := false
	for _, arg := range files {
		ok, err := evalArg(cfg, cc, arg, code)
		if err != nil {
			return err
		}
		if !ok {
			fail = true
		}
	}
	if fail {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// evalArg evaluates code against one document. A false boolean result
// reports as a failed evaluation so scripts can branch on the exit
// status.
func evalArg(cfg *EvalConfig, cc *cli.Context, arg, code string) (bool, error) {
	src, err := readArg(arg)
	if err != nil {
		return false, fmt.Errorf("error reading %s: %w", arg, err)
	}
	doc, err := parse.Parse(src, cfg.parseOpts()...)
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	res, err := eval.Eval(doc, code)
	if err != nil {
		return false, fmt.Errorf("error evaluating %s: %w", arg, err)
	}
	d, err := json.Marshal(res)
	if err != nil {
		return false, fmt.Errorf("error encoding result: %w", err)
	}
	fmt.Fprintf(cc.Out, "%s\n", d)
	if b, isBool := res.(bool); isBool {
		return b, nil
	}
	return true, nil
}
