package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/scott-cotton/cli"

	"github.com/boml-format/go-boml/debug"
	"github.com/boml-format/go-boml/parse"
	"github.com/boml-format/go-boml/report"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	cfg.setupColor(cc.Out)
	if len(args) == 0 {
		args = []string{"-"}
	}
	if cfg.Watch {
		for _, arg := range args {
			if arg == "-" {
				return fmt.Errorf("%w: cannot watch stdin", cli.ErrUsage)
			}
		}
		return checkWatch(cfg, cc, args)
	}
	bad := 0
	for _, arg := range args {
		if !checkArg(cfg, cc, arg) {
			bad++
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkArg(cfg *CheckConfig, cc *cli.Context, arg string) bool {
	src, err := readArg(arg)
	if err != nil {
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "error reading %s: %v\n", arg, err)
		}
		return false
	}
	_, perr := parse.Parse(src, cfg.parseOpts()...)
	if perr == nil {
		return true
	}
	if cfg.Quiet {
		return false
	}
	fmt.Fprintf(cc.Out, "%s:\n", arg)
	report.Render(cc.Out, src, perr)
	return false
}

// checkWatch re-checks each file as it changes. The parent directories
// are watched rather than the files themselves so that editors which
// save by renaming a temp file over the original stay visible.
func checkWatch(cfg *CheckConfig, cc *cli.Context, files []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error starting watcher: %w", err)
	}
	defer w.Close()
	byAbs := map[string]string{}
	dirs := map[string]bool{}
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		byAbs[abs] = file
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("error watching %s: %w", dir, err)
		}
	}
	for _, file := range files {
		checkWatched(cfg, cc, file)
	}
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			file, ok := byAbs[abs]
			if !ok {
				continue
			}
			if debug.Watch() {
				debug.Logf("watch %s: %s\n", ev.Op, file)
			}
			checkWatched(cfg, cc, file)
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cc.Out, "watch error: %v\n", werr)
		}
	}
}

func checkWatched(cfg *CheckConfig, cc *cli.Context, file string) {
	if checkArg(cfg, cc, file) && !cfg.Quiet {
		fmt.Fprintf(cc.Out, "%s: ok\n", file)
	}
}
