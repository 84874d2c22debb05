package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Eval  bool
	Patch bool
	Watch bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("BOML_DEBUG_EVAL")
	d.Patch = boolEnv("BOML_DEBUG_PATCH")
	d.Watch = boolEnv("BOML_DEBUG_WATCH")
	d.LSP = boolEnv("BOML_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Watch() bool {
	return d.Watch
}
func LSP() bool {
	return d.LSP
}
