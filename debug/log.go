package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/boml-format/go-boml/ir"
)

// Logf writes to stderr, rendering document values and plain JSON-ish
// arguments as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Value:
			args[i] = renderJSON(x)
		case *ir.Table:
			args[i] = renderJSON(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}

func renderJSON(v json.Marshaler) string {
	d, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
