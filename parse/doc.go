// Package parse turns TOML source text into a document tree.
//
// # Usage
//
//	doc, err := parse.Parse(src)
//	if err != nil {
//		var perr *parse.Error
//		if errors.As(err, &perr) {
//			fmt.Println(perr.Kind, perr.Span, perr.Pos)
//		}
//		return err
//	}
//	name, err := doc.GetString("name")
//
// Parsing is a pure function from source text to tree or error. It is
// single pass and fail fast: the first malformed construct stops the
// parse, the returned *Error carries the kind and byte span of the
// earliest failure, and no partial tree is returned. Repeated parses
// of the same input report the same kind and span.
//
// String values alias the source text unless escape decoding forced a
// copy; see the ir package for the ownership rules and the CopyStrings
// option for detaching a tree from its source.
//
// # Related Packages
//
//   - github.com/boml-format/go-boml/token - the lexer underneath
//   - github.com/boml-format/go-boml/ir - the tree Parse produces
//   - github.com/boml-format/go-boml/report - renders *Error nicely
package parse
