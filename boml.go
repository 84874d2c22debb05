// Package boml parses TOML 1.0 documents.
//
// Most uses go through Unmarshal, which parses a document and decodes
// it into a Go value in one call:
//
//	var cfg struct {
//		Host  string `toml:"host"`
//		Ports []int  `toml:"ports"`
//	}
//	err := boml.Unmarshal(data, &cfg)
//
// The subpackages expose the pieces: parse turns source text into the
// ordered tree defined by ir, gomap converts trees to and from Go
// values, report renders parse errors with source context, eval runs
// expressions over parsed documents, and libdiff compares trees.
package boml

import (
	"github.com/boml-format/go-boml/gomap"
	"github.com/boml-format/go-boml/parse"
)

// Unmarshal parses data as a TOML document and decodes it into v,
// which must be a non-nil pointer. Keys with no destination field are
// skipped; see gomap.FromTable for the conversion rules and gomap's
// options for stricter ones.
func Unmarshal(data []byte, v any) error {
	doc, err := parse.Parse(string(data))
	if err != nil {
		return err
	}
	return gomap.FromTable(doc, v)
}

// Valid reports whether data is a syntactically valid document.
func Valid(data []byte) bool {
	_, err := parse.Parse(string(data))
	return err == nil
}
