// Package gomap converts between document trees and native Go values.
//
// FromTable and FromIR decode a parsed document into structs, maps,
// slices, and scalars:
//
//	type Server struct {
//		Host  string `toml:"host"`
//		Ports []int  `toml:"ports"`
//	}
//	var srv Server
//	err := gomap.FromTable(doc, &srv)
//
// ToIR builds a document tree from a Go value, keeping struct fields
// in declaration order:
//
//	v, err := gomap.ToIR(srv)
//
// Struct fields are matched by their `toml` tag, or by their exact Go
// name when untagged. A tag of "-" drops the field, and the omitempty
// option leaves empty fields out of built trees. Types take over their
// own conversion by implementing Unmarshaler or Marshaler, and the
// encoding.TextUnmarshaler and encoding.TextMarshaler interfaces are
// honored for textual forms, which is how time.Time fields decode from
// date-time values.
package gomap
