// Package ir is the in-memory representation of a parsed TOML document.
//
// # Overview
//
// A document is a tree of Values rooted at a Table. Value is a closed
// tagged union: exactly one of string, integer, float, boolean, array,
// table, or a raw date/time form is active, reported by Kind. Tables
// are ordered mappings; iteration yields keys in insertion order.
//
// String values either alias the source text the document was parsed
// from or own freshly decoded storage. Raw reports which; a value is
// only ever copied when a basic string contains escape sequences (or
// when parsing was asked to copy everything). A tree holding aliased
// strings keeps its source string reachable.
//
// Date, time, and date-time values hold the raw matched text only.
// Nothing validates that "1979-13-99" names a real day; converting to a
// calendar type is up to the consumer.
//
// # Access
//
// Get performs a plain single-level lookup. The typed getters
// (GetString, GetInteger, ...) return *KeyError for an absent key and
// *TypeError for a present key of the wrong kind; TypeError carries the
// value that was found, so a caller can still use it.
//
// Trees are built in one pass during parsing and are meant to be
// read-only afterward; reading a tree concurrently is safe. The
// From* constructors and the Set/Append builder methods exist for the
// parser and for assembling documents programmatically.
//
// # Related Packages
//
//   - github.com/boml-format/go-boml/parse - builds ir trees from text
//   - github.com/boml-format/go-boml/token - spans and decoding
package ir
