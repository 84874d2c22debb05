// Package eval runs expressions against decoded documents.
//
// A document's tables become nested maps, so expressions address values
// the way the document spells them: "server.port > 1024". A few helper
// functions reach back into the tree (get, has, keys) or out to the
// process environment (getenv).
//
// # Related Packages
//
//   - github.com/boml-format/go-boml/ir - the document tree
//   - github.com/boml-format/go-boml/parse - produces the tree
package eval
