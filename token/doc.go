// Package token turns TOML source text into a stream of tokens.
//
// # Usage
//
//	lx := token.NewLexer(src)
//	for {
//	    tok, err := lx.Next()
//	    if err != nil {
//	        return err
//	    }
//	    if tok.Type == token.TEOF {
//	        break
//	    }
//	    // ...
//	}
//
// The lexer is lazy and single-pass: each call to Next scans just far
// enough to produce one token, so input past the first malformed
// construct is never examined. Tokens carry a Span of byte offsets into
// the source and, for basic strings and numbers, a Mod flag recording
// whether decoding will need to modify the text (escape sequences,
// underscores).
//
// Decoding of string and number payloads lives here too (DecodeBasic,
// DecodeMultiBasic, DecodeInteger, DecodeFloat), kept separate from
// scanning so the caller can decide when, and whether, to pay for it.
//
// # Related Packages
//
//   - github.com/boml-format/go-boml/parse - structural parsing
//   - github.com/boml-format/go-boml/ir - parsed value representation
package token
