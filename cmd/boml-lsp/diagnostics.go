package main

import (
	"context"
	"errors"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/boml-format/go-boml/debug"
	"github.com/boml-format/go-boml/parse"
	"github.com/boml-format/go-boml/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentURI]*document
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: map[protocol.DocumentURI]*document{}}
}

// document is one open text document with its last parse. err is nil
// when the content parses.
type document struct {
	uri     protocol.DocumentURI
	content string
	version int32
	pd      *token.PosDoc
	err     error
}

func (ds *documentStore) get(uri protocol.DocumentURI) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri protocol.DocumentURI, content string, version int32) *document {
	pd := token.NewPosDoc(content)
	pd.Index(len(content))
	_, err := parse.Parse(content)
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		pd:      pd,
		err:     err,
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri protocol.DocumentURI) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// position converts a byte offset into a protocol position, with the
// character measured in UTF-16 code units as the protocol requires.
func (doc *document) position(off int) protocol.Position {
	off = min(off, len(doc.content))
	line, col := doc.pd.LineCol(off)
	lineStart := off - col
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(doc.content[lineStart:off])),
	}
}

// utf16Len is the length of s in UTF-16 code units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		diagnostics = append(diagnostics, diagnostic(doc))
	}
	if debug.LSP() {
		debug.Logf("publish %s v%d: %d diagnostics\n", doc.uri, doc.version, len(diagnostics))
	}
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         doc.uri,
		Diagnostics: diagnostics,
	})
}

func diagnostic(doc *document) protocol.Diagnostic {
	d := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 1},
		},
		Severity: protocol.DiagnosticSeverityError,
		Source:   "boml",
		Message:  doc.err.Error(),
	}
	var pe *parse.Error
	if !errors.As(doc.err, &pe) {
		return d
	}
	msg := pe.Kind.String()
	if pe.Err != nil && pe.Err.Error() != msg {
		msg += ": " + pe.Err.Error()
	}
	d.Message = msg
	span := pe.Span
	if span.End <= span.Start {
		// most editors render zero-width markers as nothing
		span.End = span.Start + 1
	}
	d.Range = protocol.Range{
		Start: doc.position(span.Start),
		End:   doc.position(span.End),
	}
	return d
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	td := params.TextDocument
	if debug.LSP() {
		debug.Logf("open %s v%d (%d bytes)\n", td.URI, td.Version, len(td.Text))
	}
	doc := s.docs.put(td.URI, td.Text, td.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync, so the last change carries the whole document
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	td := params.TextDocument
	if debug.LSP() {
		debug.Logf("change %s v%d (%d bytes)\n", td.URI, td.Version, len(content))
	}
	doc := s.docs.put(td.URI, content, td.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	if doc := s.docs.get(params.TextDocument.URI); doc != nil {
		s.publishDiagnostics(ctx, doc)
	}
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(params.TextDocument.URI)
	return nil
}
