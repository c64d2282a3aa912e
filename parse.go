// Package yang parses YANG modules and submodules (RFC 7950) into a
// typed intermediate representation. It performs no semantic
// validation — range/length/pattern checking, identity resolution,
// leafref path evaluation, and cross-module resolution are the
// responsibility of higher layers (§1).
package yang

import (
	"bytes"
	"log/slog"

	"github.com/golangyang/yang/internal/cst"
)

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	logger   *slog.Logger
	maxDepth int
}

// WithLogger sets the logger for debug/trace output during parsing.
// If not set, no logging occurs (zero overhead), mirroring gomib's
// WithLogger.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(c *parseConfig) { c.logger = logger }
}

// WithMaxDepth overrides the statement-nesting depth limit (§5,
// default 256). A non-positive value is ignored.
func WithMaxDepth(depth int) ParseOption {
	return func(c *parseConfig) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// Parse parses source as a single YANG `module` or `submodule`
// statement and returns the corresponding typed Document (§6). Parsing
// is a pure function of source: no I/O, no global state, and the
// returned Document owns all of its strings independently of source.
//
// A first syntactic error terminates parsing; Parse never returns a
// partial Document alongside an error.
func Parse(source []byte, opts ...ParseOption) (Document, error) {
	cfg := parseConfig{maxDepth: cst.DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	// A leading UTF-8 byte-order mark is dropped here, so the parser's
	// keyword/argument text and the error positions all refer to the
	// same bytes as the lexer's spans.
	source = bytes.TrimPrefix(source, []byte{0xEF, 0xBB, 0xBF})

	parser := cst.New(source, cfg.maxDepth, cfg.logger)
	stmt, cstErr := parser.ParseDocument()
	if cstErr != nil {
		return nil, newParseError(cstErrorKind(cstErr.Kind), source, cstErr.Span, cstErr.Message)
	}

	b := newBuilder(source, cfg.logger)
	return b.buildDocument(stmt)
}

func cstErrorKind(k cst.ErrorKind) ErrorKind {
	switch k {
	case cst.KindLexical:
		return ErrLexical
	case cst.KindTrailingInput:
		return ErrTrailingInput
	case cst.KindDepth:
		return ErrDepth
	default:
		return ErrSyntax
	}
}
