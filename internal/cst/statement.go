// Package cst builds the concrete syntax tree for YANG source: a tree of
// statement nodes labeled by keyword, with raw (not-yet-decoded) string
// segments for arguments. The builder (package yang) walks this tree to
// produce the typed IR described by the specification; cst performs no
// semantic interpretation of its own.
package cst

import (
	"strings"

	"github.com/golangyang/yang/internal/lexer"
	"github.com/golangyang/yang/internal/types"
)

// Statement is one YANG statement: `keyword argument? (';' | '{' stmt* '}')`.
type Statement struct {
	// Keyword is the literal keyword text, e.g. "leaf", "type", or an
	// extension statement's prefixed form "acme:display-hint".
	Keyword     string
	KeywordSpan types.Span
	// Argument is nil for the (rare) statements with no argument at all,
	// e.g. `input { ... }` / `output { ... }`.
	Argument *Argument
	// HasBraces is true if the statement had a '{ ... }' body (possibly
	// empty), false if it was terminated by ';'.
	HasBraces bool
	Children  []*Statement
	Span      types.Span
}

// Argument is a statement's argument: one unquoted string, or one or more
// quoted segments joined by '+' (§4.1).
type Argument struct {
	Segments []Segment
	Span     types.Span
}

// Segment is one piece of an Argument. For an unquoted argument there is
// exactly one segment with Quote == lexer.NotQuoted. For a quoted argument
// there are one or more segments, each lexer.SingleQuoted or
// lexer.DoubleQuoted, in source order.
type Segment struct {
	Quote lexer.Quote
	// Raw is the segment's source text with its surrounding quotes (if
	// any) already stripped, but otherwise undecoded: single-quoted
	// content is verbatim, double-quoted content still contains its
	// backslash escapes.
	Raw  string
	Span types.Span
}

// Decode resolves the argument to its logical string value (§4.3 item 1):
// decode double-quoted escapes and concatenate '+'-joined segments. A nil
// Argument (the no-argument statements, e.g. `input`/`output`) decodes to
// "". The lexer has already validated that every escape is one of the four
// recognized forms, so decoding here cannot fail.
func (a *Argument) Decode() string {
	if a == nil {
		return ""
	}
	if len(a.Segments) == 1 && a.Segments[0].Quote == lexer.NotQuoted {
		return a.Segments[0].Raw
	}
	var sb strings.Builder
	for _, seg := range a.Segments {
		switch seg.Quote {
		case lexer.SingleQuoted, lexer.NotQuoted:
			sb.WriteString(seg.Raw)
		case lexer.DoubleQuoted:
			sb.WriteString(decodeDoubleQuoted(seg.Raw))
		default:
			internalErrorf("unknown quote kind %d in argument segment", seg.Quote)
		}
	}
	return sb.String()
}

// decodeDoubleQuoted expands the four escapes §4.1 recognizes in
// double-quoted strings: \n \t \" \\. raw must already have passed lexer
// validation (internal/lexer/lexer.go's scanDoubleQuoted), so any other
// backslash sequence here is an internal invariant violation.
func decodeDoubleQuoted(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(raw) {
			internalErrorf("dangling escape in validated double-quoted string %q", raw)
		}
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			internalErrorf("unrecognized escape \\%c survived lexing in %q", raw[i], raw)
		}
	}
	return sb.String()
}
