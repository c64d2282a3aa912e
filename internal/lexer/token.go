// Package lexer tokenizes YANG (RFC 7950) source text.
package lexer

import (
	"github.com/golangyang/yang/internal/types"
)

// TokenKind identifies a lexical token type.
type TokenKind int

const (
	// TokError is a lexical error; the lexer stops producing tokens after
	// emitting one.
	TokError TokenKind = iota
	// TokEOF is end of input.
	TokEOF

	// TokUnquoted is a maximal run of non-reserved, non-whitespace bytes
	// (§4.1). Statement keywords, identifiers, numbers, dates, and bare
	// arguments are all TokUnquoted; the grammar layer decides what they
	// mean.
	TokUnquoted
	// TokPlus is the single-character '+' concatenation operator, lexed as
	// an unquoted run that happens to consist of exactly one '+' byte.
	TokPlus
	// TokQuoted is a single- or double-quoted string segment. Quote
	// records which.
	TokQuoted

	// TokLBrace is '{'.
	TokLBrace
	// TokRBrace is '}'.
	TokRBrace
	// TokSemicolon is ';'.
	TokSemicolon
)

// Quote distinguishes single- from double-quoted string segments.
type Quote int

const (
	// NotQuoted marks a TokUnquoted token (Quote is meaningless there).
	NotQuoted Quote = iota
	SingleQuoted
	DoubleQuoted
)

// Token is a lexical token with kind, source span, and (for TokQuoted) the
// quote style. Span covers the exact source bytes of the token, quotes
// included for TokQuoted; the cst/builder layers decide how to interpret
// them.
type Token struct {
	Kind  TokenKind
	Quote Quote
	Span  types.Span
}
