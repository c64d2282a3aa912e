package yang

import (
	"fmt"

	"github.com/golangyang/yang/internal/types"
)

// ErrorKind classifies a ParseError (§7).
type ErrorKind int

const (
	// ErrLexical covers unterminated quoted strings, unterminated block
	// comments, unrecognized escapes, and empty unquoted strings.
	ErrLexical ErrorKind = iota
	// ErrSyntax covers input that does not match the grammar at some
	// position: unexpected token, missing '{'/'}'/';' , a leaf with no
	// body, a statement taking no argument but given one, and so on.
	ErrSyntax
	// ErrTrailingInput covers non-whitespace input following the
	// top-level module/submodule statement.
	ErrTrailingInput
	// ErrDepth covers statement nesting beyond the configured limit.
	ErrDepth
)

func (k ErrorKind) String() string {
	switch k {
	case ErrLexical:
		return "lexical"
	case ErrSyntax:
		return "syntax"
	case ErrTrailingInput:
		return "trailing-input"
	case ErrDepth:
		return "depth"
	default:
		return "unknown"
	}
}

// Position is a source location: 1-based line/column plus the raw byte
// offset it was computed from.
type Position struct {
	Line       int
	Column     int
	ByteOffset int
}

// ParseError is the single error type Parse ever returns (§6, §7). A
// first syntactic error terminates parsing; there is no diagnostic
// collection or recovery.
type ParseError struct {
	Kind     ErrorKind
	Message  string
	Position Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %d:%d: %s", e.Kind, e.Position.Line, e.Position.Column, e.Message)
}

func newParseError(kind ErrorKind, source []byte, span types.Span, message string) *ParseError {
	pos := types.PositionOf(source, span.Start)
	return &ParseError{
		Kind:    kind,
		Message: message,
		Position: Position{
			Line:       pos.Line,
			Column:     pos.Column,
			ByteOffset: int(pos.ByteOffset),
		},
	}
}
