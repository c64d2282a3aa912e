package cst

import (
	"fmt"
	"log/slog"

	"github.com/golangyang/yang/internal/lexer"
	"github.com/golangyang/yang/internal/types"
)

// ErrorKind classifies an *Error the way §7 taxonomizes parse failures.
type ErrorKind int

const (
	KindSyntax ErrorKind = iota
	KindLexical
	KindTrailingInput
	KindDepth
)

// Error is a syntax-level parse error: the input did not match the grammar
// at Span, or the top-level `module`/`submodule` statement was followed by
// more non-whitespace input ("trailing input"), or statement nesting
// exceeded the configured depth limit. Lexical errors surface as *Error
// too, wrapping the lexer's own message, so callers only ever see one
// error type from Parse (§7).
type Error struct {
	Kind    ErrorKind
	Message string
	Span    types.Span
}

func (e *Error) Error() string { return e.Message }

// DefaultMaxDepth is the default statement-nesting limit (§5).
const DefaultMaxDepth = 256

// Parser produces a Statement tree from YANG source text. It performs no
// backtracking: YANG's statement grammar is `keyword argument? (';' |
// '{' stmt* '}')` at every level, which a single token of lookahead
// disambiguates completely, so the "farthest failure position" a
// backtracking PEG would otherwise need to track is always just the
// position of the one error encountered (see DESIGN.md).
type Parser struct {
	source   []byte
	lex      *lexer.Lexer
	tok      lexer.Token
	maxDepth int
	types.Logger
}

// New returns a Parser over source. maxDepth <= 0 uses DefaultMaxDepth.
func New(source []byte, maxDepth int, logger *slog.Logger) *Parser {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	var lexLogger *slog.Logger
	if logger != nil {
		lexLogger = logger.With(slog.String("component", "lexer"))
	}
	p := &Parser{
		source:   source,
		lex:      lexer.New(source, lexLogger),
		maxDepth: maxDepth,
		Logger:   types.Logger{L: logger},
	}
	p.tok = p.lex.NextToken()
	return p
}

func (p *Parser) text(span types.Span) string {
	return string(p.source[span.Start:span.End])
}

func (p *Parser) advance() lexer.Token {
	tok := p.tok
	p.tok = p.lex.NextToken()
	return tok
}

func (p *Parser) fail(span types.Span, message string) *Error {
	return &Error{Kind: KindSyntax, Message: message, Span: span}
}

func (p *Parser) failDepth(span types.Span, message string) *Error {
	return &Error{Kind: KindDepth, Message: message, Span: span}
}

func (p *Parser) failTrailing(span types.Span, message string) *Error {
	return &Error{Kind: KindTrailingInput, Message: message, Span: span}
}

// checkLexError converts a pending lexer error (if the current token is
// TokError) into a *cst.Error.
func (p *Parser) checkLexError() *Error {
	if p.tok.Kind != lexer.TokError {
		return nil
	}
	lexErr := p.lex.Err()
	if lexErr == nil {
		return &Error{Kind: KindLexical, Message: "lexical error", Span: p.tok.Span}
	}
	return &Error{Kind: KindLexical, Message: lexErr.Message, Span: lexErr.Span}
}

// ParseDocument parses `start-of-input, (module | submodule), end-of-input`
// (§4.2) and returns the single top-level statement.
func (p *Parser) ParseDocument() (*Statement, *Error) {
	if err := p.checkLexError(); err != nil {
		return nil, err
	}

	if p.tok.Kind != lexer.TokUnquoted {
		return nil, p.fail(p.tok.Span, "expected 'module' or 'submodule'")
	}

	stmt, err := p.parseStatement(0)
	if err != nil {
		return nil, err
	}

	if stmt.Keyword != "module" && stmt.Keyword != "submodule" {
		return nil, p.fail(stmt.KeywordSpan, fmt.Sprintf("expected 'module' or 'submodule', got %q", stmt.Keyword))
	}

	if err := p.checkLexError(); err != nil {
		return nil, err
	}
	if p.tok.Kind != lexer.TokEOF {
		return nil, p.failTrailing(p.tok.Span, "trailing input after top-level statement")
	}

	return stmt, nil
}

// parseStatement parses one `keyword argument? (';' | '{' stmt* '}')`.
func (p *Parser) parseStatement(depth int) (*Statement, *Error) {
	if depth > p.maxDepth {
		return nil, p.failDepth(p.tok.Span, fmt.Sprintf("statement nesting exceeds max depth %d", p.maxDepth))
	}

	if err := p.checkLexError(); err != nil {
		return nil, err
	}
	if p.tok.Kind != lexer.TokUnquoted {
		return nil, p.fail(p.tok.Span, "expected a statement keyword")
	}

	keywordTok := p.advance()
	keyword := p.text(keywordTok.Span)
	start := keywordTok.Span.Start

	stmt := &Statement{Keyword: keyword, KeywordSpan: keywordTok.Span}

	if err := p.checkLexError(); err != nil {
		return nil, err
	}

	var arg *Argument
	if p.tok.Kind != lexer.TokLBrace && p.tok.Kind != lexer.TokSemicolon {
		a, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		arg = a
	}
	stmt.Argument = arg

	if arg == nil && !takesNoArgument(keyword) {
		return nil, p.fail(keywordTok.Span, fmt.Sprintf("statement %q requires an argument", keyword))
	}
	if arg != nil && takesNoArgument(keyword) {
		return nil, p.fail(arg.Span, fmt.Sprintf("statement %q takes no argument", keyword))
	}

	// Some keywords' arguments are further constrained by RFC 7950 to a
	// closed enumeration or an integer, rather than an arbitrary string
	// (§9 "Keyword collisions"); reject a violation here, at the grammar
	// layer, so the IR builder never has to (§4.3).
	if arg != nil {
		value := arg.Decode()
		if !validArgumentValue(keyword, value) {
			return nil, p.fail(arg.Span, fmt.Sprintf("invalid value %q for %q: expected %s", value, keyword, describeArgKind(keyword)))
		}
	}

	if err := p.checkLexError(); err != nil {
		return nil, err
	}

	switch p.tok.Kind {
	case lexer.TokSemicolon:
		if requiresBody(keyword) {
			return nil, p.fail(p.tok.Span, fmt.Sprintf("statement %q requires a body", keyword))
		}
		semi := p.advance()
		stmt.Span = types.NewSpan(start, semi.Span.End)
		return stmt, nil

	case lexer.TokLBrace:
		lbrace := p.advance()
		stmt.HasBraces = true
		for {
			if err := p.checkLexError(); err != nil {
				return nil, err
			}
			if p.tok.Kind == lexer.TokRBrace {
				break
			}
			if p.tok.Kind == lexer.TokEOF {
				return nil, p.fail(p.tok.Span, fmt.Sprintf("unterminated body of statement %q: expected '}'", keyword))
			}
			child, err := p.parseStatement(depth + 1)
			if err != nil {
				return nil, err
			}
			stmt.Children = append(stmt.Children, child)
		}
		rbrace := p.advance()
		_ = lbrace
		stmt.Span = types.NewSpan(start, rbrace.Span.End)

		if requiresTypeChild[keyword] && !hasChildKeyword(stmt.Children, "type") {
			return nil, p.fail(keywordTok.Span, fmt.Sprintf("statement %q requires a %q child", keyword, "type"))
		}
		if keyword == "deviate" && arg.Decode() == "not-supported" && len(stmt.Children) > 0 {
			return nil, p.fail(stmt.Span, `statement "deviate not-supported" must not have a body`)
		}

		return stmt, nil

	default:
		return nil, p.fail(p.tok.Span, fmt.Sprintf("expected ';' or '{' after argument of %q", keyword))
	}
}

// parseArgument parses the `string` production (§4.1): a single unquoted
// string, or one or more quoted strings joined by '+'.
func (p *Parser) parseArgument() (*Argument, *Error) {
	start := p.tok.Span.Start

	if p.tok.Kind == lexer.TokUnquoted {
		tok := p.advance()
		return &Argument{
			Segments: []Segment{{Quote: lexer.NotQuoted, Raw: p.text(tok.Span), Span: tok.Span}},
			Span:     tok.Span,
		}, nil
	}

	if p.tok.Kind != lexer.TokQuoted {
		return nil, p.fail(p.tok.Span, "expected an argument")
	}

	var segments []Segment
	for {
		tok := p.advance()
		raw := p.text(tok.Span)
		// strip surrounding quotes; the decode step (escape processing)
		// happens later, in Argument.Decode (§4.3).
		inner := raw[1 : len(raw)-1]
		segments = append(segments, Segment{
			Quote: tok.Quote,
			Raw:   inner,
			Span:  tok.Span,
		})

		if err := p.checkLexError(); err != nil {
			return nil, err
		}
		if p.tok.Kind != lexer.TokPlus {
			end := tok.Span.End
			return &Argument{Segments: segments, Span: types.NewSpan(start, end)}, nil
		}
		p.advance() // consume '+'

		if err := p.checkLexError(); err != nil {
			return nil, err
		}
		if p.tok.Kind != lexer.TokQuoted {
			return nil, p.fail(p.tok.Span, "expected a quoted string after '+'")
		}
	}
}
