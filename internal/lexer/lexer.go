package lexer

import (
	"log/slog"

	"github.com/golangyang/yang/internal/types"
)

// Lexer tokenizes YANG source text (§4.1).
type Lexer struct {
	source  []byte
	pos     int
	err     *Error
	errSpan types.Span
	types.Logger
}

// Error is a lexical error: an unterminated quoted string, an unterminated
// block comment, an unrecognized escape in a double-quoted string, or an
// empty unquoted string where one is required.
type Error struct {
	Message string
	Span    types.Span
}

func (e *Error) Error() string { return e.Message }

// New returns a Lexer over source. A leading UTF-8 byte-order mark is
// skipped (§6: "A byte-order mark at the start of the source is accepted
// and ignored").
func New(source []byte, logger *slog.Logger) *Lexer {
	if len(source) >= 3 && source[0] == 0xEF && source[1] == 0xBB && source[2] == 0xBF {
		source = source[3:]
	}
	l := &Lexer{source: source, Logger: types.Logger{L: logger}}
	l.Log(slog.LevelDebug, "lexer initialized", slog.Int("bytes", len(source)))
	return l
}

// Err returns the lexical error recorded by the most recent TokError token,
// or nil if none occurred.
func (l *Lexer) Err() *Error { return l.err }

func (l *Lexer) isEOF() bool { return l.pos >= len(l.source) }

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	return l.source[l.pos], true
}

func (l *Lexer) peekAt(offset int) (byte, bool) {
	idx := l.pos + offset
	if idx >= len(l.source) {
		return 0, false
	}
	return l.source[idx], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	b := l.source[l.pos]
	l.pos++
	return b, true
}

func (l *Lexer) spanFrom(start int) types.Span {
	return types.NewSpan(types.ByteOffset(start), types.ByteOffset(l.pos))
}

func (l *Lexer) token(kind TokenKind, quote Quote, start int) Token {
	tok := Token{Kind: kind, Quote: quote, Span: l.spanFrom(start)}
	if l.TraceEnabled() {
		l.Trace("token",
			slog.Int("kind", int(tok.Kind)),
			slog.Int("start", int(tok.Span.Start)),
			slog.Int("end", int(tok.Span.End)))
	}
	return tok
}

func (l *Lexer) fail(start int, message string) Token {
	span := l.spanFrom(start)
	l.err = &Error{Message: message, Span: span}
	l.errSpan = span
	return Token{Kind: TokError, Span: span}
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isSeparator(b byte) bool {
	return isWhitespace(b) || b == '\'' || b == '"' || b == ';' || b == '{' || b == '}'
}

func (l *Lexer) skipWhitespaceAndComments() bool {
	for {
		b, ok := l.peek()
		if !ok {
			return true
		}
		if isWhitespace(b) {
			l.advance()
			continue
		}
		if b == '/' {
			if next, ok := l.peekAt(1); ok && next == '/' {
				l.advance()
				l.advance()
				l.skipLineComment()
				continue
			}
			if next, ok := l.peekAt(1); ok && next == '*' {
				start := l.pos
				l.advance()
				l.advance()
				if !l.skipBlockComment() {
					l.fail(start, "unterminated block comment")
					return false
				}
				continue
			}
		}
		return true
	}
}

func (l *Lexer) skipLineComment() {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			return
		}
		if b == '\r' {
			return
		}
		l.advance()
	}
}

// skipBlockComment consumes up to and including the closing "*/". Block
// comments do not nest (§4.1). Returns false if input ends first.
func (l *Lexer) skipBlockComment() bool {
	for {
		b, ok := l.peek()
		if !ok {
			return false
		}
		if b == '*' {
			if next, ok := l.peekAt(1); ok && next == '/' {
				l.advance()
				l.advance()
				return true
			}
		}
		l.advance()
	}
}

// NextToken advances the lexer and returns the next token. Returns TokEOF
// at end of input and TokError (with Err() set) on a lexical error; callers
// must stop requesting tokens after either.
func (l *Lexer) NextToken() Token {
	if l.err != nil {
		return Token{Kind: TokError, Span: l.errSpan}
	}

	if !l.skipWhitespaceAndComments() {
		return Token{Kind: TokError, Span: l.errSpan}
	}

	start := l.pos
	b, ok := l.peek()
	if !ok {
		return l.token(TokEOF, NotQuoted, start)
	}

	switch b {
	case '{':
		l.advance()
		return l.token(TokLBrace, NotQuoted, start)
	case '}':
		l.advance()
		return l.token(TokRBrace, NotQuoted, start)
	case ';':
		l.advance()
		return l.token(TokSemicolon, NotQuoted, start)
	case '"':
		return l.scanDoubleQuoted()
	case '\'':
		return l.scanSingleQuoted()
	}

	return l.scanUnquoted()
}

// scanUnquoted scans a maximal run per §4.1: excludes whitespace, the
// quote characters, ';', '{', '}', and the two-character sequences "//",
// "/*", "*/".
func (l *Lexer) scanUnquoted() Token {
	start := l.pos
	for {
		b, ok := l.peek()
		if !ok || isSeparator(b) {
			break
		}
		if b == '/' {
			if next, ok := l.peekAt(1); ok && (next == '/' || next == '*') {
				break
			}
		}
		if b == '*' {
			if next, ok := l.peekAt(1); ok && next == '/' {
				break
			}
		}
		l.advance()
	}

	if l.pos == start {
		b, _ := l.peek()
		l.advance()
		return l.fail(start, "unexpected character: "+string(rune(b)))
	}

	if l.pos-start == 1 && l.source[start] == '+' {
		return l.token(TokPlus, NotQuoted, start)
	}
	return l.token(TokUnquoted, NotQuoted, start)
}

// scanSingleQuoted scans '...'. No escape processing: every byte between
// the quotes is literal (§4.1).
func (l *Lexer) scanSingleQuoted() Token {
	start := l.pos
	l.advance() // opening quote
	for {
		b, ok := l.peek()
		if !ok {
			return l.fail(start, "unterminated single-quoted string")
		}
		if b == '\'' {
			l.advance()
			return l.token(TokQuoted, SingleQuoted, start)
		}
		l.advance()
	}
}

// scanDoubleQuoted scans "...", recognizing exactly the four escapes
// \n \t \" \\. Any other backslash sequence is a lexical error (§4.1, §7).
func (l *Lexer) scanDoubleQuoted() Token {
	start := l.pos
	l.advance() // opening quote
	for {
		b, ok := l.peek()
		if !ok {
			return l.fail(start, "unterminated double-quoted string")
		}
		if b == '"' {
			l.advance()
			return l.token(TokQuoted, DoubleQuoted, start)
		}
		if b == '\\' {
			escStart := l.pos
			l.advance()
			next, ok := l.peek()
			if !ok {
				return l.fail(start, "unterminated double-quoted string")
			}
			switch next {
			case 'n', 't', '"', '\\':
				l.advance()
			default:
				return l.fail(escStart, "unrecognized escape sequence in double-quoted string: \\"+string(next))
			}
			continue
		}
		l.advance()
	}
}
