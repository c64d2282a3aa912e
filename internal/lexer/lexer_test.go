package lexer

import (
	"testing"

	"github.com/golangyang/yang/internal/testutil"
)

func tokenize(source string) []Token {
	l := New([]byte(source), nil)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == TokEOF || tok.Kind == TokError {
			break
		}
	}
	return toks
}

func tokenKinds(source string) []TokenKind {
	toks := tokenize(source)
	kinds := make([]TokenKind, len(toks))
	for i, t := range toks {
		kinds[i] = t.Kind
	}
	return kinds
}

func tokenTexts(source string) []string {
	toks := tokenize(source)
	var texts []string
	for _, t := range toks {
		if t.Kind != TokEOF && t.Kind != TokError {
			texts = append(texts, source[t.Span.Start:t.Span.End])
		}
	}
	return texts
}

func TestEmptyInput(t *testing.T) {
	testutil.SliceEqual(t, []TokenKind{TokEOF}, tokenKinds(""), "empty input")
}

func TestPunctuation(t *testing.T) {
	kinds := tokenKinds("{ } ;")
	testutil.SliceEqual(t, []TokenKind{TokLBrace, TokRBrace, TokSemicolon, TokEOF}, kinds, "token kinds")
}

func TestUnquotedIdentifiers(t *testing.T) {
	texts := tokenTexts("module leaf-list ietf-interfaces tailf:display-hint")
	expected := []string{"module", "leaf-list", "ietf-interfaces", "tailf:display-hint"}
	testutil.SliceEqual(t, expected, texts, "token texts")
}

func TestUnquotedWithLeadingSign(t *testing.T) {
	texts := tokenTexts("+5 -5 0..100")
	expected := []string{"+5", "-5", "0..100"}
	testutil.SliceEqual(t, expected, texts, "token texts")
}

func TestPlusOperatorStandsAlone(t *testing.T) {
	kinds := tokenKinds(`"a" + "b"`)
	expected := []TokenKind{TokQuoted, TokPlus, TokQuoted, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestPlusOperatorNoSurroundingSpace(t *testing.T) {
	kinds := tokenKinds(`"a"+"b"`)
	expected := []TokenKind{TokQuoted, TokPlus, TokQuoted, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestSingleQuotedString(t *testing.T) {
	texts := tokenTexts(`'hello world'`)
	testutil.SliceEqual(t, []string{`'hello world'`}, texts, "token texts")
}

func TestSingleQuotedNoEscapes(t *testing.T) {
	texts := tokenTexts(`'a\nb'`)
	testutil.SliceEqual(t, []string{`'a\nb'`}, texts, "literal backslash-n, not a newline")
}

func TestDoubleQuotedString(t *testing.T) {
	texts := tokenTexts(`"hello world"`)
	testutil.SliceEqual(t, []string{`"hello world"`}, texts, "token texts")
}

func TestDoubleQuotedEscapes(t *testing.T) {
	texts := tokenTexts(`"a\nb\t\"c\\d"`)
	testutil.SliceEqual(t, []string{`"a\nb\t\"c\\d"`}, texts, "raw token text includes escapes verbatim")
}

func TestDoubleQuotedBadEscape(t *testing.T) {
	l := New([]byte(`"a\qb"`), nil)
	tok := l.NextToken()
	testutil.Equal(t, TokError, tok.Kind, "expected lexical error")
	testutil.NotNil(t, l.Err(), "expected Err() to be set")
	testutil.Contains(t, l.Err().Message, "unrecognized escape", "error message")
}

func TestUnterminatedDoubleQuoted(t *testing.T) {
	l := New([]byte(`"abc`), nil)
	tok := l.NextToken()
	testutil.Equal(t, TokError, tok.Kind, "expected lexical error")
	testutil.Contains(t, l.Err().Message, "unterminated", "error message")
}

func TestUnterminatedSingleQuoted(t *testing.T) {
	l := New([]byte(`'abc`), nil)
	tok := l.NextToken()
	testutil.Equal(t, TokError, tok.Kind, "expected lexical error")
	testutil.Contains(t, l.Err().Message, "unterminated", "error message")
}

func TestUnterminatedBlockComment(t *testing.T) {
	l := New([]byte(`module m /* unterminated`), nil)
	var last Token
	for {
		last = l.NextToken()
		if last.Kind == TokEOF || last.Kind == TokError {
			break
		}
	}
	testutil.Equal(t, TokError, last.Kind, "expected lexical error")
	testutil.Contains(t, l.Err().Message, "unterminated block comment", "error message")
}

func TestLineComment(t *testing.T) {
	kinds := tokenKinds("module // a trailing comment\nm")
	expected := []TokenKind{TokUnquoted, TokUnquoted, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "comments are whitespace")
}

func TestBlockComment(t *testing.T) {
	kinds := tokenKinds("module /* inline */ m")
	expected := []TokenKind{TokUnquoted, TokUnquoted, TokEOF}
	testutil.SliceEqual(t, expected, kinds, "comments are whitespace")
}

func TestBlockCommentDoesNotNest(t *testing.T) {
	// The first "/* ... */" pair closes the comment at the first "*/" it
	// finds, swallowing the inner "/* nested" as plain comment content.
	// What is left, " m */", then has a dangling "*/" with no opener.
	kinds := tokenKinds("/* outer /* nested */ m */")
	testutil.SliceEqual(t, []TokenKind{TokUnquoted, TokError}, kinds, "comments do not nest")
}

func TestUnquotedStopsBeforeCommentMarkers(t *testing.T) {
	texts := tokenTexts("abc//def")
	testutil.SliceEqual(t, []string{"abc"}, texts, "// ends an unquoted run")
}

func TestBomIsSkipped(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("module")...)
	l := New(src, nil)
	tok := l.NextToken()
	testutil.Equal(t, TokUnquoted, tok.Kind, "kind")
	testutil.Equal(t, "module", string(src[3:][tok.Span.Start:tok.Span.End]), "text after BOM strip")
}

func TestWhitespaceInsensitivity(t *testing.T) {
	a := tokenKinds("module m{namespace \"u\";prefix \"p\";}")
	b := tokenKinds("module   m  {  namespace   \"u\" ;  prefix  \"p\"  ; }")
	testutil.SliceEqual(t, a, b, "whitespace should not affect token kinds")
}
