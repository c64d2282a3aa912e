package cst

import (
	"testing"

	"github.com/golangyang/yang/internal/lexer"
	"github.com/golangyang/yang/internal/testutil"
)

func parse(t *testing.T, source string) *Statement {
	t.Helper()
	p := New([]byte(source), 0, nil)
	stmt, err := p.ParseDocument()
	if err != nil {
		t.Fatalf("unexpected error: %s (span %v)", err.Message, err.Span)
	}
	return stmt
}

func parseErr(t *testing.T, source string) *Error {
	t.Helper()
	p := New([]byte(source), 0, nil)
	stmt, err := p.ParseDocument()
	if err == nil {
		t.Fatalf("expected error, got statement %+v", stmt)
	}
	return err
}

func childKeywords(stmt *Statement) []string {
	keywords := make([]string, len(stmt.Children))
	for i, c := range stmt.Children {
		keywords[i] = c.Keyword
	}
	return keywords
}

func TestMinimalModule(t *testing.T) {
	stmt := parse(t, `module m { namespace "urn:m"; prefix p; }`)
	testutil.Equal(t, "module", stmt.Keyword, "keyword")
	testutil.NotNil(t, stmt.Argument, "argument")
	testutil.Equal(t, "m", stmt.Argument.Segments[0].Raw, "argument text")
	testutil.True(t, stmt.HasBraces, "has braces")
	testutil.SliceEqual(t, []string{"namespace", "prefix"}, childKeywords(stmt), "children")
}

func TestNestedStatements(t *testing.T) {
	stmt := parse(t, `module m {
		namespace "urn:m";
		prefix p;
		container top {
			leaf name {
				type string;
			}
		}
	}`)
	testutil.Len(t, stmt.Children, 3, "top-level children")
	container := stmt.Children[2]
	testutil.Equal(t, "container", container.Keyword, "third child keyword")
	testutil.Len(t, container.Children, 1, "container children")
	leaf := container.Children[0]
	testutil.Equal(t, "leaf", leaf.Keyword, "leaf keyword")
	testutil.Len(t, leaf.Children, 1, "leaf children")
	testutil.Equal(t, "type", leaf.Children[0].Keyword, "leaf's child keyword")
}

func TestQuotedConcatenation(t *testing.T) {
	stmt := parse(t, `module m { namespace "urn:" + "m"; prefix p; }`)
	ns := stmt.Children[0]
	testutil.Len(t, ns.Argument.Segments, 2, "segment count")
	testutil.Equal(t, "urn:", ns.Argument.Segments[0].Raw, "first segment")
	testutil.Equal(t, "m", ns.Argument.Segments[1].Raw, "second segment")
}

func TestSubmoduleKeyword(t *testing.T) {
	stmt := parse(t, `submodule s { belongs-to m { prefix p; } }`)
	testutil.Equal(t, "submodule", stmt.Keyword, "keyword")
}

func TestEmptyBraceBody(t *testing.T) {
	stmt := parse(t, `module m { namespace "urn:m"; prefix p; container top { } }`)
	container := stmt.Children[2]
	testutil.True(t, container.HasBraces, "has braces")
	testutil.Len(t, container.Children, 0, "empty body")
}

func TestNoArgumentStatement(t *testing.T) {
	stmt := parse(t, `module m {
		namespace "urn:m";
		prefix p;
		rpc reboot {
			input {
				leaf delay { type uint32; }
			}
		}
	}`)
	rpc := stmt.Children[2]
	input := rpc.Children[0]
	testutil.Equal(t, "input", input.Keyword, "keyword")
	testutil.Nil(t, input.Argument, "input takes no argument")
}

func TestNoArgumentStatementRejectsArgument(t *testing.T) {
	err := parseErr(t, `module m {
		namespace "urn:m";
		prefix p;
		rpc reboot {
			input foo {
			}
		}
	}`)
	testutil.Contains(t, err.Message, "takes no argument", "error message")
}

func TestLeafRequiresBody(t *testing.T) {
	err := parseErr(t, `module m { namespace "urn:m"; prefix p; leaf x; }`)
	testutil.Contains(t, err.Message, "requires a body", "error message")
}

func TestTypedefRequiresBody(t *testing.T) {
	err := parseErr(t, `module m { namespace "urn:m"; prefix p; typedef t; }`)
	testutil.Contains(t, err.Message, "requires a body", "error message")
}

func TestMissingArgument(t *testing.T) {
	err := parseErr(t, `module { namespace "urn:m"; prefix p; }`)
	testutil.Contains(t, err.Message, "requires an argument", "error message")
}

func TestTrailingInput(t *testing.T) {
	err := parseErr(t, `module m { namespace "urn:m"; prefix p; } module n { namespace "urn:n"; prefix q; }`)
	testutil.Contains(t, err.Message, "trailing input", "error message")
}

func TestWrongTopLevelKeyword(t *testing.T) {
	err := parseErr(t, `container m { }`)
	testutil.Contains(t, err.Message, "expected 'module' or 'submodule'", "error message")
}

func TestUnterminatedBody(t *testing.T) {
	err := parseErr(t, `module m { namespace "urn:m"; prefix p;`)
	testutil.Contains(t, err.Message, "unterminated", "error message")
}

func TestLexicalErrorPropagates(t *testing.T) {
	err := parseErr(t, `module m { namespace "a\qb"; prefix p; }`)
	testutil.Contains(t, err.Message, "unrecognized escape", "error message")
}

func TestDepthLimitExceeded(t *testing.T) {
	source := `module m { namespace "urn:m"; prefix p; `
	for i := 0; i < 5; i++ {
		source += `container c { `
	}
	for i := 0; i < 5; i++ {
		source += `} `
	}
	source += `}`

	p := New([]byte(source), 2, nil)
	_, err := p.ParseDocument()
	testutil.NotNil(t, err, "expected depth-limit error")
	testutil.Contains(t, err.Message, "max depth", "error message")
}

func TestExtensionKeywordAllowedAsStatementKeyword(t *testing.T) {
	stmt := parse(t, `module m {
		namespace "urn:m";
		prefix p;
		tailf:display-hint "hex";
	}`)
	testutil.Equal(t, "tailf:display-hint", stmt.Children[2].Keyword, "extension keyword text")
}

func TestCommentsAndWhitespaceDoNotAffectShape(t *testing.T) {
	a := parse(t, `module m{namespace "urn:m";prefix p;}`)
	b := parse(t, `
		module  m  { // a module
			namespace "urn:m"; /* ns */
			prefix   p ;
		}
	`)
	testutil.SliceEqual(t, childKeywords(a), childKeywords(b), "children should match regardless of whitespace/comments")
}

func TestUnquotedArgumentSingleSegment(t *testing.T) {
	stmt := parse(t, `module m { namespace "urn:m"; prefix p; }`)
	prefixArg := stmt.Children[1].Argument
	testutil.Len(t, prefixArg.Segments, 1, "segment count")
	testutil.Equal(t, lexer.NotQuoted, prefixArg.Segments[0].Quote, "quote kind")
	testutil.Equal(t, "p", prefixArg.Segments[0].Raw, "raw text")
}

func TestInvalidBooleanValueRejected(t *testing.T) {
	err := parseErr(t, `module m {
		namespace "urn:m";
		prefix p;
		container top {
			config bogus;
		}
	}`)
	testutil.Contains(t, err.Message, `invalid value "bogus" for "config"`, "error message")
}

func TestInvalidStatusValueRejected(t *testing.T) {
	err := parseErr(t, `module m { namespace "urn:m"; prefix p; status typo; }`)
	testutil.Contains(t, err.Message, `invalid value "typo" for "status"`, "error message")
}

func TestInvalidOrderedByValueRejected(t *testing.T) {
	err := parseErr(t, `module m {
		namespace "urn:m";
		prefix p;
		leaf-list l {
			type string;
			ordered-by sideways;
		}
	}`)
	testutil.Contains(t, err.Message, `invalid value "sideways" for "ordered-by"`, "error message")
}

func TestInvalidMinElementsValueRejected(t *testing.T) {
	err := parseErr(t, `module m {
		namespace "urn:m";
		prefix p;
		leaf-list l {
			type string;
			min-elements abc;
		}
	}`)
	testutil.Contains(t, err.Message, `invalid value "abc" for "min-elements"`, "error message")
}

func TestInvalidMaxElementsValueRejected(t *testing.T) {
	err := parseErr(t, `module m {
		namespace "urn:m";
		prefix p;
		leaf-list l {
			type string;
			max-elements abc;
		}
	}`)
	testutil.Contains(t, err.Message, `invalid value "abc" for "max-elements"`, "error message")
}

func TestInvalidDeviateValueRejected(t *testing.T) {
	err := parseErr(t, `module m {
		namespace "urn:m";
		prefix p;
		deviation "/m:top" {
			deviate foo;
		}
	}`)
	testutil.Contains(t, err.Message, `invalid value "foo" for "deviate"`, "error message")
}

func TestInvalidFractionDigitsValueRejected(t *testing.T) {
	err := parseErr(t, `module m {
		namespace "urn:m";
		prefix p;
		typedef t {
			type decimal64 {
				fraction-digits nine;
			}
		}
	}`)
	testutil.Contains(t, err.Message, `invalid value "nine" for "fraction-digits"`, "error message")
}

func TestLeafWithoutTypeChildRejected(t *testing.T) {
	err := parseErr(t, `module m {
		namespace "urn:m";
		prefix p;
		leaf x { description "d"; }
	}`)
	testutil.Contains(t, err.Message, `requires a "type" child`, "error message")
}

func TestLeafListWithoutTypeChildRejected(t *testing.T) {
	err := parseErr(t, `module m {
		namespace "urn:m";
		prefix p;
		leaf-list x { description "d"; }
	}`)
	testutil.Contains(t, err.Message, `requires a "type" child`, "error message")
}

func TestTypedefWithoutTypeChildRejected(t *testing.T) {
	err := parseErr(t, `module m {
		namespace "urn:m";
		prefix p;
		typedef t { description "d"; }
	}`)
	testutil.Contains(t, err.Message, `requires a "type" child`, "error message")
}

func TestLeafWithTypeChildAccepted(t *testing.T) {
	stmt := parse(t, `module m {
		namespace "urn:m";
		prefix p;
		leaf x { type string; }
	}`)
	leaf := stmt.Children[2]
	testutil.Equal(t, "type", leaf.Children[0].Keyword, "leaf's child keyword")
}

func TestDeviateNotSupportedWithBodyRejected(t *testing.T) {
	err := parseErr(t, `module m {
		namespace "urn:m";
		prefix p;
		deviation "/m:top" {
			deviate not-supported {
				description "x";
			}
		}
	}`)
	testutil.Contains(t, err.Message, `"deviate not-supported" must not have a body`, "error message")
}

func TestDeviateNotSupportedWithoutBodyAccepted(t *testing.T) {
	stmt := parse(t, `module m {
		namespace "urn:m";
		prefix p;
		deviation "/m:top" {
			deviate not-supported;
		}
	}`)
	deviation := stmt.Children[2]
	testutil.Equal(t, "deviate", deviation.Children[0].Keyword, "deviate keyword")
}
