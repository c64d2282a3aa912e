package yang_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golangyang/yang"
)

func TestParseMinimalModule(t *testing.T) {
	doc, err := yang.Parse([]byte(`module m { namespace "u"; prefix "p"; }`))
	require.NoError(t, err)
	m, ok := doc.(*yang.Module)
	require.True(t, ok)
	require.Equal(t, "m", m.Name)
	require.Equal(t, "u", m.Namespace)
	require.Equal(t, "p", m.Prefix)
	require.Empty(t, m.Body)
}

func TestParseLeafWithBareType(t *testing.T) {
	doc, err := yang.Parse([]byte(`
		module m { namespace "u"; prefix "p";
			leaf x { type string; }
		}`))
	require.NoError(t, err)
	m := doc.(*yang.Module)
	require.Len(t, m.Body, 1)
	leaf, ok := m.Body[0].(*yang.Leaf)
	require.True(t, ok)
	require.Equal(t, "x", leaf.Name)
	require.Equal(t, "string", leaf.Type.Name)
	require.Nil(t, leaf.Type.Spec)
}

func TestParseTypedefWithRange(t *testing.T) {
	doc, err := yang.Parse([]byte(`
		module m { namespace "u"; prefix "p";
			typedef percent { type uint8 { range "0..100"; } }
		}`))
	require.NoError(t, err)
	m := doc.(*yang.Module)
	require.Len(t, m.Body, 1)
	td, ok := m.Body[0].(*yang.Typedef)
	require.True(t, ok)
	require.Equal(t, "percent", td.Name)
	require.Equal(t, "uint8", td.Type.Name)
	restriction, ok := td.Type.Spec.(yang.NumericRestriction)
	require.True(t, ok)
	require.NotNil(t, restriction.Range)
	require.Equal(t, "0..100", restriction.Range.Value)
}

func TestParseLeafWithStringRestrictionAndMandatory(t *testing.T) {
	doc, err := yang.Parse([]byte(`
		module m { namespace "u"; prefix "p";
			leaf h { type string { length "1..64"; pattern '[a-z]+'; } mandatory true; }
		}`))
	require.NoError(t, err)
	m := doc.(*yang.Module)
	leaf := m.Body[0].(*yang.Leaf)
	sr, ok := leaf.Type.Spec.(yang.StringRestriction)
	require.True(t, ok)
	require.NotNil(t, sr.Length)
	require.Equal(t, "1..64", sr.Length.Value)
	require.Len(t, sr.Patterns, 1)
	require.Equal(t, "[a-z]+", sr.Patterns[0].Value)
	require.NotNil(t, leaf.Mandatory)
	require.True(t, *leaf.Mandatory)
}

func TestParseStringConcatenation(t *testing.T) {
	doc, err := yang.Parse([]byte(`
		module m { namespace "u"; prefix "p";
			description "ab" + "cd";
		}`))
	require.NoError(t, err)
	m := doc.(*yang.Module)
	require.Equal(t, "abcd", m.Meta.Description)
}

func TestParseLeafListOrderedByUserWithMaxElements(t *testing.T) {
	doc, err := yang.Parse([]byte(`
		module m { namespace "u"; prefix "p";
			leaf-list l { type string; ordered-by user; max-elements 5; }
		}`))
	require.NoError(t, err)
	m := doc.(*yang.Module)
	ll := m.Body[0].(*yang.LeafList)
	require.Equal(t, "l", ll.Name)
	require.Equal(t, "string", ll.Type.Name)
	require.NotNil(t, ll.OrderedBy)
	require.Equal(t, yang.OrderedByUser, *ll.OrderedBy)
	require.NotNil(t, ll.MaxElements)
	require.False(t, ll.MaxElements.Unbounded)
	require.Equal(t, uint32(5), ll.MaxElements.Value)
}

func TestParseMaxElementsUnbounded(t *testing.T) {
	doc, err := yang.Parse([]byte(`
		module m { namespace "u"; prefix "p";
			leaf-list l { type string; max-elements unbounded; }
		}`))
	require.NoError(t, err)
	m := doc.(*yang.Module)
	ll := m.Body[0].(*yang.LeafList)
	require.NotNil(t, ll.MaxElements)
	require.True(t, ll.MaxElements.Unbounded)
}

func TestParseDoubleQuotedNewlineEscape(t *testing.T) {
	doc, err := yang.Parse([]byte(`
		module m { namespace "u"; prefix "p";
			description "line one\nline two";
		}`))
	require.NoError(t, err)
	m := doc.(*yang.Module)
	require.Equal(t, "line one\nline two", m.Meta.Description)
}

func TestParseSingleQuotedBackslashNIsLiteral(t *testing.T) {
	doc, err := yang.Parse([]byte(`
		module m { namespace "u"; prefix "p";
			description 'line one\nline two';
		}`))
	require.NoError(t, err)
	m := doc.(*yang.Module)
	require.Equal(t, `line one\nline two`, m.Meta.Description)
}

func TestParseCommentsDoNotAffectIR(t *testing.T) {
	withComments := []byte(`
		// a line comment
		module m { /* block */ namespace "u"; prefix "p";
			leaf x { type string; } // trailing
		}`)
	without := []byte(`
		module m { namespace "u"; prefix "p";
			leaf x { type string; }
		}`)

	docA, err := yang.Parse(withComments)
	require.NoError(t, err)
	docB, err := yang.Parse(without)
	require.NoError(t, err)
	require.Equal(t, docB, docA)
}

func TestParseChildOrderingPreserved(t *testing.T) {
	doc, err := yang.Parse([]byte(`
		module m { namespace "u"; prefix "p";
			revision "2020-01-01";
			revision "2019-01-01";
			revision "2021-01-01";
		}`))
	require.NoError(t, err)
	m := doc.(*yang.Module)
	require.Len(t, m.Revisions, 3)
	require.Equal(t, "2020-01-01", m.Revisions[0].Date)
	require.Equal(t, "2019-01-01", m.Revisions[1].Date)
	require.Equal(t, "2021-01-01", m.Revisions[2].Date)
}

func TestParseDeterministic(t *testing.T) {
	source := []byte(`
		module m { namespace "u"; prefix "p";
			leaf x { type string; }
		}`)
	docA, err := yang.Parse(source)
	require.NoError(t, err)
	docB, err := yang.Parse(source)
	require.NoError(t, err)
	require.Equal(t, docA, docB)
}

func TestParseShortFormChoiceCase(t *testing.T) {
	doc, err := yang.Parse([]byte(`
		module m { namespace "u"; prefix "p";
			choice c {
				leaf a { type string; }
				case b { leaf bb { type string; } }
			}
		}`))
	require.NoError(t, err)
	m := doc.(*yang.Module)
	choice := m.Body[0].(*yang.Choice)
	require.Len(t, choice.Cases, 2)
	require.True(t, choice.Cases[0].Implicit)
	require.Equal(t, "a", choice.Cases[0].Name)
	require.False(t, choice.Cases[1].Implicit)
	require.Equal(t, "b", choice.Cases[1].Name)
}

func TestParseSubmoduleBelongsTo(t *testing.T) {
	doc, err := yang.Parse([]byte(`
		submodule sm {
			belongs-to m { prefix "p"; }
		}`))
	require.NoError(t, err)
	sm, ok := doc.(*yang.Submodule)
	require.True(t, ok)
	require.Equal(t, "sm", sm.Name)
	require.Equal(t, "m", sm.BelongsTo.Module)
	require.Equal(t, "p", sm.BelongsTo.Prefix)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := yang.Parse([]byte(`module m { namespace "u"; prefix "p" }`))
	require.Error(t, err)
	var perr *yang.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, yang.ErrSyntax, perr.Kind)
}

func TestParseTrailingInputError(t *testing.T) {
	_, err := yang.Parse([]byte(`module m { namespace "u"; prefix "p"; } garbage`))
	require.Error(t, err)
	var perr *yang.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, yang.ErrTrailingInput, perr.Kind)
}

func TestParseDepthLimitError(t *testing.T) {
	_, err := yang.Parse([]byte(`module m { namespace "u"; prefix "p";
		container a { container b { container c { container d { leaf x { type string; } } } } }
	}`), yang.WithMaxDepth(2))
	require.Error(t, err)
	var perr *yang.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, yang.ErrDepth, perr.Kind)
}

func TestParseLeafWithoutTypeFails(t *testing.T) {
	_, err := yang.Parse([]byte(`
		module m { namespace "u"; prefix "p";
			leaf x { description "d"; }
		}`))
	require.Error(t, err)
	var perr *yang.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, yang.ErrSyntax, perr.Kind)
}

func TestParseInvalidKeywordArgumentValueFails(t *testing.T) {
	_, err := yang.Parse([]byte(`
		module m { namespace "u"; prefix "p";
			leaf x { type string; status typo; }
		}`))
	require.Error(t, err)
	var perr *yang.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, yang.ErrSyntax, perr.Kind)
}

func TestParseDeviateNotSupportedWithBodyFails(t *testing.T) {
	_, err := yang.Parse([]byte(`
		module m { namespace "u"; prefix "p";
			deviation "/m:top" {
				deviate not-supported {
					description "x";
				}
			}
		}`))
	require.Error(t, err)
	var perr *yang.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, yang.ErrSyntax, perr.Kind)
}
