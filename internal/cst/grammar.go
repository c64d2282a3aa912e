package cst

import "sort"

// bodyRequirement governs whether a statement may end in ';' with no body.
type bodyRequirement int

const (
	// bodyOptional is the default: `';'` or `'{' ... '}'` are both legal.
	bodyOptional bodyRequirement = iota
	// bodyRequired means a bare ';' is a syntax error: the statement must
	// have braces, even if the block happens to be empty. leaf, leaf-list,
	// and typedef fall here because each needs at least a `type`
	// sub-statement (§4.2, §3 invariants); requiresTypeChild enforces that
	// narrower requirement once braces are confirmed present.
	bodyRequired
)

// requiresTypeChild are the keywords whose body must contain a `type`
// child (§3: "typedef, leaf, leaf-list statements require a type child").
// Checked by parseStatement once a braced body has been fully parsed.
var requiresTypeChild = map[string]bool{
	"leaf":      true,
	"leaf-list": true,
	"typedef":   true,
}

// hasChildKeyword reports whether any of children has the given keyword.
func hasChildKeyword(children []*Statement, keyword string) bool {
	for _, c := range children {
		if c.Keyword == keyword {
			return true
		}
	}
	return false
}

// noArgumentKeywords are the statement keywords with no argument at all:
// `input { ... }` / `output { ... }` (RFC 7950 §7.14.2, §7.14.3).
var noArgumentKeywords = []string{
	"input",
	"output",
}

// bodyRequiredKeywords must have a '{ ... }' body, never a bare ';'.
var bodyRequiredKeywords = []string{
	"leaf",
	"leaf-list",
	"typedef",
}

func sortedContains(table []string, s string) bool {
	idx := sort.SearchStrings(table, s)
	return idx < len(table) && table[idx] == s
}

func takesNoArgument(keyword string) bool {
	return sortedContains(noArgumentKeywords, keyword)
}

func requiresBody(keyword string) bool {
	return sortedContains(bodyRequiredKeywords, keyword)
}
