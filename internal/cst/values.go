package cst

import (
	"fmt"
	"strconv"

	"github.com/arr-ai/frozen"
)

// internalErrorf panics to signal a state this package's own invariants
// should have prevented — never a user-facing condition. User-facing
// conditions are reported as *Error values, never panics.
func internalErrorf(format string, args ...any) {
	panic(fmt.Sprintf("yang/internal/cst: internal error: "+format, args...))
}

// argKind classifies the RFC 7950 value grammar a statement's argument must
// satisfy, beyond the generic `string` production. §9's "Keyword
// collisions" note requires the grammar to place the closed-enumeration (or
// numeric) alternative before the generic string alternative at these
// sites, so that a malformed value is rejected here, at the grammar layer,
// rather than reaching the IR builder (§4.3: "User-level errors originate
// exclusively from the grammar layer").
type argKind int

const (
	argKindBoolean argKind = iota
	argKindStatus
	argKindOrderedBy
	argKindDeviate
	argKindUnsignedInteger
	argKindSignedInteger
	argKindMaxElements
)

type argSpec struct {
	kind argKind
	bits int // integer width; meaningless for the non-integer kinds
}

// keywordArgSpecs lists every statement keyword whose argument is
// constrained to something narrower than an arbitrary string. A keyword
// absent from this table takes an unconstrained string argument.
var keywordArgSpecs = map[string]argSpec{
	"config":           {kind: argKindBoolean},
	"mandatory":        {kind: argKindBoolean},
	"yin-element":      {kind: argKindBoolean},
	"require-instance": {kind: argKindBoolean},
	"status":           {kind: argKindStatus},
	"ordered-by":       {kind: argKindOrderedBy},
	"deviate":          {kind: argKindDeviate},
	"min-elements":     {kind: argKindUnsignedInteger, bits: 32},
	"position":         {kind: argKindUnsignedInteger, bits: 32},
	"fraction-digits":  {kind: argKindUnsignedInteger, bits: 8},
	"value":            {kind: argKindSignedInteger, bits: 32},
	"max-elements":     {kind: argKindMaxElements, bits: 32},
}

// BooleanValues, StatusValues, OrderedByValues, and DeviateValues are the
// closed keyword-argument enumerations RFC 7950 fixes for these sites.
// Exported so the IR builder (package yang) can map an already-validated
// value to its Go enum constant without redeclaring the same set.
var (
	BooleanValues   = frozen.NewSet[string]("true", "false")
	StatusValues    = frozen.NewSet[string]("current", "obsolete", "deprecated")
	OrderedByValues = frozen.NewSet[string]("user", "system")
	DeviateValues   = frozen.NewSet[string]("not-supported", "add", "delete", "replace")
)

// validArgumentValue reports whether value is a legal argument for keyword.
// Keywords not in keywordArgSpecs are unconstrained and always valid.
func validArgumentValue(keyword, value string) bool {
	spec, ok := keywordArgSpecs[keyword]
	if !ok {
		return true
	}
	switch spec.kind {
	case argKindBoolean:
		return BooleanValues.Has(value)
	case argKindStatus:
		return StatusValues.Has(value)
	case argKindOrderedBy:
		return OrderedByValues.Has(value)
	case argKindDeviate:
		return DeviateValues.Has(value)
	case argKindUnsignedInteger:
		_, err := strconv.ParseUint(value, 10, spec.bits)
		return err == nil
	case argKindSignedInteger:
		_, err := strconv.ParseInt(value, 10, spec.bits)
		return err == nil
	case argKindMaxElements:
		if value == "unbounded" {
			return true
		}
		_, err := strconv.ParseUint(value, 10, spec.bits)
		return err == nil
	default:
		return true
	}
}

// describeArgKind names the expected shape of keyword's argument, for the
// error message when validArgumentValue rejects it.
func describeArgKind(keyword string) string {
	switch keywordArgSpecs[keyword].kind {
	case argKindBoolean:
		return `"true" or "false"`
	case argKindStatus:
		return `"current", "obsolete", or "deprecated"`
	case argKindOrderedBy:
		return `"user" or "system"`
	case argKindDeviate:
		return `"add", "delete", "replace", or "not-supported"`
	case argKindUnsignedInteger:
		return "a non-negative integer"
	case argKindSignedInteger:
		return "an integer"
	case argKindMaxElements:
		return `a non-negative integer or "unbounded"`
	default:
		return "a string"
	}
}
