package yang

import (
	"strconv"

	"github.com/golangyang/yang/internal/cst"
)

// buildType builds a `type` statement. A nil stmt yields the zero Type.
// For `leaf`/`leaf-list`/`typedef` this can no longer actually happen:
// internal/cst's grammar layer rejects any such statement missing its
// `type` child before the builder ever runs (§3, §4.3). The other
// callers (union members, `deviate replace`) only pass a `type`
// statement that is present, so the nil case is a guard, not a path
// any parse reaches.
func (b *builder) buildType(stmt *cst.Statement) Type {
	if stmt == nil {
		return Type{}
	}
	return Type{
		Name: b.arg(stmt),
		Spec: b.buildTypeSpec(b.arg(stmt), stmt),
	}
}

// buildTypeSpec dispatches on the first recognized body keyword present
// among stmt's children, per §4.2's first-token disambiguation order.
// `length`/`pattern` alone cannot distinguish the `string` and `binary`
// base types (RFC 7950 §9.4/§9.8: string takes length and pattern,
// binary only length, which the grammar layer does not enforce), so
// baseName breaks that one tie; every other branch is
// fully determined by which keyword is present, per the spec's own
// disambiguation table.
func (b *builder) buildTypeSpec(baseName string, stmt *cst.Statement) TypeSpec {
	switch {
	case hasChild(stmt, "fraction-digits"):
		return b.buildDecimal64Spec(stmt)
	case hasChild(stmt, "range"):
		return NumericRestriction{Range: b.buildRangeStmt(lastChild(stmt, "range"))}
	case hasChild(stmt, "length"), hasChild(stmt, "pattern"):
		if baseName == "binary" {
			return BinarySpec{Length: b.buildLengthStmt(lastChild(stmt, "length"))}
		}
		return b.buildStringRestriction(stmt)
	case hasChild(stmt, "enum"):
		return b.buildEnumSpec(stmt)
	case hasChild(stmt, "path"):
		return LeafrefSpec{
			Path:            b.optString(stmt, "path"),
			RequireInstance: b.optBool(stmt, "require-instance"),
		}
	case hasChild(stmt, "base"):
		return IdentityrefSpec{Bases: b.collectStrings(stmt, "base")}
	case hasChild(stmt, "bit"):
		return b.buildBitsSpec(stmt)
	case hasChild(stmt, "type"):
		return b.buildUnionSpec(stmt)
	case hasChild(stmt, "require-instance"):
		return InstanceIdentifierSpec{RequireInstance: b.optBool(stmt, "require-instance")}
	default:
		return nil
	}
}

// buildDecimal64Spec parses `fraction-digits`. internal/cst's grammar
// layer already rejects any value that doesn't fit an 8-bit unsigned
// integer (§4.3, §9 "Keyword collisions"), so the error branch below is
// an unreachable internal invariant, not a condition a malformed module
// can reach.
func (b *builder) buildDecimal64Spec(stmt *cst.Statement) Decimal64Spec {
	fd := lastChild(stmt, "fraction-digits")
	n, err := strconv.ParseUint(b.arg(fd), 10, 8)
	if err != nil {
		internalErrorf("invalid fraction-digits value %q: %s", b.arg(fd), err)
	}
	return Decimal64Spec{
		FractionDigits: uint8(n),
		Range:          b.buildRangeStmt(lastChild(stmt, "range")),
	}
}

func (b *builder) buildStringRestriction(stmt *cst.Statement) StringRestriction {
	sr := StringRestriction{Length: b.buildLengthStmt(lastChild(stmt, "length"))}
	for _, c := range children(stmt, "pattern") {
		sr.Patterns = append(sr.Patterns, b.buildPatternStmt(c))
	}
	return sr
}

func (b *builder) buildEnumSpec(stmt *cst.Statement) EnumSpec {
	var spec EnumSpec
	for _, c := range children(stmt, "enum") {
		spec.Enums = append(spec.Enums, EnumValue{
			Name:        b.arg(c),
			IfFeatures:  b.collectIfFeatures(c),
			Value:       b.optInt32(c, "value"),
			Status:      b.optStatus(c),
			Description: b.optString(c, "description"),
			Reference:   b.optString(c, "reference"),
		})
	}
	return spec
}

func (b *builder) buildBitsSpec(stmt *cst.Statement) BitsSpec {
	var spec BitsSpec
	for _, c := range children(stmt, "bit") {
		spec.Bits = append(spec.Bits, Bit{
			Name:        b.arg(c),
			IfFeatures:  b.collectIfFeatures(c),
			Position:    b.optUint32(c, "position"),
			Status:      b.optStatus(c),
			Description: b.optString(c, "description"),
			Reference:   b.optString(c, "reference"),
		})
	}
	return spec
}

// buildUnionSpec recurses into each member `type`; the recursion
// terminates because every leaf type eventually names a base (§9
// "Unions of types").
func (b *builder) buildUnionSpec(stmt *cst.Statement) UnionSpec {
	var spec UnionSpec
	for _, c := range children(stmt, "type") {
		spec.Types = append(spec.Types, b.buildType(c))
	}
	return spec
}

func (b *builder) buildRangeStmt(stmt *cst.Statement) *Range {
	if stmt == nil {
		return nil
	}
	return &Range{
		Value:        b.arg(stmt),
		ErrorMessage: b.optString(stmt, "error-message"),
		ErrorAppTag:  b.optString(stmt, "error-app-tag"),
		Description:  b.optString(stmt, "description"),
		Reference:    b.optString(stmt, "reference"),
	}
}

func (b *builder) buildLengthStmt(stmt *cst.Statement) *Length {
	if stmt == nil {
		return nil
	}
	return &Length{
		Value:        b.arg(stmt),
		ErrorMessage: b.optString(stmt, "error-message"),
		ErrorAppTag:  b.optString(stmt, "error-app-tag"),
		Description:  b.optString(stmt, "description"),
		Reference:    b.optString(stmt, "reference"),
	}
}

func (b *builder) buildPatternStmt(stmt *cst.Statement) Pattern {
	return Pattern{
		Value:        b.arg(stmt),
		Modifier:     b.optString(stmt, "modifier"),
		ErrorMessage: b.optString(stmt, "error-message"),
		ErrorAppTag:  b.optString(stmt, "error-app-tag"),
		Description:  b.optString(stmt, "description"),
		Reference:    b.optString(stmt, "reference"),
	}
}
