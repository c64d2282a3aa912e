package yang

// Type is a `type` statement: a (possibly prefixed) base type name plus
// an optional specification body (§3).
type Type struct {
	Name string
	Spec TypeSpec // nil when `type` has no body
}

// TypeSpec is the closed tagged union of type-specification bodies
// (§3, §9 "Type specifications"). The set of variants is fixed by RFC
// 7950, so a closed interface with a private marker method is the right
// shape rather than an open class hierarchy — the same pattern gomib
// uses for its TypeSyntax family (internal/ast/syntax.go).
type TypeSpec interface {
	typeSpec()
}

// NumericRestriction is the `type_body` for integer/decimal base types
// that carry only a `range`.
type NumericRestriction struct {
	Range *Range
}

func (NumericRestriction) typeSpec() {}

// Decimal64Spec is the `type_body` for `decimal64`.
type Decimal64Spec struct {
	FractionDigits uint8
	Range          *Range
}

func (Decimal64Spec) typeSpec() {}

// StringRestriction is the `type_body` for a length and/or pattern
// restriction on any base type other than `binary` (which yields
// BinarySpec).
type StringRestriction struct {
	Length   *Length
	Patterns []Pattern
}

func (StringRestriction) typeSpec() {}

// EnumSpec is the `type_body` for `enumeration`.
type EnumSpec struct {
	Enums []EnumValue
}

func (EnumSpec) typeSpec() {}

// LeafrefSpec is the `type_body` for `leafref`.
type LeafrefSpec struct {
	Path            string
	RequireInstance *bool
}

func (LeafrefSpec) typeSpec() {}

// IdentityrefSpec is the `type_body` for `identityref`.
type IdentityrefSpec struct {
	Bases []string
}

func (IdentityrefSpec) typeSpec() {}

// InstanceIdentifierSpec is the `type_body` for `instance-identifier`.
type InstanceIdentifierSpec struct {
	RequireInstance *bool
}

func (InstanceIdentifierSpec) typeSpec() {}

// BitsSpec is the `type_body` for `bits`.
type BitsSpec struct {
	Bits []Bit
}

func (BitsSpec) typeSpec() {}

// UnionSpec is the `type_body` for `union`; member types recurse
// because every leaf type eventually names a base (§9).
type UnionSpec struct {
	Types []Type
}

func (UnionSpec) typeSpec() {}

// BinarySpec is the `type_body` for `binary`.
type BinarySpec struct {
	Length *Length
}

func (BinarySpec) typeSpec() {}

// Range carries a raw `range` argument string verbatim (§4.3 item 4);
// the parser does not interpret range syntax.
type Range struct {
	Value        string
	ErrorMessage string
	ErrorAppTag  string
	Description  string
	Reference    string
}

// Length carries a raw `length` argument string verbatim.
type Length struct {
	Value        string
	ErrorMessage string
	ErrorAppTag  string
	Description  string
	Reference    string
}

// Pattern carries a raw `pattern` regex string verbatim, plus the
// optional `modifier` (invert-match) substatement.
type Pattern struct {
	Value        string
	Modifier     string
	ErrorMessage string
	ErrorAppTag  string
	Description  string
	Reference    string
}

// EnumValue is one `enum` child of an EnumSpec.
type EnumValue struct {
	Name        string
	IfFeatures  []string
	Value       *int32
	Status      *Status
	Description string
	Reference   string
}

// Bit is one `bit` child of a BitsSpec.
type Bit struct {
	Name        string
	IfFeatures  []string
	Position    *uint32
	Status      *Status
	Description string
	Reference   string
}

// Must is a `must` constraint: an XPath condition string retained
// verbatim, plus its error/description metadata (§4.3 item 4, SPEC_FULL
// supplemented feature grounded on original_source/src/ast.rs's Must).
type Must struct {
	Condition    string
	ErrorMessage string
	ErrorAppTag  string
	Description  string
	Reference    string
}

// When is a `when` condition: an XPath string retained verbatim, plus
// description/reference (supplemented feature, grounded on
// original_source/src/ast.rs's When).
type When struct {
	Condition   string
	Description string
	Reference   string
}
