package yang

import "github.com/golangyang/yang/internal/cst"

// Status is the closed enumeration of `status` argument values (§3).
type Status int

const (
	StatusCurrent Status = iota
	StatusObsolete
	StatusDeprecated
)

func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusObsolete:
		return "obsolete"
	case StatusDeprecated:
		return "deprecated"
	default:
		return "unknown"
	}
}

// OrderedBy is the closed enumeration of `leaf-list`/`list` `ordered-by`
// argument values (§3).
type OrderedBy int

const (
	OrderedBySystem OrderedBy = iota
	OrderedByUser
)

func (o OrderedBy) String() string {
	if o == OrderedByUser {
		return "user"
	}
	return "system"
}

// DeviateKind is the closed enumeration of `deviate` argument values
// (§9: deviate add/delete/replace/not-supported).
type DeviateKind int

const (
	DeviateKindNotSupported DeviateKind = iota
	DeviateKindAdd
	DeviateKindDelete
	DeviateKindReplace
)

func (d DeviateKind) String() string {
	switch d {
	case DeviateKindNotSupported:
		return "not-supported"
	case DeviateKindAdd:
		return "add"
	case DeviateKindDelete:
		return "delete"
	case DeviateKindReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// MaxElements is the `max-elements` argument: either an exact bound or
// the distinct Unbounded variant (§3, §8).
type MaxElements struct {
	Unbounded bool
	Value     uint32
}

// parseStatus, parseOrderedBy, parseDeviateKind, and parseBoolean map an
// already-validated argument value to its Go enum constant. The closed
// sets themselves (cst.StatusValues, cst.OrderedByValues,
// cst.DeviateValues, cst.BooleanValues) live in internal/cst, which
// enforces membership at the grammar layer before the builder ever runs
// (§4.3 item 2, §9 "Keyword collisions") — this package reuses those
// sets rather than redeclaring them, so there is exactly one place that
// knows what a legal `status`/`ordered-by`/`deviate`/boolean value is.

func parseStatus(s string) (Status, bool) {
	if !cst.StatusValues.Has(s) {
		return 0, false
	}
	switch s {
	case "obsolete":
		return StatusObsolete, true
	case "deprecated":
		return StatusDeprecated, true
	default:
		return StatusCurrent, true
	}
}

func parseOrderedBy(s string) (OrderedBy, bool) {
	if !cst.OrderedByValues.Has(s) {
		return 0, false
	}
	if s == "user" {
		return OrderedByUser, true
	}
	return OrderedBySystem, true
}

func parseDeviateKind(s string) (DeviateKind, bool) {
	if !cst.DeviateValues.Has(s) {
		return 0, false
	}
	switch s {
	case "add":
		return DeviateKindAdd, true
	case "delete":
		return DeviateKindDelete, true
	case "replace":
		return DeviateKindReplace, true
	default:
		return DeviateKindNotSupported, true
	}
}

func parseBoolean(s string) (bool, bool) {
	if !cst.BooleanValues.Has(s) {
		return false, false
	}
	return s == "true", true
}
