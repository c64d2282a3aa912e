package yang

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/golangyang/yang/internal/cst"
	"github.com/golangyang/yang/internal/types"
)

// builder performs the single recursive CST-to-IR walk described in
// §4.3. It never retains cst nodes past buildDocument returning: every
// string it produces is a fresh, owned copy, not a slice of source.
type builder struct {
	source []byte
	types.Logger
}

func newBuilder(source []byte, logger *slog.Logger) *builder {
	return &builder{source: source, Logger: types.Logger{L: logger}}
}

// internalErrorf panics to signal a CST shape the builder cannot map —
// a programmer error in the grammar or in the builder's own dispatch,
// never a user-facing condition (§4.3 "Failure semantics").
func internalErrorf(format string, args ...any) {
	panic(fmt.Sprintf("yang: internal error: "+format, args...))
}

func (b *builder) position(span types.Span) Position {
	pos := types.PositionOf(b.source, span.Start)
	return Position{Line: pos.Line, Column: pos.Column, ByteOffset: int(pos.ByteOffset)}
}

// arg returns the decoded argument of stmt, or "" if stmt is nil or has
// no argument at all (e.g. `input`/`output`). Decoding (escape
// expansion, '+'-concatenation) happens once, in cst.Argument.Decode.
func (b *builder) arg(stmt *cst.Statement) string {
	if stmt == nil {
		return ""
	}
	return stmt.Argument.Decode()
}

// children returns stmt's direct children whose keyword is one of want.
func children(stmt *cst.Statement, want ...string) []*cst.Statement {
	var out []*cst.Statement
	for _, c := range stmt.Children {
		for _, w := range want {
			if c.Keyword == w {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// lastChild returns the last direct child of stmt with the given
// keyword, or nil. Singleton substatements are last-wins per §4.3.
func lastChild(stmt *cst.Statement, keyword string) *cst.Statement {
	var found *cst.Statement
	for _, c := range stmt.Children {
		if c.Keyword == keyword {
			found = c
		}
	}
	return found
}

func firstChild(stmt *cst.Statement, keyword string) *cst.Statement {
	for _, c := range stmt.Children {
		if c.Keyword == keyword {
			return c
		}
	}
	return nil
}

func hasChild(stmt *cst.Statement, keyword string) bool {
	return firstChild(stmt, keyword) != nil
}

// collectIfFeatures gathers every `if-feature` child's argument, in
// source order.
func (b *builder) collectIfFeatures(stmt *cst.Statement) []string {
	var out []string
	for _, c := range children(stmt, "if-feature") {
		out = append(out, b.arg(c))
	}
	return out
}

func (b *builder) collectMust(stmt *cst.Statement) []Must {
	var out []Must
	for _, c := range children(stmt, "must") {
		out = append(out, b.buildMust(c))
	}
	return out
}

func (b *builder) buildMust(stmt *cst.Statement) Must {
	return Must{
		Condition:    b.arg(stmt),
		ErrorMessage: b.optString(stmt, "error-message"),
		ErrorAppTag:  b.optString(stmt, "error-app-tag"),
		Description:  b.optString(stmt, "description"),
		Reference:    b.optString(stmt, "reference"),
	}
}

func (b *builder) buildWhen(stmt *cst.Statement) *When {
	if stmt == nil {
		return nil
	}
	return &When{
		Condition:   b.arg(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
}

func (b *builder) optWhen(stmt *cst.Statement) *When {
	return b.buildWhen(lastChild(stmt, "when"))
}

// optString returns the decoded argument of stmt's last `keyword`
// child, or "" if absent.
func (b *builder) optString(stmt *cst.Statement, keyword string) string {
	c := lastChild(stmt, keyword)
	if c == nil {
		return ""
	}
	return b.arg(c)
}

// optStatus parses a `status` child. internal/cst's grammar layer has
// already rejected any value outside cst.StatusValues before the
// builder ever runs (§4.3, §9 "Keyword collisions"), so the ok==false
// branch below is an unreachable internal invariant, not a condition a
// malformed module can reach.
func (b *builder) optStatus(stmt *cst.Statement) *Status {
	c := lastChild(stmt, "status")
	if c == nil {
		return nil
	}
	v := b.arg(c)
	status, ok := parseStatus(v)
	if !ok {
		internalErrorf("unrecognized status value %q", v)
	}
	return &status
}

// optBool parses a boolean-valued child (`config`, `mandatory`,
// `yin-element`, `require-instance`). The grammar layer guarantees v is
// "true" or "false"; see optStatus.
func (b *builder) optBool(stmt *cst.Statement, keyword string) *bool {
	c := lastChild(stmt, keyword)
	if c == nil {
		return nil
	}
	v := b.arg(c)
	parsed, ok := parseBoolean(v)
	if !ok {
		internalErrorf("unrecognized boolean value %q for %q", v, keyword)
	}
	return &parsed
}

// optOrderedBy parses an `ordered-by` child. The grammar layer
// guarantees v is "user" or "system"; see optStatus.
func (b *builder) optOrderedBy(stmt *cst.Statement) *OrderedBy {
	c := lastChild(stmt, "ordered-by")
	if c == nil {
		return nil
	}
	v := b.arg(c)
	ob, ok := parseOrderedBy(v)
	if !ok {
		internalErrorf("unrecognized ordered-by value %q", v)
	}
	return &ob
}

// optUint32 parses an unsigned 32-bit integer child (`min-elements`,
// `position`). The grammar layer guarantees the argument already fits
// this width; see optStatus.
func (b *builder) optUint32(stmt *cst.Statement, keyword string) *uint32 {
	c := lastChild(stmt, keyword)
	if c == nil {
		return nil
	}
	n, err := strconv.ParseUint(b.arg(c), 10, 32)
	if err != nil {
		internalErrorf("invalid %s integer %q: %s", keyword, b.arg(c), err)
	}
	v := uint32(n)
	return &v
}

// optInt32 parses a signed 32-bit integer child (`value`). The grammar
// layer guarantees the argument already fits this width; see optStatus.
func (b *builder) optInt32(stmt *cst.Statement, keyword string) *int32 {
	c := lastChild(stmt, keyword)
	if c == nil {
		return nil
	}
	n, err := strconv.ParseInt(b.arg(c), 10, 32)
	if err != nil {
		internalErrorf("invalid %s integer %q: %s", keyword, b.arg(c), err)
	}
	v := int32(n)
	return &v
}

// optMaxElements parses a `max-elements` child, which is either an
// unsigned integer or the literal "unbounded" (§3, §8). The grammar
// layer guarantees one of those two shapes; see optStatus.
func (b *builder) optMaxElements(stmt *cst.Statement) *MaxElements {
	c := lastChild(stmt, "max-elements")
	if c == nil {
		return nil
	}
	v := b.arg(c)
	if v == "unbounded" {
		return &MaxElements{Unbounded: true}
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		internalErrorf("invalid max-elements value %q: %s", v, err)
	}
	return &MaxElements{Value: uint32(n)}
}

func (b *builder) collectDefaults(stmt *cst.Statement) []string {
	var out []string
	for _, c := range children(stmt, "default") {
		out = append(out, b.arg(c))
	}
	return out
}

func (b *builder) collectStrings(stmt *cst.Statement, keyword string) []string {
	var out []string
	for _, c := range children(stmt, keyword) {
		out = append(out, b.arg(c))
	}
	return out
}

// buildDocument dispatches on the top-level statement's keyword. The
// cst parser has already guaranteed this is "module" or "submodule"
// (cst.Parser.ParseDocument); any other keyword reaching here is an
// internal invariant violation.
//
// buildDocument cannot fail: §4.3 reserves user-facing errors for the
// grammar layer alone, so once cst.Parser.ParseDocument has succeeded
// the only remaining failure mode is an internal invariant violation,
// which panics rather than returning an error.
func (b *builder) buildDocument(stmt *cst.Statement) (Document, error) {
	switch stmt.Keyword {
	case "module":
		return b.buildModule(stmt), nil
	case "submodule":
		return b.buildSubmodule(stmt), nil
	default:
		internalErrorf("buildDocument called with unexpected top-level keyword %q", stmt.Keyword)
		return nil, nil
	}
}
