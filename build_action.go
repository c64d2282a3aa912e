package yang

import "github.com/golangyang/yang/internal/cst"

func (b *builder) buildRpc(stmt *cst.Statement) *Rpc {
	r := &Rpc{
		Name:        b.arg(stmt),
		IfFeatures:  b.collectIfFeatures(stmt),
		Must:        b.collectMust(stmt),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
	for _, c := range children(stmt, "typedef") {
		r.Typedefs = append(r.Typedefs, b.buildTypedef(c))
	}
	for _, c := range children(stmt, "grouping") {
		r.Groupings = append(r.Groupings, *b.buildGrouping(c))
	}
	if in := lastChild(stmt, "input"); in != nil {
		r.Input = b.buildInput(in)
	}
	if out := lastChild(stmt, "output"); out != nil {
		r.Output = b.buildOutput(out)
	}
	return r
}

func (b *builder) buildAction(stmt *cst.Statement) *Action {
	a := &Action{
		Name:        b.arg(stmt),
		IfFeatures:  b.collectIfFeatures(stmt),
		Must:        b.collectMust(stmt),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
	for _, c := range children(stmt, "typedef") {
		a.Typedefs = append(a.Typedefs, b.buildTypedef(c))
	}
	for _, c := range children(stmt, "grouping") {
		a.Groupings = append(a.Groupings, *b.buildGrouping(c))
	}
	if in := lastChild(stmt, "input"); in != nil {
		a.Input = b.buildInput(in)
	}
	if out := lastChild(stmt, "output"); out != nil {
		a.Output = b.buildOutput(out)
	}
	return a
}

func (b *builder) buildNotification(stmt *cst.Statement) *Notification {
	body := b.collectSchemaBody(stmt)
	return &Notification{
		Name:        b.arg(stmt),
		IfFeatures:  b.collectIfFeatures(stmt),
		Must:        b.collectMust(stmt),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
		Typedefs:    body.Typedefs,
		Groupings:   body.Groupings,
		DataDefs:    body.DataDefs,
	}
}

// buildInput and buildOutput both build the argument-less `input`/
// `output` substatement (RFC 7950 §7.14.2, §7.14.3; cst/grammar.go's
// noArgumentKeywords already rejected any argument on these).
func (b *builder) buildInput(stmt *cst.Statement) *Input {
	body := b.collectSchemaBody(stmt)
	return &Input{
		Must:      b.collectMust(stmt),
		Typedefs:  body.Typedefs,
		Groupings: body.Groupings,
		DataDefs:  body.DataDefs,
	}
}

func (b *builder) buildOutput(stmt *cst.Statement) *Output {
	body := b.collectSchemaBody(stmt)
	return &Output{
		Must:      b.collectMust(stmt),
		Typedefs:  body.Typedefs,
		Groupings: body.Groupings,
		DataDefs:  body.DataDefs,
	}
}

// buildDeviation builds a `deviation` statement. deviates preserves
// source order of the `deviate` substatements (§3), unlike
// original_source/src/ast.rs's Deviation which folds them into three
// independent optional fields plus a not_supported bool — see
// SPEC_FULL.md's SUPPLEMENTED FEATURES section for why order is kept.
func (b *builder) buildDeviation(stmt *cst.Statement) *Deviation {
	d := &Deviation{
		Target:      b.arg(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
	for _, c := range children(stmt, "deviate") {
		d.Deviates = append(d.Deviates, b.buildDeviate(c))
	}
	return d
}

func (b *builder) buildDeviate(stmt *cst.Statement) Deviate {
	kind, ok := parseDeviateKind(b.arg(stmt))
	if !ok {
		internalErrorf("unrecognized deviate kind %q", b.arg(stmt))
	}
	dv := Deviate{Kind: kind}
	switch kind {
	case DeviateKindAdd:
		dv.Add = &DeviateAdd{
			Units:       b.optString(stmt, "units"),
			Must:        b.collectMust(stmt),
			Unique:      b.collectStrings(stmt, "unique"),
			Default:     b.collectDefaults(stmt),
			Config:      b.optBool(stmt, "config"),
			Mandatory:   b.optBool(stmt, "mandatory"),
			MinElements: b.optUint32(stmt, "min-elements"),
			MaxElements: b.optMaxElements(stmt),
		}
	case DeviateKindDelete:
		dv.Delete = &DeviateDelete{
			Units:   b.optString(stmt, "units"),
			Must:    b.collectMust(stmt),
			Unique:  b.collectStrings(stmt, "unique"),
			Default: b.collectDefaults(stmt),
		}
	case DeviateKindReplace:
		r := &DeviateReplace{
			Units:       b.optString(stmt, "units"),
			Default:     b.collectDefaults(stmt),
			Config:      b.optBool(stmt, "config"),
			Mandatory:   b.optBool(stmt, "mandatory"),
			MinElements: b.optUint32(stmt, "min-elements"),
			MaxElements: b.optMaxElements(stmt),
		}
		if t := lastChild(stmt, "type"); t != nil {
			typ := b.buildType(t)
			r.Type = &typ
		}
		dv.Replace = r
	case DeviateKindNotSupported:
		// no body (RFC 7950 §7.20.3.2).
	}
	return dv
}
