package yang

import (
	"log/slog"

	"github.com/golangyang/yang/internal/cst"
)

func (b *builder) buildModule(stmt *cst.Statement) *Module {
	m := &Module{
		Name:        b.arg(stmt),
		YangVersion: b.optString(stmt, "yang-version"),
		Namespace:   b.optString(stmt, "namespace"),
		Prefix:      b.optString(stmt, "prefix"),
		Meta:        b.buildMetaInfo(stmt),
	}
	for _, c := range children(stmt, "import") {
		m.Imports = append(m.Imports, b.buildImport(c))
	}
	for _, c := range children(stmt, "include") {
		m.Includes = append(m.Includes, b.buildInclude(c))
	}
	for _, c := range children(stmt, "revision") {
		m.Revisions = append(m.Revisions, b.buildRevision(c))
	}
	m.Body = b.buildBody(stmt)
	return m
}

func (b *builder) buildSubmodule(stmt *cst.Statement) *Submodule {
	s := &Submodule{
		Name:        b.arg(stmt),
		YangVersion: b.optString(stmt, "yang-version"),
		BelongsTo:   b.buildBelongsTo(lastChild(stmt, "belongs-to")),
		Meta:        b.buildMetaInfo(stmt),
	}
	for _, c := range children(stmt, "import") {
		s.Imports = append(s.Imports, b.buildImport(c))
	}
	for _, c := range children(stmt, "include") {
		s.Includes = append(s.Includes, b.buildInclude(c))
	}
	for _, c := range children(stmt, "revision") {
		s.Revisions = append(s.Revisions, b.buildRevision(c))
	}
	s.Body = b.buildBody(stmt)
	return s
}

func (b *builder) buildBelongsTo(stmt *cst.Statement) BelongsTo {
	if stmt == nil {
		return BelongsTo{}
	}
	return BelongsTo{
		Module: b.arg(stmt),
		Prefix: b.optString(stmt, "prefix"),
	}
}

func (b *builder) buildMetaInfo(stmt *cst.Statement) MetaInfo {
	return MetaInfo{
		Organization: b.optString(stmt, "organization"),
		Contact:      b.optString(stmt, "contact"),
		Description:  b.optString(stmt, "description"),
		Reference:    b.optString(stmt, "reference"),
	}
}

func (b *builder) buildImport(stmt *cst.Statement) Import {
	return Import{
		Module:       b.arg(stmt),
		Prefix:       b.optString(stmt, "prefix"),
		RevisionDate: b.optString(stmt, "revision-date"),
		Description:  b.optString(stmt, "description"),
		Reference:    b.optString(stmt, "reference"),
	}
}

func (b *builder) buildInclude(stmt *cst.Statement) Include {
	return Include{
		Module:       b.arg(stmt),
		RevisionDate: b.optString(stmt, "revision-date"),
		Description:  b.optString(stmt, "description"),
		Reference:    b.optString(stmt, "reference"),
	}
}

func (b *builder) buildRevision(stmt *cst.Statement) Revision {
	return Revision{
		Date:        b.arg(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
}

// buildBody builds every child that buildBodyStatement recognizes, per
// the `body` alternation of §4.2. Anything else (an extension-statement
// instance the IR has no typed slot for) is skipped rather than
// rejected: extension instances are uninterpretable without resolving
// their prefix to the extension definition, which §1's Non-goals place
// out of scope ("does not resolve prefixes to namespaces").
func (b *builder) buildBody(stmt *cst.Statement) []SchemaNode {
	var nodes []SchemaNode
	for _, c := range stmt.Children {
		node, handled := b.buildBodyStatement(c)
		if handled {
			nodes = append(nodes, node)
		} else if b.TraceEnabled() {
			b.Trace("skipping unrecognized body statement", slog.String("keyword", c.Keyword))
		}
	}
	return nodes
}

// buildBodyStatement builds the typed IR for one data-def-or-body-level
// statement. handled is false for header-level statements already
// consumed by buildModule/buildSubmodule (namespace, prefix, import,
// revision, ...) and for unrecognized keywords.
func (b *builder) buildBodyStatement(c *cst.Statement) (SchemaNode, bool) {
	switch c.Keyword {
	case "container":
		return b.buildContainer(c), true
	case "leaf":
		return b.buildLeaf(c), true
	case "leaf-list":
		return b.buildLeafList(c), true
	case "list":
		return b.buildList(c), true
	case "choice":
		return b.buildChoice(c), true
	case "anydata":
		return b.buildAnydata(c), true
	case "anyxml":
		return b.buildAnyxml(c), true
	case "uses":
		return b.buildUses(c), true
	case "typedef":
		t := b.buildTypedef(c)
		return &t, true
	case "grouping":
		return b.buildGrouping(c), true
	case "extension":
		return b.buildExtension(c), true
	case "feature":
		return b.buildFeature(c), true
	case "identity":
		return b.buildIdentity(c), true
	case "augment":
		return b.buildAugment(c), true
	case "rpc":
		return b.buildRpc(c), true
	case "notification":
		return b.buildNotification(c), true
	case "deviation":
		return b.buildDeviation(c), true
	default:
		return nil, false
	}
}
