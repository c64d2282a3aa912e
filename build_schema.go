package yang

import "github.com/golangyang/yang/internal/cst"

// dataDefKeywords are the statement keywords the GLOSSARY's
// "data-def" alternation covers (§4.2).
var dataDefKeywords = map[string]bool{
	"container": true,
	"leaf":      true,
	"leaf-list": true,
	"list":      true,
	"choice":    true,
	"anydata":   true,
	"anyxml":    true,
	"uses":      true,
}

// schemaBody is the result of one pass over a statement's children,
// bucketed by the shape every data-def-bearing parent needs (§3):
// typedefs/groupings/data-defs/actions/notifications, plus cases for
// the one caller (augment) that can introduce them directly.
type schemaBody struct {
	Typedefs      []Typedef
	Groupings     []Grouping
	DataDefs      []SchemaNode
	Cases         []Case
	Actions       []Action
	Notifications []Notification
}

func (b *builder) collectSchemaBody(stmt *cst.Statement) schemaBody {
	var body schemaBody
	for _, c := range stmt.Children {
		switch {
		case c.Keyword == "typedef":
			body.Typedefs = append(body.Typedefs, b.buildTypedef(c))
		case c.Keyword == "grouping":
			body.Groupings = append(body.Groupings, *b.buildGrouping(c))
		case c.Keyword == "case":
			body.Cases = append(body.Cases, *b.buildCase(c))
		case c.Keyword == "action":
			body.Actions = append(body.Actions, *b.buildAction(c))
		case c.Keyword == "notification":
			body.Notifications = append(body.Notifications, *b.buildNotification(c))
		case dataDefKeywords[c.Keyword]:
			node, _ := b.buildBodyStatement(c)
			body.DataDefs = append(body.DataDefs, node)
		}
	}
	return body
}

func (b *builder) buildTypedef(stmt *cst.Statement) Typedef {
	return Typedef{
		Name:        b.arg(stmt),
		Type:        b.buildType(lastChild(stmt, "type")),
		Units:       b.optString(stmt, "units"),
		Default:     b.optString(stmt, "default"),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
}

func (b *builder) buildGrouping(stmt *cst.Statement) *Grouping {
	body := b.collectSchemaBody(stmt)
	return &Grouping{
		Name:          b.arg(stmt),
		Status:        b.optStatus(stmt),
		Description:   b.optString(stmt, "description"),
		Reference:     b.optString(stmt, "reference"),
		Typedefs:      body.Typedefs,
		Groupings:     body.Groupings,
		DataDefs:      body.DataDefs,
		Actions:       body.Actions,
		Notifications: body.Notifications,
	}
}

func (b *builder) buildContainer(stmt *cst.Statement) *Container {
	body := b.collectSchemaBody(stmt)
	presence := lastChild(stmt, "presence")
	return &Container{
		Name:          b.arg(stmt),
		When:          b.optWhen(stmt),
		IfFeatures:    b.collectIfFeatures(stmt),
		Must:          b.collectMust(stmt),
		Presence:      b.arg(presence),
		HasPresence:   presence != nil,
		Config:        b.optBool(stmt, "config"),
		Status:        b.optStatus(stmt),
		Description:   b.optString(stmt, "description"),
		Reference:     b.optString(stmt, "reference"),
		Typedefs:      body.Typedefs,
		Groupings:     body.Groupings,
		DataDefs:      body.DataDefs,
		Actions:       body.Actions,
		Notifications: body.Notifications,
	}
}

func (b *builder) buildLeaf(stmt *cst.Statement) *Leaf {
	def := lastChild(stmt, "default")
	return &Leaf{
		Name:        b.arg(stmt),
		When:        b.optWhen(stmt),
		IfFeatures:  b.collectIfFeatures(stmt),
		Type:        b.buildType(lastChild(stmt, "type")),
		Units:       b.optString(stmt, "units"),
		Must:        b.collectMust(stmt),
		Default:     b.arg(def),
		HasDefault:  def != nil,
		Config:      b.optBool(stmt, "config"),
		Mandatory:   b.optBool(stmt, "mandatory"),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
}

func (b *builder) buildLeafList(stmt *cst.Statement) *LeafList {
	return &LeafList{
		Name:        b.arg(stmt),
		When:        b.optWhen(stmt),
		IfFeatures:  b.collectIfFeatures(stmt),
		Type:        b.buildType(lastChild(stmt, "type")),
		Units:       b.optString(stmt, "units"),
		Must:        b.collectMust(stmt),
		Default:     b.collectDefaults(stmt),
		Config:      b.optBool(stmt, "config"),
		MinElements: b.optUint32(stmt, "min-elements"),
		MaxElements: b.optMaxElements(stmt),
		OrderedBy:   b.optOrderedBy(stmt),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
}

func (b *builder) buildList(stmt *cst.Statement) *List {
	body := b.collectSchemaBody(stmt)
	key := lastChild(stmt, "key")
	return &List{
		Name:          b.arg(stmt),
		When:          b.optWhen(stmt),
		IfFeatures:    b.collectIfFeatures(stmt),
		Must:          b.collectMust(stmt),
		Key:           b.arg(key),
		HasKey:        key != nil,
		Unique:        b.collectStrings(stmt, "unique"),
		Config:        b.optBool(stmt, "config"),
		MinElements:   b.optUint32(stmt, "min-elements"),
		MaxElements:   b.optMaxElements(stmt),
		OrderedBy:     b.optOrderedBy(stmt),
		Status:        b.optStatus(stmt),
		Description:   b.optString(stmt, "description"),
		Reference:     b.optString(stmt, "reference"),
		Typedefs:      body.Typedefs,
		Groupings:     body.Groupings,
		DataDefs:      body.DataDefs,
		Actions:       body.Actions,
		Notifications: body.Notifications,
	}
}

// buildChoice materializes short-form cases into an implicit Case so
// downstream consumers always see a uniform []Case (§9 "Choices and
// cases"): a direct data-def child of `choice` becomes a synthetic
// `case` wrapping just that one child, named after it.
func (b *builder) buildChoice(stmt *cst.Statement) *Choice {
	def := lastChild(stmt, "default")
	c := &Choice{
		Name:        b.arg(stmt),
		When:        b.optWhen(stmt),
		IfFeatures:  b.collectIfFeatures(stmt),
		Default:     b.arg(def),
		HasDefault:  def != nil,
		Config:      b.optBool(stmt, "config"),
		Mandatory:   b.optBool(stmt, "mandatory"),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
	for _, child := range stmt.Children {
		switch {
		case child.Keyword == "case":
			c.Cases = append(c.Cases, *b.buildCase(child))
		case dataDefKeywords[child.Keyword]:
			node, _ := b.buildBodyStatement(child)
			c.Cases = append(c.Cases, Case{
				Name:     node.SchemaNodeName(),
				DataDefs: []SchemaNode{node},
				Implicit: true,
			})
		}
	}
	return c
}

func (b *builder) buildCase(stmt *cst.Statement) *Case {
	body := b.collectSchemaBody(stmt)
	return &Case{
		Name:        b.arg(stmt),
		When:        b.optWhen(stmt),
		IfFeatures:  b.collectIfFeatures(stmt),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
		DataDefs:    body.DataDefs,
	}
}

func (b *builder) buildAnydata(stmt *cst.Statement) *Anydata {
	return &Anydata{
		Name:        b.arg(stmt),
		When:        b.optWhen(stmt),
		IfFeatures:  b.collectIfFeatures(stmt),
		Must:        b.collectMust(stmt),
		Config:      b.optBool(stmt, "config"),
		Mandatory:   b.optBool(stmt, "mandatory"),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
}

func (b *builder) buildAnyxml(stmt *cst.Statement) *Anyxml {
	return &Anyxml{
		Name:        b.arg(stmt),
		When:        b.optWhen(stmt),
		IfFeatures:  b.collectIfFeatures(stmt),
		Must:        b.collectMust(stmt),
		Config:      b.optBool(stmt, "config"),
		Mandatory:   b.optBool(stmt, "mandatory"),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
}

func (b *builder) buildUses(stmt *cst.Statement) *Uses {
	u := &Uses{
		Grouping:    b.arg(stmt),
		When:        b.optWhen(stmt),
		IfFeatures:  b.collectIfFeatures(stmt),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
	for _, c := range children(stmt, "refine") {
		u.Refines = append(u.Refines, b.buildRefine(c))
	}
	for _, c := range children(stmt, "augment") {
		u.Augments = append(u.Augments, *b.buildAugment(c))
	}
	return u
}

func (b *builder) buildAugment(stmt *cst.Statement) *Augment {
	body := b.collectSchemaBody(stmt)
	return &Augment{
		Target:        b.arg(stmt),
		When:          b.optWhen(stmt),
		IfFeatures:    b.collectIfFeatures(stmt),
		Status:        b.optStatus(stmt),
		Description:   b.optString(stmt, "description"),
		Reference:     b.optString(stmt, "reference"),
		DataDefs:      body.DataDefs,
		Cases:         body.Cases,
		Actions:       body.Actions,
		Notifications: body.Notifications,
	}
}

func (b *builder) buildRefine(stmt *cst.Statement) Refine {
	presence := lastChild(stmt, "presence")
	return Refine{
		Target:      b.arg(stmt),
		IfFeatures:  b.collectIfFeatures(stmt),
		Must:        b.collectMust(stmt),
		Presence:    b.arg(presence),
		HasPresence: presence != nil,
		Default:     b.collectDefaults(stmt),
		Config:      b.optBool(stmt, "config"),
		Mandatory:   b.optBool(stmt, "mandatory"),
		MinElements: b.optUint32(stmt, "min-elements"),
		MaxElements: b.optMaxElements(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
}

func (b *builder) buildExtension(stmt *cst.Statement) *Extension {
	e := &Extension{
		Name:        b.arg(stmt),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
	if a := lastChild(stmt, "argument"); a != nil {
		e.Argument = &ExtensionArgument{
			Name:       b.arg(a),
			YinElement: b.optBool(a, "yin-element"),
		}
	}
	return e
}

func (b *builder) buildFeature(stmt *cst.Statement) *Feature {
	return &Feature{
		Name:        b.arg(stmt),
		IfFeatures:  b.collectIfFeatures(stmt),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
}

func (b *builder) buildIdentity(stmt *cst.Statement) *Identity {
	return &Identity{
		Name:        b.arg(stmt),
		IfFeatures:  b.collectIfFeatures(stmt),
		Bases:       b.collectStrings(stmt, "base"),
		Status:      b.optStatus(stmt),
		Description: b.optString(stmt, "description"),
		Reference:   b.optString(stmt, "reference"),
	}
}
