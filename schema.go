package yang

// SchemaNode is the closed tagged union of statements that can appear
// in a module/submodule body or any data-def-bearing container (§3,
// GLOSSARY "Data definition"). It is a superset of `data-def` that also
// covers the other body-level statements (typedef, grouping, extension,
// feature, identity, augment, rpc, notification, deviation), matching
// original_source/src/ast.rs's SchemaNode enum.
type SchemaNode interface {
	SchemaNodeName() string
	schemaNode()
}

// Typedef is a `typedef` statement (§3).
type Typedef struct {
	Name        string
	Type        Type
	Units       string
	Default     string
	Status      *Status
	Description string
	Reference   string
}

func (t *Typedef) SchemaNodeName() string { return t.Name }
func (t *Typedef) schemaNode()            {}

// Grouping is a `grouping` statement (§3).
type Grouping struct {
	Name          string
	Status        *Status
	Description   string
	Reference     string
	Typedefs      []Typedef
	Groupings     []Grouping
	DataDefs      []SchemaNode
	Actions       []Action
	Notifications []Notification
}

func (g *Grouping) SchemaNodeName() string { return g.Name }
func (g *Grouping) schemaNode()            {}

// Container is a `container` statement (§3).
type Container struct {
	Name          string
	When          *When
	IfFeatures    []string
	Must          []Must
	Presence      string
	HasPresence   bool
	Config        *bool
	Status        *Status
	Description   string
	Reference     string
	Typedefs      []Typedef
	Groupings     []Grouping
	DataDefs      []SchemaNode
	Actions       []Action
	Notifications []Notification
}

func (c *Container) SchemaNodeName() string { return c.Name }
func (c *Container) schemaNode()            {}

// Leaf is a `leaf` statement (§3).
type Leaf struct {
	Name        string
	When        *When
	IfFeatures  []string
	Type        Type
	Units       string
	Must        []Must
	Default     string
	HasDefault  bool
	Config      *bool
	Mandatory   *bool
	Status      *Status
	Description string
	Reference   string
}

func (l *Leaf) SchemaNodeName() string { return l.Name }
func (l *Leaf) schemaNode()            {}

// LeafList is a `leaf-list` statement. Default is plural: YANG 1.1
// permits multiple `default` substatements on a leaf-list (RFC 7950
// §7.7.3), unlike the singular `default` on `leaf`/`typedef` — resolved
// this way in SPEC_FULL.md, grounded on original_source/src/ast.rs's
// `LeafList.default: Vec<String>`.
type LeafList struct {
	Name        string
	When        *When
	IfFeatures  []string
	Type        Type
	Units       string
	Must        []Must
	Default     []string
	Config      *bool
	MinElements *uint32
	MaxElements *MaxElements
	OrderedBy   *OrderedBy
	Status      *Status
	Description string
	Reference   string
}

func (l *LeafList) SchemaNodeName() string { return l.Name }
func (l *LeafList) schemaNode()            {}

// List is a `list` statement (§3).
type List struct {
	Name          string
	When          *When
	IfFeatures    []string
	Must          []Must
	Key           string
	HasKey        bool
	Unique        []string
	Config        *bool
	MinElements   *uint32
	MaxElements   *MaxElements
	OrderedBy     *OrderedBy
	Status        *Status
	Description   string
	Reference     string
	Typedefs      []Typedef
	Groupings     []Grouping
	DataDefs      []SchemaNode
	Actions       []Action
	Notifications []Notification
}

func (l *List) SchemaNodeName() string { return l.Name }
func (l *List) schemaNode()            {}

// Choice is a `choice` statement (§3).
type Choice struct {
	Name        string
	When        *When
	IfFeatures  []string
	Default     string
	HasDefault  bool
	Config      *bool
	Mandatory   *bool
	Status      *Status
	Description string
	Reference   string
	Cases       []Case
}

func (c *Choice) SchemaNodeName() string { return c.Name }
func (c *Choice) schemaNode()            {}

// Case is a `case` statement, or the implicit Case materialized from a
// short-form choice child (§3, §9 "Choices and cases"). Implicit
// inherits the name of the single data-def it wraps.
type Case struct {
	Name        string
	When        *When
	IfFeatures  []string
	Status      *Status
	Description string
	Reference   string
	DataDefs    []SchemaNode
	Implicit    bool
}

func (c *Case) SchemaNodeName() string { return c.Name }
func (c *Case) schemaNode()            {}

// Anydata is an `anydata` statement (§3).
type Anydata struct {
	Name        string
	When        *When
	IfFeatures  []string
	Must        []Must
	Config      *bool
	Mandatory   *bool
	Status      *Status
	Description string
	Reference   string
}

func (a *Anydata) SchemaNodeName() string { return a.Name }
func (a *Anydata) schemaNode()            {}

// Anyxml is an `anyxml` statement (§3).
type Anyxml struct {
	Name        string
	When        *When
	IfFeatures  []string
	Must        []Must
	Config      *bool
	Mandatory   *bool
	Status      *Status
	Description string
	Reference   string
}

func (a *Anyxml) SchemaNodeName() string { return a.Name }
func (a *Anyxml) schemaNode()            {}

// Uses is a `uses` statement (§3).
type Uses struct {
	Grouping    string
	When        *When
	IfFeatures  []string
	Status      *Status
	Description string
	Reference   string
	Refines     []Refine
	Augments    []Augment
}

func (u *Uses) SchemaNodeName() string { return u.Grouping }
func (u *Uses) schemaNode()            {}

// Augment is an `augment` statement (§3). It can occur at module level
// or nested inside a `uses` statement.
type Augment struct {
	Target        string
	When          *When
	IfFeatures    []string
	Status        *Status
	Description   string
	Reference     string
	DataDefs      []SchemaNode
	Cases         []Case
	Actions       []Action
	Notifications []Notification
}

func (a *Augment) SchemaNodeName() string { return a.Target }
func (a *Augment) schemaNode()            {}

// Refine is a `refine` statement nested inside `uses` (§3).
type Refine struct {
	Target      string
	IfFeatures  []string
	Must        []Must
	Presence    string
	HasPresence bool
	Default     []string
	Config      *bool
	Mandatory   *bool
	MinElements *uint32
	MaxElements *MaxElements
	Description string
	Reference   string
}

// Extension is an `extension` statement (§3).
type Extension struct {
	Name        string
	Argument    *ExtensionArgument
	Status      *Status
	Description string
	Reference   string
}

func (e *Extension) SchemaNodeName() string { return e.Name }
func (e *Extension) schemaNode()            {}

// ExtensionArgument is the `argument` substatement of `extension`.
type ExtensionArgument struct {
	Name       string
	YinElement *bool
}

// Feature is a `feature` statement (§3).
type Feature struct {
	Name        string
	IfFeatures  []string
	Status      *Status
	Description string
	Reference   string
}

func (f *Feature) SchemaNodeName() string { return f.Name }
func (f *Feature) schemaNode()            {}

// Identity is an `identity` statement (§3).
type Identity struct {
	Name        string
	IfFeatures  []string
	Bases       []string
	Status      *Status
	Description string
	Reference   string
}

func (i *Identity) SchemaNodeName() string { return i.Name }
func (i *Identity) schemaNode()            {}
