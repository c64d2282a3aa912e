package yang

// Rpc is an `rpc` statement (§3).
type Rpc struct {
	Name        string
	IfFeatures  []string
	Must        []Must
	Status      *Status
	Description string
	Reference   string
	Typedefs    []Typedef
	Groupings   []Grouping
	Input       *Input
	Output      *Output
}

func (r *Rpc) SchemaNodeName() string { return r.Name }
func (r *Rpc) schemaNode()            {}

// Action is an `action` statement, the grouping/container-scoped sibling
// of `rpc` (§3).
type Action struct {
	Name        string
	IfFeatures  []string
	Must        []Must
	Status      *Status
	Description string
	Reference   string
	Typedefs    []Typedef
	Groupings   []Grouping
	Input       *Input
	Output      *Output
}

func (a *Action) SchemaNodeName() string { return a.Name }
func (a *Action) schemaNode()            {}

// Notification is a `notification` statement (§3).
type Notification struct {
	Name        string
	IfFeatures  []string
	Must        []Must
	Status      *Status
	Description string
	Reference   string
	Typedefs    []Typedef
	Groupings   []Grouping
	DataDefs    []SchemaNode
}

func (n *Notification) SchemaNodeName() string { return n.Name }
func (n *Notification) schemaNode()            {}

// Input is the `input` substatement of `rpc`/`action`. It takes no
// argument at all (RFC 7950 §7.14.2).
type Input struct {
	Must      []Must
	Typedefs  []Typedef
	Groupings []Grouping
	DataDefs  []SchemaNode
}

// Output is the `output` substatement of `rpc`/`action` (RFC 7950
// §7.14.3). It also takes no argument.
type Output struct {
	Must      []Must
	Typedefs  []Typedef
	Groupings []Grouping
	DataDefs  []SchemaNode
}

// Deviation is a `deviation` statement (§3). Deviates is an ordered
// list rather than the four independent optional fields
// original_source/src/ast.rs's Deviation uses, to preserve §3's
// invariant that deviate statements keep source order; the three
// concrete payload shapes below are grounded on that same file's
// DeviateAdd/DeviateDelete/DeviateReplace.
type Deviation struct {
	Target      string
	Description string
	Reference   string
	Deviates    []Deviate
}

func (d *Deviation) SchemaNodeName() string { return d.Target }
func (d *Deviation) schemaNode()            {}

// Deviate is one `deviate` substatement of a `deviation`. For the add,
// delete and replace kinds exactly one payload field is non-nil,
// selected by Kind; DeviateKindNotSupported leaves all three nil (RFC
// 7950 §7.20.3.2).
type Deviate struct {
	Kind    DeviateKind
	Add     *DeviateAdd
	Delete  *DeviateDelete
	Replace *DeviateReplace
}

// DeviateAdd is the body of `deviate add`.
type DeviateAdd struct {
	Units       string
	Must        []Must
	Unique      []string
	Default     []string
	Config      *bool
	Mandatory   *bool
	MinElements *uint32
	MaxElements *MaxElements
}

// DeviateDelete is the body of `deviate delete`.
type DeviateDelete struct {
	Units   string
	Must    []Must
	Unique  []string
	Default []string
}

// DeviateReplace is the body of `deviate replace`.
type DeviateReplace struct {
	Type        *Type
	Units       string
	Default     []string
	Config      *bool
	Mandatory   *bool
	MinElements *uint32
	MaxElements *MaxElements
}
