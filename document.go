package yang

// Document is the tagged variant returned by Parse: either a Module or
// a Submodule (§3, §6).
type Document interface {
	DocumentName() string
	document()
}

// Module is a top-level `module` statement (§3).
type Module struct {
	Name        string
	YangVersion string // empty if absent; RFC 7950 default is "1"
	Namespace   string
	Prefix      string
	Meta        MetaInfo
	Imports     []Import
	Includes    []Include
	Revisions   []Revision
	Body        []SchemaNode
}

func (m *Module) DocumentName() string { return m.Name }
func (m *Module) document()            {}

// Submodule is a top-level `submodule` statement; it replaces a
// module's namespace/prefix header with `belongs-to` (§4.4).
type Submodule struct {
	Name        string
	YangVersion string
	BelongsTo   BelongsTo
	Meta        MetaInfo
	Imports     []Import
	Includes    []Include
	Revisions   []Revision
	Body        []SchemaNode
}

func (s *Submodule) DocumentName() string { return s.Name }
func (s *Submodule) document()            {}

// BelongsTo records a submodule's owning module and the prefix it uses
// for that module's namespace.
type BelongsTo struct {
	Module string
	Prefix string
}

// MetaInfo groups the four free-text header substatements common to
// modules and submodules.
type MetaInfo struct {
	Organization string
	Contact      string
	Description  string
	Reference    string
}

// Import is a module-level `import` statement.
type Import struct {
	Module       string
	Prefix       string
	RevisionDate string
	Description  string
	Reference    string
}

// Include is a module-level `include` statement.
type Include struct {
	Module       string
	RevisionDate string
	Description  string
	Reference    string
}

// Revision is one entry of a module's or submodule's revision history.
// Order is preserved (§3 invariants, §8).
type Revision struct {
	Date        string
	Description string
	Reference   string
}
