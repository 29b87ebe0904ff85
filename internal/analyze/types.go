package analyze

import (
	"reflect"
	"strings"

	"bulkcopy-generator/internal/diagnostic"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "bulkcopy-generator/examples/store"
	Name    string // e.g., "Product"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Candidate describes one marked struct type selected for adapter generation.
type Candidate struct {
	ID      TypeID
	PkgName string // package name of the declaring package
	Dir     string // directory of the declaring package (output location)
	Table   string // destination table name (pluralized snake_case, overridable)
	Members []Member
	Pos     string // "file:line" of the type declaration
}

// Columns returns the column names of all members in declaration order.
func (c *Candidate) Columns() []string {
	cols := make([]string, len(c.Members))
	for i, m := range c.Members {
		cols[i] = m.Column
	}

	return cols
}

// Member describes one qualifying struct field of a candidate.
// Order across a candidate's Members equals field declaration order and
// determines the positional column mapping.
type Member struct {
	Name     string // Go field name
	Column   string // destination column name
	Type     string // rendered Go type, qualified relative to the declaring package
	Nullable bool   // pointer or database/sql null wrapper
	Index    int    // field index in the struct
}

// Model is the result of a scan: all discovered candidates plus any
// build-time findings.
type Model struct {
	Candidates  []Candidate
	Diagnostics diagnostic.Diagnostics
}

// Candidate returns the candidate with the given ID, or nil.
func (m *Model) Candidate(id TypeID) *Candidate {
	for i := range m.Candidates {
		if m.Candidates[i].ID == id {
			return &m.Candidates[i]
		}
	}

	return nil
}

// columnTag extracts the column override from a db struct tag.
// Returns the override (may be empty) and whether the field is excluded.
func columnTag(tag reflect.StructTag) (string, bool) {
	v := tag.Get("db")
	if v == "" {
		return "", false
	}

	if v == "-" {
		return "", true
	}

	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}

	return v, false
}
