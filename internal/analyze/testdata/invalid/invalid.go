// Package invalid exercises the scanner's rejection paths.
package invalid

// hidden cannot get an adapter: the generated surface would not be
// usable outside the package.
//
//bulkcopy:generate
type hidden struct {
	ID int64
}

// Status is not an aggregate; there is nothing to map to columns.
//
//bulkcopy:generate
type Status string

// Meta is plain supporting data, not marked.
type Meta struct {
	Revision int
}

// Event is valid but carries an embedded field, which is skipped.
//
//bulkcopy:generate
type Event struct {
	Meta
	ID   int64
	Kind string
}

// Empty has no qualifying fields at all.
//
//bulkcopy:generate
type Empty struct {
	counter int
}

// Dup is marked on both the declaration group and the spec.
//
//bulkcopy:generate
type (
	//bulkcopy:generate
	Dup struct {
		ID int64
	}
)
