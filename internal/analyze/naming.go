package analyze

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

var rules = ruleset()

func ruleset() *inflect.Ruleset {
	r := inflect.NewDefaultRuleset()
	// Irregulars that show up in data models and that the default
	// ruleset gets wrong.
	for _, w := range []string{"equipment", "information", "metadata"} {
		r.AddUncountable(w)
	}

	return r
}

// TableName returns the default destination table for a type name:
// pluralized snake_case (Product -> products, AuditEvent -> audit_events).
func TableName(typeName string) string {
	return snake(rules.Pluralize(typeName))
}

// ColumnName returns the default destination column for a field name
// (CustomerID -> customer_id, SKU -> sku).
func ColumnName(fieldName string) string {
	return snake(fieldName)
}

// Plural pluralizes a Go type name, keeping its casing
// (Product -> Products, Person -> People).
func Plural(typeName string) string {
	return rules.Pluralize(typeName)
}

// FileBase returns the snake_case base of the generated filename for a
// type name.
func FileBase(typeName string) string {
	return snake(typeName)
}

// snake converts a Go identifier to snake_case, keeping acronym runs
// together (HTTPStatus -> http_status).
func snake(s string) string {
	var b strings.Builder

	j := 0
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		// Break before an uppercase letter that starts a new word:
		// previous letter lowercase, or next letter lowercase after a run.
		if i > 0 && i < len(s)-1 && unicode.IsUpper(r) {
			if unicode.IsLower(rune(s[i-1])) ||
				(j != i-1 && unicode.IsLower(rune(s[i+1]))) {
				j = i

				b.WriteByte('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
