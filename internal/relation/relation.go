package relation

import (
	"fmt"
	"regexp"
)

// validIdentifier matches valid relation and column names.
// Only allows alphanumeric and underscore, must start with letter or
// underscore. This prevents SQL injection via identifier interpolation
// when relations are registered with the embedded engine.
var validIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidIdentifier reports whether name is usable as a relation or
// column name.
func ValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// Column is one entry in a relation's schema.
type Column struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// Schema is the ordered column list shared by every row of a relation.
type Schema []Column

// Index returns the position of the named column, or -1 if absent.
func (s Schema) Index(name string) int {
	for i, c := range s {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// validate checks column names and types.
func (s Schema) validate() error {
	if len(s) == 0 {
		return fmt.Errorf("schema has no columns")
	}
	seen := make(map[string]bool, len(s))
	for _, c := range s {
		if !ValidIdentifier(c.Name) {
			return fmt.Errorf("invalid column name %q", c.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate column name %q", c.Name)
		}
		seen[c.Name] = true
		if !c.Type.valid() {
			return fmt.Errorf("column %q: unknown type %q", c.Name, c.Type)
		}
	}
	return nil
}

// Relation is a named table of rows with a fixed column schema.
//
// Column cardinality and row count are fixed at creation time; callers
// must treat Schema and Rows as read-only.
type Relation struct {
	Name   string
	Schema Schema
	Rows   [][]Value
}

// New builds a relation, validating the name, the schema, and every
// row. Row values are normalized to their canonical kinds (see
// Normalize); integer values widen to float64 in Real columns.
func New(name string, schema Schema, rows [][]Value) (*Relation, error) {
	if !ValidIdentifier(name) {
		return nil, fmt.Errorf("invalid relation name %q", name)
	}
	if err := schema.validate(); err != nil {
		return nil, fmt.Errorf("relation %s: %w", name, err)
	}
	out := make([][]Value, len(rows))
	for i, row := range rows {
		if len(row) != len(schema) {
			return nil, fmt.Errorf("relation %s: row %d has %d values, schema has %d columns",
				name, i, len(row), len(schema))
		}
		norm := make([]Value, len(row))
		for j, v := range row {
			cv, err := coerce(v, schema[j].Type)
			if err != nil {
				return nil, fmt.Errorf("relation %s: row %d column %q: %w", name, i, schema[j].Name, err)
			}
			norm[j] = cv
		}
		out[i] = norm
	}
	return &Relation{Name: name, Schema: schema, Rows: out}, nil
}

// MustNew is New for fixtures and tests that control their inputs.
// Panics on error.
func MustNew(name string, schema Schema, rows [][]Value) *Relation {
	rel, err := New(name, schema, rows)
	if err != nil {
		panic(err)
	}
	return rel
}

// NumRows returns the number of rows.
func (r *Relation) NumRows() int {
	return len(r.Rows)
}

// ColumnValues returns the values of the named column in row order.
func (r *Relation) ColumnValues(name string) ([]Value, error) {
	idx := r.Schema.Index(name)
	if idx < 0 {
		return nil, fmt.Errorf("relation %s has no column %q", r.Name, name)
	}
	vals := make([]Value, len(r.Rows))
	for i, row := range r.Rows {
		vals[i] = row[idx]
	}
	return vals, nil
}
