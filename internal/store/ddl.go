package store

import (
	"fmt"
	"strings"

	"github.com/tablelab/sqltour/internal/relation"
)

// sqlType maps a relation column type to its SQLite declared type.
func sqlType(t relation.Type) string {
	switch t {
	case relation.Integer:
		return "INTEGER"
	case relation.Real:
		return "REAL"
	default:
		return "TEXT"
	}
}

// quoteIdent wraps an already-validated identifier in double quotes.
func quoteIdent(name string) string {
	return `"` + name + `"`
}

// createTableSQL assembles the CREATE TABLE statement for a relation.
// Identifiers are re-validated here even though relation.New already
// checks them — this is the last line before interpolation.
func createTableSQL(rel *relation.Relation) (string, error) {
	if !relation.ValidIdentifier(rel.Name) {
		return "", fmt.Errorf("invalid relation name %q", rel.Name)
	}
	cols := make([]string, len(rel.Schema))
	for i, c := range rel.Schema {
		if !relation.ValidIdentifier(c.Name) {
			return "", fmt.Errorf("invalid column name %q", c.Name)
		}
		cols[i] = quoteIdent(c.Name) + " " + sqlType(c.Type)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(rel.Name), strings.Join(cols, ", ")), nil
}

// insertSQL assembles the parameterized INSERT statement for one row
// of a relation. Values are never interpolated — every cell binds to
// a placeholder.
func insertSQL(rel *relation.Relation) string {
	cols := make([]string, len(rel.Schema))
	marks := make([]string, len(rel.Schema))
	for i, c := range rel.Schema {
		cols[i] = quoteIdent(c.Name)
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(rel.Name), strings.Join(cols, ", "), strings.Join(marks, ", "))
}
