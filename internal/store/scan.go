package store

import (
	"database/sql"
	"fmt"

	"github.com/tablelab/sqltour/internal/relation"
)

// scanRelation materializes a result set into a Relation.
//
// Column types are inferred from the scanned values rather than from
// declared types: expression columns (COUNT(*), CASE, ...) carry no
// declaration, but the driver still hands back concrete Go kinds. A
// column whose values are all NULL defaults to text.
func scanRelation(rows *sql.Rows, name string) (*relation.Relation, error) {
	colNames, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("scan result: %w", err)
	}

	var out [][]relation.Value
	for rows.Next() {
		cells := make([]any, len(colNames))
		ptrs := make([]any, len(colNames))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan result row %d: %w", len(out), err)
		}
		row := make([]relation.Value, len(colNames))
		for i, v := range cells {
			row[i] = normalizeCell(v)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	schema := make(relation.Schema, len(colNames))
	for i, cn := range colNames {
		schema[i] = relation.Column{Name: cn, Type: inferColumnType(out, i)}
	}

	return &relation.Relation{Name: name, Schema: schema, Rows: out}, nil
}

// normalizeCell converts driver values to canonical relation values.
// The sqlite3 driver returns TEXT as []byte.
func normalizeCell(v any) relation.Value {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case bool:
		if val {
			return int64(1)
		}
		return int64(0)
	default:
		return val
	}
}

// inferColumnType picks a column type from the first non-NULL value.
func inferColumnType(rows [][]relation.Value, col int) relation.Type {
	for _, row := range rows {
		if row[col] == nil {
			continue
		}
		if t, ok := relation.TypeOf(row[col]); ok {
			return t
		}
	}
	return relation.Text
}
