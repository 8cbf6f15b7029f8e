package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/tablelab/sqltour/internal/relation"
)

// Error codes for dataset loading.
const (
	ErrCodeNotFound = "E_DATA_NOT_FOUND"
	ErrCodeRead     = "E_DATA_READ"
	ErrCodeHeader   = "E_DATA_HEADER"
	ErrCodeEmpty    = "E_DATA_EMPTY"
)

// LoadError represents an error that occurred while loading a dataset.
type LoadError struct {
	Code    string
	Message string
	Line    int // 1-based line in the input file, 0 if not line-specific
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load reads a CSV file into a relation with the given name.
//
// The first record is the header; every later record is one row. The
// csv reader enforces rectangular input (every row has exactly as many
// fields as the header).
func Load(path, name string) (*relation.Relation, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("dataset not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeRead, Message: err.Error()}
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeRead, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}
	if len(records) == 0 {
		return nil, &LoadError{Code: ErrCodeEmpty, Message: fmt.Sprintf("no header row in %s", path)}
	}

	header := records[0]
	for _, col := range header {
		if !relation.ValidIdentifier(col) {
			return nil, &LoadError{Code: ErrCodeHeader, Message: fmt.Sprintf("invalid column name %q", col), Line: 1}
		}
	}
	body := records[1:]

	schema := make(relation.Schema, len(header))
	for i, col := range header {
		schema[i] = relation.Column{Name: col, Type: inferType(body, i)}
	}

	rows := make([][]relation.Value, len(body))
	for i, record := range body {
		row := make([]relation.Value, len(header))
		for j, cell := range record {
			v, err := parseCell(cell, schema[j].Type)
			if err != nil {
				return nil, &LoadError{
					Code:    ErrCodeRead,
					Message: fmt.Sprintf("column %q: %v", header[j], err),
					Line:    i + 2,
				}
			}
			row[j] = v
		}
		rows[i] = row
	}

	rel, err := relation.New(name, schema, rows)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeRead, Message: err.Error()}
	}
	return rel, nil
}

// inferType picks a column type from every non-empty cell in the
// column: integer if all parse as integers, real if all parse as
// numbers, text otherwise. An all-empty column is text.
func inferType(records [][]string, col int) relation.Type {
	allInt, allReal, seen := true, true, false
	for _, record := range records {
		cell := record[col]
		if cell == "" {
			continue
		}
		seen = true
		if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
			allInt = false
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			allReal = false
		}
	}
	switch {
	case !seen:
		return relation.Text
	case allInt:
		return relation.Integer
	case allReal:
		return relation.Real
	default:
		return relation.Text
	}
}

// parseCell converts one CSV cell to a value of the column's type.
// Empty cells are NULL.
func parseCell(cell string, t relation.Type) (relation.Value, error) {
	if cell == "" {
		return nil, nil
	}
	switch t {
	case relation.Integer:
		return strconv.ParseInt(cell, 10, 64)
	case relation.Real:
		return strconv.ParseFloat(cell, 64)
	default:
		return cell, nil
	}
}
