package schema

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/token"

	"github.com/tablelab/sqltour/internal/relation"
)

// Contract is a compiled dataset contract.
type Contract struct {
	// Table is the expected relation name.
	Table string

	// Columns maps declared column names to their expected types.
	Columns map[string]relation.Type

	// Required lists columns that must be present.
	Required []string
}

// CompileError reports a problem in the contract file itself.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CheckError reports one violation found while checking a relation
// against a contract.
type CheckError struct {
	Column  string `json:"column,omitempty"`
	Message string `json:"message"`
}

func (e *CheckError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("column %q: %s", e.Column, e.Message)
	}
	return e.Message
}

// Compile parses a CUE contract file into a Contract.
func Compile(path string) (*Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contract: %w", err)
	}

	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, &CompileError{Field: "dataset", Message: err.Error()}
	}

	dsVal := value.LookupPath(cue.ParsePath("dataset"))
	if !dsVal.Exists() {
		return nil, &CompileError{Field: "dataset", Message: "dataset declaration is required", Pos: value.Pos()}
	}

	contract := &Contract{Columns: make(map[string]relation.Type)}

	tableVal := dsVal.LookupPath(cue.ParsePath("table"))
	if !tableVal.Exists() {
		return nil, &CompileError{Field: "dataset.table", Message: "table is required", Pos: dsVal.Pos()}
	}
	table, err := tableVal.String()
	if err != nil {
		return nil, &CompileError{Field: "dataset.table", Message: err.Error(), Pos: tableVal.Pos()}
	}
	contract.Table = table

	colsVal := dsVal.LookupPath(cue.ParsePath("columns"))
	if !colsVal.Exists() {
		return nil, &CompileError{Field: "dataset.columns", Message: "columns are required", Pos: dsVal.Pos()}
	}
	iter, err := colsVal.Fields()
	if err != nil {
		return nil, &CompileError{Field: "dataset.columns", Message: err.Error(), Pos: colsVal.Pos()}
	}
	for iter.Next() {
		name := iter.Selector().String()
		typeStr, err := iter.Value().String()
		if err != nil {
			return nil, &CompileError{
				Field:   "dataset.columns." + name,
				Message: err.Error(),
				Pos:     iter.Value().Pos(),
			}
		}
		t := relation.Type(typeStr)
		switch t {
		case relation.Integer, relation.Real, relation.Text:
			contract.Columns[name] = t
		default:
			return nil, &CompileError{
				Field:   "dataset.columns." + name,
				Message: fmt.Sprintf("unknown column type %q (want integer, real, or text)", typeStr),
				Pos:     iter.Value().Pos(),
			}
		}
	}
	if len(contract.Columns) == 0 {
		return nil, &CompileError{Field: "dataset.columns", Message: "at least one column is required", Pos: colsVal.Pos()}
	}

	reqVal := dsVal.LookupPath(cue.ParsePath("required"))
	if reqVal.Exists() {
		list, err := reqVal.List()
		if err != nil {
			return nil, &CompileError{Field: "dataset.required", Message: err.Error(), Pos: reqVal.Pos()}
		}
		for list.Next() {
			name, err := list.Value().String()
			if err != nil {
				return nil, &CompileError{Field: "dataset.required", Message: err.Error(), Pos: list.Value().Pos()}
			}
			if _, ok := contract.Columns[name]; !ok {
				return nil, &CompileError{
					Field:   "dataset.required",
					Message: fmt.Sprintf("required column %q is not declared in columns", name),
					Pos:     list.Value().Pos(),
				}
			}
			contract.Required = append(contract.Required, name)
		}
	}

	return contract, nil
}

// Check compares a relation against the contract and returns every
// violation found. A nil result means the relation conforms.
//
// Rules: the relation name must match the declared table; every
// required column must be present; every declared column that is
// present must have the declared type (an integer column satisfies a
// real declaration — the engine widens losslessly). Columns the
// contract does not declare are allowed.
func (c *Contract) Check(rel *relation.Relation) []CheckError {
	var errs []CheckError

	if rel.Name != c.Table {
		errs = append(errs, CheckError{
			Message: fmt.Sprintf("relation is named %q, contract declares table %q", rel.Name, c.Table),
		})
	}

	for _, name := range c.Required {
		if rel.Schema.Index(name) < 0 {
			errs = append(errs, CheckError{Column: name, Message: "required column is missing"})
		}
	}

	for _, col := range rel.Schema {
		want, declared := c.Columns[col.Name]
		if !declared {
			continue
		}
		if col.Type == want {
			continue
		}
		if want == relation.Real && col.Type == relation.Integer {
			continue
		}
		errs = append(errs, CheckError{
			Column:  col.Name,
			Message: fmt.Sprintf("has type %s, contract declares %s", col.Type, want),
		})
	}

	return errs
}
