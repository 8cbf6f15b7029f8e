package lesson

import (
	"fmt"
	"reflect"

	"github.com/tablelab/sqltour/internal/relation"
)

// AssertionError is returned when a lesson expectation fails. It
// carries expected vs actual so the failure reads like a diff, not a
// boolean.
type AssertionError struct {
	Type     string // expectation kind, e.g. "columns", "row_count"
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("expectation %s failed: expected %s, got %s", e.Type, e.Expected, e.Actual)
}

// checkExpect compares a result relation against a lesson's
// expectations and returns every failure.
func checkExpect(expect *Expect, result *relation.Relation) []error {
	if expect == nil {
		return nil
	}
	var errs []error

	if expect.Columns != nil {
		actual := result.Schema.Names()
		if !reflect.DeepEqual(expect.Columns, actual) {
			errs = append(errs, &AssertionError{
				Type:     "columns",
				Expected: fmt.Sprintf("%v", expect.Columns),
				Actual:   fmt.Sprintf("%v", actual),
			})
		}
	}

	if expect.RowCount != nil && *expect.RowCount != result.NumRows() {
		errs = append(errs, &AssertionError{
			Type:     "row_count",
			Expected: fmt.Sprintf("%d rows", *expect.RowCount),
			Actual:   fmt.Sprintf("%d rows", result.NumRows()),
		})
	}

	for i, want := range expect.Rows {
		if i >= result.NumRows() {
			errs = append(errs, &AssertionError{
				Type:     "rows",
				Expected: fmt.Sprintf("row %d = %v", i, want),
				Actual:   fmt.Sprintf("only %d rows", result.NumRows()),
			})
			break
		}
		if !rowsEqual(want, result.Rows[i]) {
			errs = append(errs, &AssertionError{
				Type:     "rows",
				Expected: fmt.Sprintf("row %d = %v", i, want),
				Actual:   fmt.Sprintf("row %d = %v", i, result.Rows[i]),
			})
		}
	}

	return errs
}

// rowsEqual compares an expected row (YAML values) against an actual
// row (canonical relation values).
func rowsEqual(want []any, got []relation.Value) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if !valueEqual(want[i], got[i]) {
			return false
		}
	}
	return true
}

// valueEqual compares one expected cell against one actual cell.
// Numbers compare numerically so YAML ints match engine floats.
func valueEqual(want, got any) bool {
	if want == nil || got == nil {
		return want == nil && got == nil
	}
	wf, wok := toFloat(want)
	gf, gok := toFloat(got)
	if wok && gok {
		return wf == gf
	}
	ws, wok := want.(string)
	gs, gok := got.(string)
	return wok && gok && ws == gs
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
