package runner

import (
	"errors"
	"fmt"
	"strings"
)

// QueryError represents a failure reported by the embedded engine
// while evaluating a query.
//
// Query errors include:
//   - Syntax: the query text cannot be parsed
//   - Unknown relation: a referenced table is absent from the inputs
//   - Unknown column: a referenced column does not exist
//   - Type mismatch: an operation applied to incompatible types
//
// None are retried and none are recoverable — the tutorial's model is
// run once, inspect output or error.
type QueryError struct {
	// Code identifies the error category.
	Code QueryErrorCode

	// Message is the engine's description of the failure.
	Message string

	// Relation names the missing table (for unknown-relation errors).
	Relation string

	// Column names the missing column (for unknown-column errors).
	Column string
}

// QueryErrorCode categorizes query errors.
type QueryErrorCode string

const (
	// ErrCodeSyntax indicates the query text cannot be parsed.
	ErrCodeSyntax QueryErrorCode = "SYNTAX_ERROR"

	// ErrCodeUnknownRelation indicates a referenced table doesn't exist.
	ErrCodeUnknownRelation QueryErrorCode = "UNKNOWN_RELATION"

	// ErrCodeUnknownColumn indicates a referenced column doesn't exist.
	ErrCodeUnknownColumn QueryErrorCode = "UNKNOWN_COLUMN"

	// ErrCodeTypeMismatch indicates incompatible operand types.
	ErrCodeTypeMismatch QueryErrorCode = "TYPE_MISMATCH"
)

// Error implements the error interface.
func (e *QueryError) Error() string {
	if e.Relation != "" {
		return fmt.Sprintf("%s: %s (relation=%s)", e.Code, e.Message, e.Relation)
	}
	if e.Column != "" {
		return fmt.Sprintf("%s: %s (column=%s)", e.Code, e.Message, e.Column)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsSyntaxError returns true if the error is a query syntax error.
// Uses errors.As to handle wrapped errors.
func IsSyntaxError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Code == ErrCodeSyntax
}

// IsUnknownRelation returns true if the error names a missing table.
func IsUnknownRelation(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Code == ErrCodeUnknownRelation
}

// IsUnknownColumn returns true if the error names a missing column.
func IsUnknownColumn(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Code == ErrCodeUnknownColumn
}

// IsTypeMismatch returns true if the error is a datatype mismatch.
func IsTypeMismatch(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Code == ErrCodeTypeMismatch
}

// classify maps an engine error onto the QueryError taxonomy by
// inspecting the sqlite error text. Errors that fit no category pass
// through unchanged.
func classify(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "syntax error"):
		return &QueryError{Code: ErrCodeSyntax, Message: msg}
	case strings.Contains(msg, "no such table: "):
		return &QueryError{
			Code:     ErrCodeUnknownRelation,
			Message:  msg,
			Relation: suffixAfter(msg, "no such table: "),
		}
	case strings.Contains(msg, "no such column: "):
		return &QueryError{
			Code:    ErrCodeUnknownColumn,
			Message: msg,
			Column:  suffixAfter(msg, "no such column: "),
		}
	case strings.Contains(msg, "datatype mismatch"):
		return &QueryError{Code: ErrCodeTypeMismatch, Message: msg}
	}
	return err
}

// suffixAfter returns the text following the first occurrence of
// marker, trimmed at the next space or parenthesis.
func suffixAfter(msg, marker string) string {
	rest := msg[strings.Index(msg, marker)+len(marker):]
	if i := strings.IndexAny(rest, " ("); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
