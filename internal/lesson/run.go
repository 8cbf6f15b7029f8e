package lesson

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tablelab/sqltour/internal/relation"
	"github.com/tablelab/sqltour/internal/store"
)

// Report is the outcome of running one lesson.
type Report struct {
	// RunID correlates this run in logs and JSON output. UUIDv7, so
	// reports sort by creation time. Cleared for golden comparison.
	RunID string `json:"run_id,omitempty"`

	Lesson string `json:"lesson"`
	Title  string `json:"title,omitempty"`

	// Columns and Rows are the result relation in wire form.
	Columns []string           `json:"columns"`
	Rows    [][]relation.Value `json:"rows"`

	// Failures lists expectation failures, empty on success.
	Failures []string `json:"failures,omitempty"`
}

// OK reports whether the lesson ran with all expectations met.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Runner executes lessons against one session.
type Runner struct {
	session *store.Session

	// NewRunID generates report run ids. Overridable for
	// deterministic tests; defaults to UUIDv7.
	NewRunID func() string
}

// NewRunner creates a Runner over an open session.
func NewRunner(sess *store.Session) *Runner {
	return &Runner{
		session:  sess,
		NewRunID: func() string { return uuid.Must(uuid.NewV7()).String() },
	}
}

// Run executes the lesson's query and checks its expectations.
//
// A query error is returned as an error (the lesson could not run);
// expectation failures are recorded in the report, not returned, so a
// tutorial run can continue past a failing lesson.
func (r *Runner) Run(ctx context.Context, l *Lesson) (*Report, error) {
	result, err := r.session.Query(ctx, l.Query)
	if err != nil {
		return nil, fmt.Errorf("lesson %s: %w", l.Name, err)
	}

	report := &Report{
		RunID:   r.NewRunID(),
		Lesson:  l.Name,
		Title:   l.Title,
		Columns: result.Schema.Names(),
		Rows:    result.Rows,
	}
	for _, failure := range checkExpect(l.Expect, result) {
		report.Failures = append(report.Failures, failure.Error())
	}
	return report, nil
}

// RunAll executes lessons in order, stopping only on query errors.
func (r *Runner) RunAll(ctx context.Context, lessons []*Lesson) ([]*Report, error) {
	reports := make([]*Report, 0, len(lessons))
	for _, l := range lessons {
		report, err := r.Run(ctx, l)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
