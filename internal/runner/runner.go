package runner

import (
	"context"
	"fmt"
	"sort"

	"github.com/tablelab/sqltour/internal/relation"
	"github.com/tablelab/sqltour/internal/store"
)

// Execute evaluates query against the named relations and returns the
// result relation.
//
// Every call opens a fresh in-memory session, registers the inputs
// (in sorted name order, for deterministic failure attribution), runs
// the query, and closes the session. The inputs are never mutated and
// nothing is retained between calls.
//
// Failures surface as *QueryError where the cause fits the taxonomy
// (syntax error, unknown relation or column, type mismatch) and as the
// engine's own error otherwise.
func Execute(ctx context.Context, query string, relations map[string]*relation.Relation) (*relation.Relation, error) {
	sess, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	defer sess.Close()

	names := make([]string, 0, len(relations))
	for name := range relations {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rel := relations[name]
		if rel.Name != name {
			return nil, fmt.Errorf("execute: relation registered as %q is named %q", name, rel.Name)
		}
		if err := sess.Register(ctx, rel); err != nil {
			return nil, fmt.Errorf("execute: %w", err)
		}
	}

	result, err := sess.Query(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	return result, nil
}
