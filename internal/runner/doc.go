// Package runner executes a query string against a set of named
// relations and returns the result as a new relation.
//
// There is deliberately no query evaluation here: parsing, join
// strategy, aggregation, and subqueries all belong to the embedded
// SQLite engine. The runner registers the inputs, runs the query, and
// classifies engine failures into a small structured taxonomy
// (QueryError) so callers can branch on the cause with errors.As.
//
// Execute is purely a function of its inputs — each call uses a fresh
// in-memory session and retains nothing.
package runner
