// Package store holds registered relations in an in-memory SQLite
// database for the duration of a tutorial session.
//
// The store does no query planning of its own — joins, aggregation,
// and subquery evaluation are the embedded engine's job. What it owns:
//
//   - Session lifecycle: one :memory: database per session, pool
//     pinned to a single connection (an in-memory SQLite database is
//     per-connection, a second connection would see an empty database)
//   - Registration: CREATE TABLE derived from a relation's schema plus
//     a single-transaction parameterized bulk INSERT
//   - Result scanning: query output materialized back into a Relation
//
// Identifiers are validated before interpolation; cell values are
// always bound as parameters, never interpolated into SQL text.
package store
