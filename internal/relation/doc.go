// Package relation defines the in-memory table model the tutorial runs
// queries against.
//
// A Relation is a named, ordered collection of rows over a fixed column
// schema. Relations are created once — from a loaded dataset, synthetic
// sampling, or a query result — and never mutated afterwards. Every
// transformation (a query) produces a new Relation.
//
// Values are restricted to the scalar kinds the embedded SQL engine
// round-trips losslessly: int64, float64, string, and nil. Constructors
// normalize the convenient Go literal forms (int, float32, ...) into
// those canonical kinds so the rest of the codebase can type-switch on
// exactly four cases.
package relation
