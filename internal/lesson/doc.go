// Package lesson defines the tutorial's unit of content: one query,
// the prose that teaches it, and optional expectations about its
// result.
//
// Lessons are YAML files. A Runner executes a lesson's query against
// an open session and checks its expectations, producing a Report
// whose failures are structured expected-vs-actual messages rather
// than raw booleans. Reports serialize to deterministic JSON so runs
// can be compared against golden files.
package lesson
