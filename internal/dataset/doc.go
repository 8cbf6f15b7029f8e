// Package dataset loads the tutorial's spreadsheet export and builds
// the small synthetic tables the join lessons need.
//
// The input is a CSV file whose header row names the columns. Column
// types are inferred at load time: a column whose every non-empty cell
// parses as an integer loads as integer, else as real if every cell
// parses as a number, else as text. Empty cells load as NULL and do
// not participate in inference.
package dataset
