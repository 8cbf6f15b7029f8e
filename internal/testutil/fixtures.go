// Package testutil provides shared fixtures for tests that need a
// small, fully-known sales relation.
package testutil

import "github.com/tablelab/sqltour/internal/relation"

// SalesFixture returns a six-row sales relation with hand-picked
// values, so tests can assert exact query results without loading a
// dataset from disk.
//
// Row 1 (bathrooms=2, sqft_living=2100, sqft_lot=12000) and row 2
// (bathrooms=1, sqft_living=1500, sqft_lot=5000) anchor the filtering
// and CASE tests.
func SalesFixture() *relation.Relation {
	return relation.MustNew("sales",
		relation.Schema{
			{Name: "id", Type: relation.Integer},
			{Name: "price", Type: relation.Integer},
			{Name: "bedrooms", Type: relation.Integer},
			{Name: "bathrooms", Type: relation.Real},
			{Name: "sqft_living", Type: relation.Integer},
			{Name: "sqft_lot", Type: relation.Integer},
			{Name: "zipcode", Type: relation.Text},
		},
		[][]relation.Value{
			{1, 221900, 3, 2.0, 2100, 12000, "98178"},
			{2, 180000, 2, 1.0, 1500, 5000, "98125"},
			{3, 604000, 4, 3.0, 1960, 5000, "98136"},
			{4, 510000, 3, 2.0, 1680, 8080, "98074"},
			{5, 662500, 3, 2.5, 3560, 9796, "98007"},
			{6, 468000, 2, 1.0, 1160, 6000, "98125"},
		},
	)
}

// AgentsFixture returns an agents relation covering only ids 1-3, so
// joins against SalesFixture exercise both matched and unmatched rows.
func AgentsFixture() *relation.Relation {
	return relation.MustNew("agents",
		relation.Schema{
			{Name: "home_id", Type: relation.Integer},
			{Name: "agent", Type: relation.Text},
		},
		[][]relation.Value{
			{1, "Nina Patel"},
			{2, "Marcus Webb"},
			{3, "Nina Patel"},
		},
	)
}
