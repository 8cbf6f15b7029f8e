package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablelab/sqltour/internal/relation"
)

func resultFixture() *relation.Relation {
	return relation.MustNew("result",
		relation.Schema{
			{Name: "id", Type: relation.Integer},
			{Name: "avg_price", Type: relation.Real},
			{Name: "agent", Type: relation.Text},
		},
		[][]relation.Value{
			{1, 279000.0, "Nina Patel"},
			{2, 412000.0, nil},
		},
	)
}

func TestCheckExpect_NilExpectAlwaysPasses(t *testing.T) {
	assert.Empty(t, checkExpect(nil, resultFixture()))
}

func TestCheckExpect_ColumnsMismatch(t *testing.T) {
	errs := checkExpect(&Expect{Columns: []string{"id", "price"}}, resultFixture())
	require.Len(t, errs, 1)

	var ae *AssertionError
	require.ErrorAs(t, errs[0], &ae)
	assert.Equal(t, "columns", ae.Type)
}

func TestCheckExpect_NumericComparisonCrossesKinds(t *testing.T) {
	// YAML hands lesson authors int; the engine hands back int64 and
	// float64. All three must compare numerically.
	errs := checkExpect(&Expect{
		Rows: [][]any{
			{1, 279000, "Nina Patel"},
			{2, 412000.0, nil},
		},
	}, resultFixture())
	assert.Empty(t, errs)
}

func TestCheckExpect_RowValueMismatch(t *testing.T) {
	errs := checkExpect(&Expect{
		Rows: [][]any{{1, 279000, "Marcus Webb"}},
	}, resultFixture())
	require.Len(t, errs, 1)

	var ae *AssertionError
	require.ErrorAs(t, errs[0], &ae)
	assert.Equal(t, "rows", ae.Type)
	assert.Contains(t, ae.Expected, "Marcus Webb")
}

func TestCheckExpect_MoreExpectedRowsThanResults(t *testing.T) {
	errs := checkExpect(&Expect{
		Rows: [][]any{
			{1, 279000, "Nina Patel"},
			{2, 412000, nil},
			{3, 100, "x"},
		},
	}, resultFixture())
	require.Len(t, errs, 1)

	var ae *AssertionError
	require.ErrorAs(t, errs[0], &ae)
	assert.Contains(t, ae.Actual, "only 2 rows")
}

func TestCheckExpect_CollectsEveryFailure(t *testing.T) {
	errs := checkExpect(&Expect{
		Columns:  []string{"wrong"},
		RowCount: intPtr(9),
	}, resultFixture())
	assert.Len(t, errs, 2)
}

func TestValueEqual_NullHandling(t *testing.T) {
	assert.True(t, valueEqual(nil, nil))
	assert.False(t, valueEqual(nil, "x"))
	assert.False(t, valueEqual(int64(0), nil))
}
