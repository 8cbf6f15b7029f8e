package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablelab/sqltour/internal/relation"
	"github.com/tablelab/sqltour/internal/testutil"
)

func TestAuxiliary_CoversFirstHalfOfIds(t *testing.T) {
	sales := testutil.SalesFixture()

	agents, offices, err := Auxiliary(sales)
	require.NoError(t, err)

	// Six sales, so agents covers ids 1-3.
	require.Equal(t, 3, agents.NumRows())
	for i, row := range agents.Rows {
		assert.Equal(t, int64(i+1), row[0])
	}

	assert.Equal(t, []string{"home_id", "agent"}, agents.Schema.Names())
	assert.Equal(t, []string{"agent", "city"}, offices.Schema.Names())

	// One office row per distinct agent.
	distinct := make(map[string]bool)
	for _, row := range agents.Rows {
		distinct[row[1].(string)] = true
	}
	assert.Equal(t, len(distinct), offices.NumRows())
}

func TestAuxiliary_Deterministic(t *testing.T) {
	sales := testutil.SalesFixture()

	agents1, offices1, err := Auxiliary(sales)
	require.NoError(t, err)
	agents2, offices2, err := Auxiliary(sales)
	require.NoError(t, err)

	assert.Equal(t, agents1.Rows, agents2.Rows)
	assert.Equal(t, offices1.Rows, offices2.Rows)
}

func TestAuxiliary_RequiresIdColumn(t *testing.T) {
	rel := relation.MustNew("sales",
		relation.Schema{{Name: "price", Type: relation.Integer}},
		[][]relation.Value{{100}},
	)

	_, _, err := Auxiliary(rel)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id")
}
