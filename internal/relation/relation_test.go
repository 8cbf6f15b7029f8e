package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NormalizesValues(t *testing.T) {
	rel, err := New("homes",
		Schema{
			{Name: "id", Type: Integer},
			{Name: "bathrooms", Type: Real},
			{Name: "zipcode", Type: Text},
		},
		[][]Value{
			{1, 2, "98178"},
			{int32(2), 1.5, "98125"},
			{3, nil, nil},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, int64(1), rel.Rows[0][0])
	// Integers widen to float64 in a Real column.
	assert.Equal(t, float64(2), rel.Rows[0][1])
	assert.Equal(t, 1.5, rel.Rows[1][1])
	assert.Equal(t, int64(2), rel.Rows[1][0])
	assert.Nil(t, rel.Rows[2][1])
	assert.Nil(t, rel.Rows[2][2])
}

func TestNew_RowArityMismatch(t *testing.T) {
	_, err := New("homes",
		Schema{{Name: "id", Type: Integer}, {Name: "price", Type: Integer}},
		[][]Value{{1}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0 has 1 values")
}

func TestNew_TypeMismatch(t *testing.T) {
	_, err := New("homes",
		Schema{{Name: "id", Type: Integer}},
		[][]Value{{"not a number"}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not assignable")
}

func TestNew_RejectsInvalidNames(t *testing.T) {
	_, err := New("bad name", Schema{{Name: "id", Type: Integer}}, nil)
	assert.Error(t, err)

	_, err = New("homes", Schema{{Name: "bad-col", Type: Integer}}, nil)
	assert.Error(t, err)

	_, err = New("homes", Schema{
		{Name: "id", Type: Integer},
		{Name: "id", Type: Integer},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column")
}

func TestNew_RejectsUnknownType(t *testing.T) {
	_, err := New("homes", Schema{{Name: "id", Type: "blob"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestSchema_IndexAndNames(t *testing.T) {
	s := Schema{
		{Name: "id", Type: Integer},
		{Name: "price", Type: Integer},
	}
	assert.Equal(t, 0, s.Index("id"))
	assert.Equal(t, 1, s.Index("price"))
	assert.Equal(t, -1, s.Index("missing"))
	assert.Equal(t, []string{"id", "price"}, s.Names())
}

func TestColumnValues(t *testing.T) {
	rel := MustNew("homes",
		Schema{{Name: "id", Type: Integer}, {Name: "price", Type: Integer}},
		[][]Value{{1, 100}, {2, 200}},
	)

	vals, err := rel.ColumnValues("price")
	require.NoError(t, err)
	assert.Equal(t, []Value{int64(100), int64(200)}, vals)

	_, err = rel.ColumnValues("missing")
	assert.Error(t, err)
}

func TestTypeOf(t *testing.T) {
	cases := []struct {
		value Value
		want  Type
		ok    bool
	}{
		{int64(1), Integer, true},
		{1.5, Real, true},
		{"x", Text, true},
		{nil, "", false},
		{true, "", false},
	}
	for _, tc := range cases {
		got, ok := TypeOf(tc.value)
		assert.Equal(t, tc.ok, ok)
		assert.Equal(t, tc.want, got)
	}
}
