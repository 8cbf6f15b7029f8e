package relation

import "fmt"

// Value is a single cell value. The canonical kinds are int64, float64,
// string, and nil; Normalize widens everything else that is losslessly
// convertible.
type Value = any

// Type declares the kind of values a column holds.
type Type string

const (
	// Integer columns hold int64 values.
	Integer Type = "integer"
	// Real columns hold float64 values (int64 values widen on entry).
	Real Type = "real"
	// Text columns hold string values.
	Text Type = "text"
)

// valid reports whether t is one of the declared column types.
func (t Type) valid() bool {
	switch t {
	case Integer, Real, Text:
		return true
	}
	return false
}

// TypeOf returns the column type a canonical value belongs to.
// Returns false for nil (NULL belongs to every type) and for
// non-canonical kinds.
func TypeOf(v Value) (Type, bool) {
	switch v.(type) {
	case int64:
		return Integer, true
	case float64:
		return Real, true
	case string:
		return Text, true
	}
	return "", false
}

// Normalize converts a convenience value into its canonical kind.
// Signed integers become int64, floats become float64. Returns an
// error for kinds that have no canonical form (bools, structs, ...).
func Normalize(v Value) (Value, error) {
	switch val := v.(type) {
	case nil, int64, float64, string:
		return val, nil
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case float32:
		return float64(val), nil
	}
	return nil, fmt.Errorf("unsupported value kind %T", v)
}

// coerce normalizes v and checks it against the column type. Integer
// values widen to float64 when the column is Real.
func coerce(v Value, t Type) (Value, error) {
	norm, err := Normalize(v)
	if err != nil {
		return nil, err
	}
	if norm == nil {
		return nil, nil
	}
	vt, _ := TypeOf(norm)
	if vt == t {
		return norm, nil
	}
	if t == Real && vt == Integer {
		return float64(norm.(int64)), nil
	}
	return nil, fmt.Errorf("%v (%s) not assignable to %s column", norm, vt, t)
}
