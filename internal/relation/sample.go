package relation

import (
	"fmt"
	"math/rand"
)

// Sample builds a two-column relation by pairing each key with a value
// drawn uniformly, with replacement, from source.
//
// The generator is seeded explicitly so the same inputs always produce
// the same relation, which keeps lesson output and golden files stable
// across runs.
func Sample(name, keyCol string, keys []Value, valCol string, source []string, seed int64) (*Relation, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("sample %s: no keys", name)
	}
	if len(source) == 0 {
		return nil, fmt.Errorf("sample %s: empty source list", name)
	}

	first, err := Normalize(keys[0])
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", name, err)
	}
	keyType, ok := TypeOf(first)
	if !ok {
		return nil, fmt.Errorf("sample %s: key has no column type", name)
	}

	rng := rand.New(rand.NewSource(seed))
	rows := make([][]Value, len(keys))
	for i, k := range keys {
		rows[i] = []Value{k, source[rng.Intn(len(source))]}
	}

	schema := Schema{
		{Name: keyCol, Type: keyType},
		{Name: valCol, Type: Text},
	}
	return New(name, schema, rows)
}
