package lesson

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares a report against the golden file
// testdata/golden/{name}.golden.
//
// The run id is cleared before comparison — it is the one
// intentionally non-deterministic field. To regenerate golden files:
//
//	go test ./internal/lesson -update
func AssertGolden(t *testing.T, name string, report *Report) {
	t.Helper()

	snapshot := *report
	snapshot.RunID = ""

	data, err := json.MarshalIndent(&snapshot, "", "  ")
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
