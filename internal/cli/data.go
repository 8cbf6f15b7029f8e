package cli

import (
	"log/slog"

	"github.com/tablelab/sqltour/internal/dataset"
	"github.com/tablelab/sqltour/internal/relation"
)

// DefaultTable is the relation name the loaded dataset registers
// under when no override is given.
const DefaultTable = "sales"

// loadRelations loads the dataset and, when possible, the synthetic
// auxiliary join tables. A dataset without an "id" column still loads;
// it just gets no auxiliary tables (the join lessons need them, ad-hoc
// queries may not).
func loadRelations(path, table string) (map[string]*relation.Relation, error) {
	rel, err := dataset.Load(path, table)
	if err != nil {
		return nil, err
	}

	relations := map[string]*relation.Relation{table: rel}

	agents, offices, err := dataset.Auxiliary(rel)
	if err != nil {
		slog.Debug("skipping auxiliary tables", "error", err)
		return relations, nil
	}
	relations[agents.Name] = agents
	relations[offices.Name] = offices
	return relations, nil
}
