package dataset

import (
	"fmt"

	"github.com/tablelab/sqltour/internal/relation"
)

// Fixed source lists for the synthetic tables. The lists never change:
// together with the fixed seeds they keep lesson output identical
// across runs and machines.
var (
	agentNames = []string{"Nina Patel", "Marcus Webb", "Sofia Alvarez", "Dana Brooks", "Omar Haddad"}
	cityNames  = []string{"Seattle", "Bellevue", "Redmond", "Kirkland"}
)

const (
	agentsSeed  = 11
	officesSeed = 17
)

// Auxiliary builds the two small synthetic tables the join lessons
// use, derived from the loaded sales relation:
//
//   - agents(home_id, agent): an agent name sampled with replacement
//     for each of the first half of the sale ids. Covering only half
//     the sales is what gives the LEFT JOIN lesson its NULL rows.
//   - offices(agent, city): one row per distinct agent that appears in
//     agents, with a sampled city.
//
// The sales relation must have an "id" column.
func Auxiliary(sales *relation.Relation) (agents, offices *relation.Relation, err error) {
	ids, err := sales.ColumnValues("id")
	if err != nil {
		return nil, nil, fmt.Errorf("auxiliary tables: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("auxiliary tables: %s has no rows", sales.Name)
	}

	half := ids[:(len(ids)+1)/2]
	agents, err = relation.Sample("agents", "home_id", half, "agent", agentNames, agentsSeed)
	if err != nil {
		return nil, nil, fmt.Errorf("auxiliary tables: %w", err)
	}

	// Distinct agent names in first-appearance order.
	var distinct []relation.Value
	seen := make(map[string]bool)
	for _, row := range agents.Rows {
		name := row[1].(string)
		if !seen[name] {
			seen[name] = true
			distinct = append(distinct, name)
		}
	}

	offices, err = relation.Sample("offices", "agent", distinct, "city", cityNames, officesSeed)
	if err != nil {
		return nil, nil, fmt.Errorf("auxiliary tables: %w", err)
	}
	return agents, offices, nil
}
