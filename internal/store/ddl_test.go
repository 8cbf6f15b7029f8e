package store

import (
	"testing"

	"github.com/tablelab/sqltour/internal/relation"
)

func TestCreateTableSQL(t *testing.T) {
	rel := relation.MustNew("homes",
		relation.Schema{
			{Name: "id", Type: relation.Integer},
			{Name: "price", Type: relation.Real},
			{Name: "zipcode", Type: relation.Text},
		}, nil)

	got, err := createTableSQL(rel)
	if err != nil {
		t.Fatalf("createTableSQL() failed: %v", err)
	}
	want := `CREATE TABLE "homes" ("id" INTEGER, "price" REAL, "zipcode" TEXT)`
	if got != want {
		t.Errorf("createTableSQL() = %q, want %q", got, want)
	}
}

func TestCreateTableSQL_InvalidIdentifier(t *testing.T) {
	// Relations built through relation.New can't carry these names;
	// ddl re-validates before interpolating anyway.
	rel := &relation.Relation{
		Name:   "homes; DROP TABLE homes",
		Schema: relation.Schema{{Name: "id", Type: relation.Integer}},
	}
	if _, err := createTableSQL(rel); err == nil {
		t.Error("createTableSQL() accepted an invalid relation name")
	}

	rel = &relation.Relation{
		Name:   "homes",
		Schema: relation.Schema{{Name: `id" TEXT); --`, Type: relation.Integer}},
	}
	if _, err := createTableSQL(rel); err == nil {
		t.Error("createTableSQL() accepted an invalid column name")
	}
}

func TestInsertSQL(t *testing.T) {
	rel := relation.MustNew("homes",
		relation.Schema{
			{Name: "id", Type: relation.Integer},
			{Name: "price", Type: relation.Real},
		}, nil)

	got := insertSQL(rel)
	want := `INSERT INTO "homes" ("id", "price") VALUES (?, ?)`
	if got != want {
		t.Errorf("insertSQL() = %q, want %q", got, want)
	}
}
