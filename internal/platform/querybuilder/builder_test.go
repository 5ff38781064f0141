package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("league_id", "l1"), IsNull("logo_url")).
		OrderBy("name").
		Limit(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM teams WHERE league_id = $1 AND logo_url IS NULL ORDER BY name LIMIT 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "l1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderExprWindow(t *testing.T) {
	query, args, err := Select("id").
		From("fixtures").
		Where(Expr("start_time BETWEEN ? AND ?", "a", "b"), NotIn("status", []any{"FT", "CANC"})).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM fixtures WHERE start_time BETWEEN $1 AND $2 AND status NOT IN ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[0] != "a" || args[3] != "CANC" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderEmptyIn(t *testing.T) {
	query, _, err := Select("id").From("teams").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM teams WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestInsertBuilderConflictSuffix(t *testing.T) {
	query, args, err := InsertInto("leagues").
		Columns("id", "name").
		Values("l1", "Premier League").
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name RETURNING (xmax = 0)").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO leagues (id, name) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name RETURNING (xmax = 0)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "l1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("follows").
		Where(Eq("user_id", "u1"), Eq("team_id", "t1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM follows WHERE user_id = $1 AND team_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[1] != "t1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilderRequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("follows").ToSQL(); err == nil {
		t.Fatal("expected error for delete without where")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID   string `db:"id"`
		Name string `db:"name"`
		Skip string `db:"-"`
	}

	query, args, err := InsertModel("leagues", row{ID: "l1", Name: "La Liga", Skip: "x"}, "")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO leagues (id, name) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[1] != "La Liga" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
