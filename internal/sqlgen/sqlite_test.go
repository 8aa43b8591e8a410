package sqlgen

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGeneratedSQLRoundTrip(t *testing.T) {
	db := newTestDB(t)
	td := itemTableDef()

	if _, err := db.Exec(GenerateCreateSQL(td)); err != nil {
		t.Fatalf("executing generated CREATE TABLE: %v", err)
	}

	if _, err := db.Exec(GenerateInsertSQL(td), "Widget", 9.99, 1); err != nil {
		t.Fatalf("executing generated INSERT: %v", err)
	}

	var (
		name    string
		price   float64
		inStock int64
	)
	row := db.QueryRow("SELECT name, price_usd, in_stock FROM items")
	if err := row.Scan(&name, &price, &inStock); err != nil {
		t.Fatal(err)
	}
	if name != "Widget" || price != 9.99 || inStock != 1 {
		t.Errorf("got (%q, %v, %d), want (%q, %v, %d)", name, price, inStock, "Widget", 9.99, 1)
	}
}

func TestGeneratedSQLRoundTrip_Relationship(t *testing.T) {
	db := newTestDB(t)

	// The parent table is assumed to exist by convention; create a minimal one.
	if _, err := db.Exec("CREATE TABLE models (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT)"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO models (name) VALUES ('m1')"); err != nil {
		t.Fatal(err)
	}

	td := resultTableDef()
	if _, err := db.Exec(GenerateCreateSQL(td)); err != nil {
		t.Fatalf("executing generated CREATE TABLE: %v", err)
	}
	if _, err := db.Exec(GenerateInsertSQL(td), 1, 0.98, 0); err != nil {
		t.Fatalf("executing generated INSERT: %v", err)
	}

	var (
		modelID int64
		score   float64
	)
	row := db.QueryRow("SELECT model_id, score FROM results")
	if err := row.Scan(&modelID, &score); err != nil {
		t.Fatal(err)
	}
	if modelID != 1 || score != 0.98 {
		t.Errorf("got (%d, %v), want (1, 0.98)", modelID, score)
	}
}

func TestGeneratedSQL_ReservedWordColumns(t *testing.T) {
	db := newTestDB(t)
	td := &TableDef{
		Name:     "events",
		BaseName: "event",
		Columns: []Column{
			{Name: "group", SQLType: "TEXT", Path: []string{"Group"}, Kind: KindString},
			{Name: "order", SQLType: "INTEGER", Path: []string{"Order"}, Kind: KindInt},
		},
	}

	if _, err := db.Exec(GenerateCreateSQL(td)); err != nil {
		t.Fatalf("executing generated CREATE TABLE: %v", err)
	}
	if _, err := db.Exec(GenerateInsertSQL(td), "a", 2); err != nil {
		t.Fatalf("executing generated INSERT: %v", err)
	}
}

func TestGeneratedSQL_CreateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ddl := GenerateCreateSQL(itemTableDef())

	for i := 0; i < 2; i++ {
		if _, err := db.Exec(ddl); err != nil {
			t.Fatalf("execution %d: %v", i+1, err)
		}
	}
}
