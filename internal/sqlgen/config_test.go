package sqlgen

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRelationsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relationships.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultRelationships(t *testing.T) {
	rels := DefaultRelationships()

	rel, ok := rels["results"]
	if !ok {
		t.Fatal("missing built-in results relationship")
	}
	if rel.Parent != "models" || rel.Column != "model_id" {
		t.Errorf("got %+v, want parent models, column model_id", rel)
	}
}

func TestLoadRelationships(t *testing.T) {
	path := writeRelationsFile(t, `
relationships:
  measurements:
    parent: sensors
    column: sensor_id
`)

	rels, err := LoadRelationships(path)
	if err != nil {
		t.Fatal(err)
	}

	rel, ok := rels["measurements"]
	if !ok {
		t.Fatal("missing measurements relationship")
	}
	if rel.Parent != "sensors" || rel.Column != "sensor_id" {
		t.Errorf("got %+v, want parent sensors, column sensor_id", rel)
	}

	// Loaded declarations replace the defaults.
	if _, ok := rels["results"]; ok {
		t.Error("built-in default should not survive an explicit config")
	}
}

func TestLoadRelationships_MissingFile(t *testing.T) {
	_, err := LoadRelationships(filepath.Join(t.TempDir(), "absent.yml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRelationships_InvalidYAML(t *testing.T) {
	path := writeRelationsFile(t, "relationships: [oops")
	_, err := LoadRelationships(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadRelationships_Empty(t *testing.T) {
	path := writeRelationsFile(t, "{}")
	_, err := LoadRelationships(path)
	if err == nil {
		t.Fatal("expected error for empty config")
	}
}

func TestLoadRelationships_IncompleteDeclaration(t *testing.T) {
	path := writeRelationsFile(t, `
relationships:
  results:
    parent: models
`)
	_, err := LoadRelationships(path)
	if err == nil {
		t.Fatal("expected error for declaration without a column")
	}
}
