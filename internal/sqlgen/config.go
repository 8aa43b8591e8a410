package sqlgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RelationshipsConfig holds the relationship declarations loaded from a
// relationships.yml file.
type RelationshipsConfig struct {
	Relationships map[string]Relationship `yaml:"relationships"`
}

// Relationship declares that a generated table carries a reference to a
// parent table. The column is injected after the primary key in the CREATE
// TABLE statement and occupies the first placeholder of the INSERT.
type Relationship struct {
	// Parent is the referenced table name. The foreign key targets its
	// id column.
	Parent string `yaml:"parent"`

	// Column is the foreign key column name added to the child table.
	Column string `yaml:"column"`
}

// DefaultRelationships returns the built-in declaration used when no config
// file is given: a results table references models via model_id.
func DefaultRelationships() map[string]Relationship {
	return map[string]Relationship{
		"results": {Parent: "models", Column: "model_id"},
	}
}

// LoadRelationships reads and parses a relationships.yml file. The loaded
// declarations replace the defaults entirely.
func LoadRelationships(path string) (map[string]Relationship, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading relationships config: %w", err)
	}

	var cfg RelationshipsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing relationships config: %w", err)
	}

	if cfg.Relationships == nil {
		return nil, fmt.Errorf("no relationships defined in %s", path)
	}

	for name, rel := range cfg.Relationships {
		if rel.Parent == "" || rel.Column == "" {
			return nil, fmt.Errorf("relationship %s: parent and column are required", name)
		}
	}

	return cfg.Relationships, nil
}
