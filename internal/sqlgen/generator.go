package sqlgen

import (
	"fmt"
	"io"
	"os"
)

// Config holds all configuration for a scaffold generation run.
type Config struct {
	InputPath     string    // Path to the sample JSON document (required)
	RelationsFile string    // Path to relationships.yml (optional; empty uses the built-in default)
	GoOutFile     string    // Output path for the generated Go scaffold file (optional)
	PackageName   string    // Go package name for the scaffold file
	Out           io.Writer // Statement output; defaults to os.Stdout
}

// Run executes the full scaffold generation pipeline.
func Run(cfg Config) error {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	// 1. Load relationship declarations.
	rels := DefaultRelationships()
	if cfg.RelationsFile != "" {
		var err error
		rels, err = LoadRelationships(cfg.RelationsFile)
		if err != nil {
			return err
		}
	}

	// 2. Read and decode the sample document.
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	doc, err := DecodeDocument(f)
	if err != nil {
		return err
	}

	// 3. Derive the table from the first top-level key.
	root := doc[0]
	td, err := NewTableDef(root.Key, root.Value, rels)
	if err != nil {
		return err
	}

	// 4. Render the two statement fragments.
	create, insert := GenerateScaffold(td)
	printBanner(out, "TABLE CREATION")
	fmt.Fprintf(out, "%s\n\n", create)
	printBanner(out, "INSERTION")
	fmt.Fprintf(out, "%s\n\n", insert)
	printBanner(out, "END OF SQL STATEMENTS")

	// 5. Optionally emit the Go scaffold file.
	if cfg.GoOutFile != "" {
		if err := EmitScaffoldGo(cfg.PackageName, cfg.GoOutFile, td); err != nil {
			return fmt.Errorf("writing Go scaffold: %w", err)
		}
	}

	return nil
}

// NewTableDef flattens the record under the document's top-level key into a
// table definition, attaching the relationship declared for the derived
// table name, if any.
func NewTableDef(rootKey string, value any, rels map[string]Relationship) (*TableDef, error) {
	rec, err := recordShape(rootKey, value)
	if err != nil {
		return nil, err
	}

	cols, err := Flatten(rec)
	if err != nil {
		return nil, err
	}

	td := &TableDef{
		Name:     TableName(rootKey),
		BaseName: BaseName(rootKey),
		Columns:  cols,
	}
	if rel, ok := rels[td.Name]; ok {
		td.Rel = &rel
	}
	return td, nil
}

// recordShape returns the object to flatten. The value under the top-level
// key may be the record itself or a non-empty list of records, in which case
// the first element supplies the shape.
func recordShape(rootKey string, value any) (Object, error) {
	switch v := value.(type) {
	case Object:
		return v, nil
	case []any:
		if len(v) == 0 {
			return nil, fmt.Errorf("record list under %q is empty", rootKey)
		}
		if obj, ok := v[0].(Object); ok {
			return obj, nil
		}
	}
	return nil, fmt.Errorf("value under %q must be an object or a list of objects", rootKey)
}

func printBanner(w io.Writer, title string) {
	fmt.Fprintf(w, "//==============\n//%s\n//==============\n\n", title)
}
