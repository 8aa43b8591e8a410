package sqlgen

import (
	"fmt"
	"strings"
)

// TableDef describes the single table generated from one sample document.
type TableDef struct {
	Name     string        // derived table name (lowercased root key + "s")
	BaseName string        // symbolic record name used in access expressions
	Columns  []Column      // flattened leaf columns, in document order
	Rel      *Relationship // optional parent reference
}

// GenerateCreateSQL returns the CREATE TABLE statement for the table:
// a surrogate autoincrement primary key, the parent reference column when a
// relationship is declared, one column per flattened leaf, a creation
// timestamp, and the foreign key constraint for the relationship.
func GenerateCreateSQL(td *TableDef) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", td.Name)
	b.WriteString("    id INTEGER PRIMARY KEY AUTOINCREMENT,\n")

	if td.Rel != nil {
		fmt.Fprintf(&b, "    %s INTEGER NOT NULL,\n", td.Rel.Column)
	}

	for _, col := range td.Columns {
		fmt.Fprintf(&b, "    %s %s,\n", quoteName(col.Name), col.SQLType)
	}

	b.WriteString("    created_at DATETIME DEFAULT CURRENT_TIMESTAMP")

	if td.Rel != nil {
		fmt.Fprintf(&b, ",\n    FOREIGN KEY (%s) REFERENCES %s (id)", td.Rel.Column, td.Rel.Parent)
	}

	b.WriteString("\n)")
	return b.String()
}
