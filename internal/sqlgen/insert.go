package sqlgen

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateInsertSQL returns the INSERT statement for the table. Placeholders
// are numbered sequentially from ?1 with no gaps; when a relationship is
// declared its column takes slot 1 and the leaf columns shift by one.
func GenerateInsertSQL(td *TableDef) string {
	var cols []string
	if td.Rel != nil {
		cols = append(cols, td.Rel.Column)
	}
	for _, col := range td.Columns {
		cols = append(cols, quoteName(col.Name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (\n    ", td.Name)
	b.WriteString(strings.Join(cols, ",\n    "))
	b.WriteString("\n) VALUES (\n    ")

	placeholders := make([]string, len(cols))
	for i := range placeholders {
		placeholders[i] = "?" + strconv.Itoa(i+1)
	}
	b.WriteString(strings.Join(placeholders, ", "))

	b.WriteString("\n)")
	return b.String()
}

// AccessExpr renders the typed helper call that extracts one column's value
// from the decoded record, e.g. getFloat(item, "Price (USD)"). The path
// arguments are the original unsanitized keys from the record root to the
// leaf.
func AccessExpr(col Column, baseName string) string {
	fn := accessFunc(col.Kind)
	args := make([]string, 0, len(col.Path)+1)
	args = append(args, baseName)
	for _, key := range col.Path {
		args = append(args, strconv.Quote(key))
	}
	return fn + "(" + strings.Join(args, ", ") + ")"
}

// accessFunc names the typed getter helper for an access-expression kind.
func accessFunc(kind ColumnKind) string {
	switch kind {
	case KindFloat:
		return "getFloat"
	case KindBool:
		return "getBool"
	case KindInt:
		return "getInt"
	default:
		return "getString"
	}
}

// InsertArgs lists the INSERT parameters in placeholder order: the parent
// reference value first when a relationship is declared, then one access
// expression per column.
func InsertArgs(td *TableDef) []string {
	var args []string
	if td.Rel != nil {
		args = append(args, columnToArgName(td.Rel.Column))
	}
	for _, col := range td.Columns {
		args = append(args, AccessExpr(col, td.BaseName))
	}
	return args
}

// GenerateScaffold returns the two statement fragments as database/sql call
// snippets ready to paste into a persistence layer: the CREATE TABLE
// execution and the INSERT execution with its parameter list.
func GenerateScaffold(td *TableDef) (create, insert string) {
	var b strings.Builder
	b.WriteString("_, err := db.ExecContext(ctx,\n    `")
	b.WriteString(GenerateCreateSQL(td))
	b.WriteString("`,\n)")
	create = b.String()

	b.Reset()
	b.WriteString("_, err := tx.ExecContext(ctx,\n    `")
	b.WriteString(GenerateInsertSQL(td))
	b.WriteString("`,\n")
	for _, arg := range InsertArgs(td) {
		b.WriteString("    ")
		b.WriteString(arg)
		b.WriteString(",\n")
	}
	b.WriteString(")")
	return create, b.String()
}
