package sqlgen

import "strings"

// keyReplacer is the fixed substitution table applied to every path segment
// before lowercasing. The replacements keep sample keys like "Price (USD)"
// or "Miles/Gallon" usable as SQL column name segments.
var keyReplacer = strings.NewReplacer(
	" ", "_",
	"(", "",
	"#", "num",
	")", "",
	"%", "percent",
	".", "_",
	"/", "_per_",
)

// sanitizeKey converts one original JSON key into a SQL column name segment.
// It is idempotent: sanitizing an already-sanitized segment is a no-op.
func sanitizeKey(key string) string {
	return strings.ToLower(keyReplacer.Replace(key))
}

// TableName derives the SQL table name from the document's top-level key:
// lowercased with a trailing "s". The pluralization is deliberately naive;
// irregular plurals are not handled.
func TableName(rootKey string) string {
	return strings.ToLower(rootKey) + "s"
}

// BaseName derives the symbolic record name used in access expressions
// (e.g. "item" in getString(item, "Name")).
func BaseName(rootKey string) string {
	return sanitizeKey(rootKey)
}

// sqliteReservedWords contains SQL keywords that must be quoted when used
// as column names.
var sqliteReservedWords = map[string]bool{
	"abort": true, "action": true, "add": true, "after": true, "all": true,
	"alter": true, "analyze": true, "and": true, "as": true, "asc": true,
	"attach": true, "autoincrement": true, "before": true, "begin": true,
	"between": true, "by": true, "cascade": true, "case": true, "cast": true,
	"check": true, "collate": true, "column": true, "commit": true,
	"conflict": true, "constraint": true, "create": true, "cross": true,
	"current": true, "current_date": true, "current_time": true,
	"current_timestamp": true, "database": true, "default": true,
	"deferrable": true, "deferred": true, "delete": true, "desc": true,
	"detach": true, "distinct": true, "do": true, "drop": true, "each": true,
	"else": true, "end": true, "escape": true, "except": true, "exclude": true,
	"exclusive": true, "exists": true, "explain": true, "fail": true,
	"filter": true, "first": true, "following": true, "for": true,
	"foreign": true, "from": true, "full": true, "glob": true, "group": true,
	"groups": true, "having": true, "if": true, "ignore": true,
	"immediate": true, "in": true, "index": true, "indexed": true,
	"initially": true, "inner": true, "insert": true, "instead": true,
	"intersect": true, "into": true, "is": true, "isnull": true, "join": true,
	"key": true, "last": true, "left": true, "like": true, "limit": true,
	"match": true, "natural": true, "no": true, "not": true, "nothing": true,
	"notnull": true, "null": true, "nulls": true, "of": true, "offset": true,
	"on": true, "or": true, "order": true, "others": true, "outer": true,
	"over": true, "partition": true, "plan": true, "pragma": true,
	"preceding": true, "primary": true, "query": true, "raise": true,
	"range": true, "recursive": true, "references": true, "regexp": true,
	"reindex": true, "release": true, "rename": true, "replace": true,
	"restrict": true, "right": true, "rollback": true, "row": true,
	"rows": true, "savepoint": true, "select": true, "set": true,
	"table": true, "temp": true, "temporary": true, "then": true, "ties": true,
	"to": true, "transaction": true, "trigger": true, "unbounded": true,
	"union": true, "unique": true, "update": true, "using": true,
	"vacuum": true, "values": true, "view": true, "virtual": true,
	"when": true, "where": true, "window": true, "with": true, "without": true,
}

// quoteName returns the column name quoted with double quotes if it's a
// reserved SQL word, otherwise returns it unchanged.
func quoteName(name string) string {
	if sqliteReservedWords[strings.ToLower(name)] {
		return `"` + name + `"`
	}
	return name
}

// tableNameToGoName converts a SQL table name (e.g. "sample_events") to a
// singular Go identifier (e.g. "SampleEvent") for the emitted scaffold code.
func tableNameToGoName(tableName string) string {
	tableName = strings.TrimSuffix(tableName, "s")
	parts := strings.Split(tableName, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		b.WriteString(string(runes))
	}
	return b.String()
}

// columnToArgName converts a SQL column name (e.g. "model_id") to a Go
// argument name (e.g. "modelID").
func columnToArgName(col string) string {
	parts := strings.Split(col, "_")
	var b strings.Builder
	for i, part := range parts {
		switch {
		case part == "":
			continue
		case i == 0:
			b.WriteString(part)
		case part == "id":
			b.WriteString("ID")
		default:
			runes := []rune(part)
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
			b.WriteString(string(runes))
		}
	}
	return b.String()
}
