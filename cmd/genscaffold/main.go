// Command genscaffold generates SQLite CREATE TABLE and INSERT scaffold
// statements from a sample JSON document. The document's first top-level
// key names the record; its nested value is flattened into typed columns.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/andrewkroh/go-json-scaffold/internal/sqlgen"
)

func main() {
	cfg := sqlgen.Config{}

	flag.StringVar(&cfg.RelationsFile, "relations", "", "Path to relationships.yml declaring parent references (default: built-in results->models)")
	flag.StringVar(&cfg.GoOutFile, "go-out", "", "Output path for a generated Go scaffold file (optional)")
	flag.StringVar(&cfg.PackageName, "package", "scaffold", "Go package name for the generated scaffold file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <path_to_json_file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	cfg.InputPath = flag.Arg(0)

	if err := sqlgen.Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(cfg.InputPath, err))
		os.Exit(1)
	}
}

// errorMessage maps an error to its reporting class: unreadable input,
// malformed JSON, an invalid document root, or a generic failure.
func errorMessage(input string, err error) string {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("Error: the file %q was not found.", input)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Sprintf("Error: the file %q contains invalid JSON.", input)
	case errors.Is(err, sqlgen.ErrInvalidRoot):
		return fmt.Sprintf("Error processing JSON data: %v", err)
	default:
		return fmt.Sprintf("An unexpected error occurred: %v", err)
	}
}
