// Package preset derives edited copies of a base dictionary table.
//
// A Plan names an output file and a set of word → replacement edits. Applying
// a plan copies the base table row by row, overwriting the replacement column
// of every row whose word is listed in the plan. The header and the number of
// rows never change.
package preset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"daobentools/pkg/dictionary"
)

// Plan is a named set of edits.
type Plan struct {
	Name    string
	Outfile string
	Edits   map[string]string
}

// Apply returns a copy of table with plan's edits applied.
//
// Row 0 is the header and is copied verbatim. A row is edited when its first
// column exactly equals an edit key and it has a second column to overwrite.
// table itself is left untouched.
func Apply(table [][]string, plan Plan) [][]string {
	out := make([][]string, len(table))
	for i, row := range table {
		cp := make([]string, len(row))
		copy(cp, row)
		if i > 0 && len(cp) > 1 {
			if rep, ok := plan.Edits[cp[0]]; ok {
				cp[1] = rep
			}
		}
		out[i] = cp
	}
	return out
}

// ReadTable reads every record of a CSV document, header included. Blank
// lines become empty rows and are written back as blank lines by WriteTable.
func ReadTable(r io.Reader) ([][]string, error) {
	records, err := dictionary.ReadRecords(r)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	return records, nil
}

// WriteTable writes table as CSV prefixed with a UTF-8 byte order mark.
func WriteTable(w io.Writer, table [][]string) error {
	tw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(tw)
	if err := cw.WriteAll(table); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return tw.Close()
}

// LoadEdits reads a headerless two-column edits file: one key,value pair per
// row. Rows with fewer than two columns or an empty key are skipped.
func LoadEdits(r io.Reader) (map[string]string, error) {
	cr := dictionary.NewCSVReader(r)
	edits := make(map[string]string)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read edits: %w", err)
		}
		if len(record) < 2 {
			continue
		}
		key := strings.TrimSpace(record[0])
		if key == "" {
			continue
		}
		edits[key] = strings.TrimSpace(record[1])
	}
	return edits, nil
}

// ParsePlanSpec parses a "name=path" command line value. The name is also
// used to derive the output file, dictionary_<name>.csv.
func ParsePlanSpec(spec string) (name, path string, err error) {
	name, path, ok := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	path = strings.TrimSpace(path)
	if !ok || name == "" || path == "" {
		return "", "", fmt.Errorf("invalid plan %q (expected name=path)", spec)
	}
	return name, path, nil
}

// OutfileFor returns the conventional output file name for a plan name.
func OutfileFor(name string) string {
	return "dictionary_" + name + ".csv"
}
