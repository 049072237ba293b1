// Package dictionary loads daoben conversion tables from CSV.
//
// A dictionary file is a UTF-8 CSV document whose first record is a header
// (always discarded) followed by records of the form:
//
//	<daoben word>,<replacement>[,<gloss>]
//
// Records with fewer than two columns or an empty first column are ignored.
// When a word appears more than once, the last record wins.
package dictionary

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Table holds the word → replacement mapping and the parallel
// word → gloss annotations.
//
// A Table is read-only once loaded.
type Table struct {
	Mapping map[string]string
	Glosses map[string]string

	// order keeps keys in first-seen order for deterministic listings.
	order []string
}

// Entry is a single dictionary row as exposed by Search.
type Entry struct {
	Word        string
	Replacement string
	Gloss       string
}

// New returns an empty table.
func New() *Table {
	return &Table{
		Mapping: make(map[string]string),
		Glosses: make(map[string]string),
	}
}

// NewCSVReader returns a csv.Reader over r that tolerates a leading UTF-8
// BOM, records of varying width and stray quotes.
func NewCSVReader(r io.Reader) *csv.Reader {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// ReadRecords reads every record of a CSV document. Unlike a bare
// csv.Reader, blank lines are kept as empty records so that row numbers
// match the physical lines of the file.
func ReadRecords(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var records [][]string
	var offset int64
	consumed := 0 // newlines before the current reader position
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		// Lines skipped between the previous record and this one were blank.
		start, _ := cr.FieldPos(0)
		for l := consumed + 1; l < start; l++ {
			records = append(records, []string{})
		}
		records = append(records, record)

		next := cr.InputOffset()
		consumed += bytes.Count(data[offset:next], []byte("\n"))
		offset = next
	}

	// Whatever follows the last record is blank lines only.
	for n := bytes.Count(data[offset:], []byte("\n")); n > 0; n-- {
		records = append(records, []string{})
	}
	return records, nil
}

// Load reads a dictionary CSV document from r. The first physical line is
// the header, even when it is blank.
func Load(r io.Reader) (*Table, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	t := New()
	for i, record := range records {
		if i == 0 {
			continue
		}
		t.addRecord(record)
	}
	return t, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (t *Table) addRecord(record []string) {
	if len(record) < 2 {
		return
	}
	word := strings.TrimSpace(record[0])
	if word == "" {
		return
	}
	gloss := ""
	if len(record) >= 3 {
		gloss = strings.TrimSpace(record[2])
	}
	t.Set(word, strings.TrimSpace(record[1]), gloss)
}

// Set registers word with its replacement and gloss, overwriting any
// previous entry.
func (t *Table) Set(word, replacement, gloss string) {
	if _, ok := t.Mapping[word]; !ok {
		t.order = append(t.order, word)
	}
	t.Mapping[word] = replacement
	t.Glosses[word] = gloss
}

// Lookup returns the replacement registered for word.
func (t *Table) Lookup(word string) (string, bool) {
	s, ok := t.Mapping[word]
	return s, ok
}

// Gloss returns the annotation for word, or "" when there is none.
func (t *Table) Gloss(word string) string {
	return t.Glosses[word]
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	return len(t.Mapping)
}

// Keys returns the words in the order they first appeared.
func (t *Table) Keys() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Search returns the entries whose word, replacement or gloss contains
// query. An empty (or blank) query matches every entry.
func (t *Table) Search(query string) []Entry {
	q := strings.TrimSpace(query)
	var out []Entry
	for _, word := range t.order {
		e := Entry{Word: word, Replacement: t.Mapping[word], Gloss: t.Glosses[word]}
		if q == "" ||
			strings.Contains(e.Word, q) ||
			strings.Contains(e.Replacement, q) ||
			strings.Contains(e.Gloss, q) {
			out = append(out, e)
		}
	}
	return out
}

// WriteText writes entries to w, one per line.
//
// Format:
//
//	<word>\t<replacement>\t<gloss>
func WriteText(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		line := fmt.Sprintf("%s\t%s\t%s\n", e.Word, e.Replacement, e.Gloss)
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
