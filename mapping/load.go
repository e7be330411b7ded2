// File: load.go
// Role: TSV readers for mapping tables, plus the embedded default AMR table.

package mapping

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// columns is the fixed row width.
const columns = 4

// DefaultTable names the embedded AMR table.
const DefaultTable = "data/amr-reifications.tsv"

//go:embed data/*.tsv
var dataFS embed.FS

// ReadRows parses every row of a table. name is only used in errors.
//
// Steps:
//  1. Read records with a tab-separated csv.Reader; '#' lines are comments
//     and whitespace-only lines are skipped.
//  2. Reject rows without exactly four non-empty fields.
//  3. Strip surrounding blanks and a leading ':' from every field.
func ReadRows(r io.Reader, name string) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &IntegrityError{Path: name, Line: perr.Line, Msg: perr.Err.Error()}
			}
			return nil, fmt.Errorf("mapping: read %s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) != columns {
			return nil, &IntegrityError{Path: name, Line: line, Msg: fmt.Sprintf("want %d columns, got %d", columns, len(rec))}
		}
		for i, f := range rec {
			rec[i] = strings.TrimPrefix(strings.TrimSpace(f), ":")
			if rec[i] == "" {
				return nil, &IntegrityError{Path: name, Line: line, Msg: fmt.Sprintf("empty field %d", i+1)}
			}
		}
		rows = append(rows, Row{Relation: rec[0], Concept: rec[1], SourceRole: rec[2], TargetRole: rec[3], Line: line})
	}

	return rows, nil
}

// LoadReifications reads a reification table from r.
func LoadReifications(r io.Reader) (Reifications, error) {
	rows, err := ReadRows(r, "")
	if err != nil {
		return nil, err
	}

	return NewReifications(rows), nil
}

// LoadDereifications reads a dereification table from r.
func LoadDereifications(r io.Reader) (Dereifications, error) {
	rows, err := ReadRows(r, "")
	if err != nil {
		return nil, err
	}

	return NewDereifications(rows), nil
}

// LoadReificationsFile reads a reification table from path.
func LoadReificationsFile(path string) (Reifications, error) {
	rows, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return NewReifications(rows), nil
}

// LoadDereificationsFile reads a dereification table from path.
func LoadDereificationsFile(path string) (Dereifications, error) {
	rows, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return NewDereifications(rows), nil
}

func readFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapping: open table: %w", err)
	}
	defer f.Close()

	return ReadRows(f, path)
}

// DefaultRows returns the rows of the embedded AMR table.
func DefaultRows() []Row {
	f, err := dataFS.Open(DefaultTable)
	if err != nil {
		panic(fmt.Sprintf("mapping: embedded table missing: %v", err))
	}
	defer f.Close()

	rows, err := ReadRows(f, DefaultTable)
	if err != nil {
		panic(fmt.Sprintf("mapping: embedded table corrupt: %v", err))
	}

	return rows
}

// DefaultReifications returns the embedded AMR reification table.
func DefaultReifications() Reifications {
	return NewReifications(DefaultRows())
}

// DefaultDereifications returns the embedded AMR table indexed for collapse.
func DefaultDereifications() Dereifications {
	return NewDereifications(DefaultRows())
}
