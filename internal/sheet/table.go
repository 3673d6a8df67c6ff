package sheet

import (
	"errors"
	"strings"

	"github.com/theezequiel42/water-tracker/internal/currency"
)

var ErrEmpty = errors.New("sheet has no header row")

// Table is a rectangular view of a sheet: a trimmed header row and the
// data rows below it.
type Table struct {
	Headers []string
	Rows    [][]currency.Value

	index map[string]int
}

// NewTable trims the headers and indexes them. When a header repeats, the
// first column with that name is the one looked up by name.
func NewTable(headers []string, rows [][]currency.Value) *Table {
	t := &Table{
		Headers: make([]string, len(headers)),
		Rows:    rows,
		index:   make(map[string]int, len(headers)),
	}

	for i, h := range headers {
		h = strings.TrimSpace(h)
		t.Headers[i] = h

		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}

	return t
}

// fromStrings builds a table from text records, the first being the header.
// Empty cells become absent values.
func fromStrings(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	rows := make([][]currency.Value, 0, len(records)-1)

	for _, rec := range records[1:] {
		if blank(rec) {
			continue
		}

		row := make([]currency.Value, len(rec))
		for i, cell := range rec {
			row[i] = textCell(cell)
		}

		rows = append(rows, row)
	}

	return NewTable(records[0], rows), nil
}

func textCell(s string) currency.Value {
	if s == "" {
		return currency.Absent()
	}

	return currency.Text(s)
}

func blank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func (t *Table) Len() int { return len(t.Rows) }

func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Index returns the position of col in the header row.
func (t *Table) Index(col string) (int, bool) {
	i, ok := t.index[col]
	return i, ok
}

// Cell returns the value of col in row, absent when either does not exist.
func (t *Table) Cell(row int, col string) currency.Value {
	idx, ok := t.index[col]
	if !ok || row < 0 || row >= len(t.Rows) {
		return currency.Absent()
	}

	r := t.Rows[row]
	if idx >= len(r) {
		return currency.Absent()
	}

	return r[idx]
}

// RowsWhere returns the indexes of rows whose col cell equals value.
func (t *Table) RowsWhere(col, value string) []int {
	var out []int

	for i := range t.Rows {
		v := t.Cell(i, col)
		if v.Kind() == currency.KindAbsent {
			continue
		}

		if v.String() == value {
			out = append(out, i)
		}
	}

	return out
}

// Distinct returns the non-empty values of col in first-seen order.
func (t *Table) Distinct(col string) []string {
	seen := make(map[string]bool)

	var out []string

	for i := range t.Rows {
		v := t.Cell(i, col)
		if v.IsEmpty() {
			continue
		}

		s := v.String()
		if seen[s] {
			continue
		}

		seen[s] = true
		out = append(out, s)
	}

	return out
}
