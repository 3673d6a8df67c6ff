package statement

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/schollz/closestmatch"

	"github.com/theezequiel42/water-tracker/internal/currency"
	"github.com/theezequiel42/water-tracker/internal/month"
	"github.com/theezequiel42/water-tracker/internal/normalize"
	"github.com/theezequiel42/water-tracker/internal/sheet"
)

// Ledger is a loaded sheet with its monthly columns resolved.
type Ledger struct {
	table   *sheet.Table
	layout  Layout
	months  []month.Descriptor
	overdue string
}

// NewLedger checks the sheet against the layout. A missing identity column
// or the absence of any complete month is a configuration error; a missing
// overdue column is not.
func NewLedger(table *sheet.Table, layout Layout) (*Ledger, error) {
	if !table.Has(layout.NameColumn) {
		return nil, fmt.Errorf("%w: %q", ErrMissingNameColumn, layout.NameColumn)
	}

	months := layout.Markers.Resolve(table.Headers)
	if len(months) == 0 {
		return nil, ErrNoMonths
	}

	l := &Ledger{
		table:  table,
		layout: layout,
		months: months,
	}

	prefix := layout.Markers.OverduePrefix()
	for _, h := range table.Headers {
		if normalize.HasPrefix(h, prefix) {
			l.overdue = h
			break
		}
	}

	if l.overdue == "" {
		slog.Warn("overdue column not found, overdue amounts will not be shown", "prefix", prefix)
	}

	return l, nil
}

// Names returns the distinct people listed in the sheet.
func (l *Ledger) Names() []string {
	return l.table.Distinct(l.layout.NameColumn)
}

func (l *Ledger) Months() []month.Descriptor {
	return l.months
}

func (l *Ledger) HasOverdue() bool {
	return l.overdue != ""
}

func (l *Ledger) OverdueColumn() string {
	return l.overdue
}

func (l *Ledger) Layout() Layout {
	return l.layout
}

// DefaultMonth picks the month shown first: the one before now, or the
// latest resolved month when the sheet has no column for it.
func (l *Ledger) DefaultMonth(now time.Time) month.Descriptor {
	key, _ := month.PickDefault(l.months, int(now.Month()), now.Year())

	d, _ := month.Find(l.months, key)

	return d
}

func (l *Ledger) Month(key string) (month.Descriptor, bool) {
	return month.Find(l.months, key)
}

// Statement returns the figures of name for the month key. When a name
// appears on several rows the first one is used.
func (l *Ledger) Statement(name, key string) (*Statement, error) {
	d, ok := l.Month(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMonth, key)
	}

	rows := l.table.RowsWhere(l.layout.NameColumn, name)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, name, d.Label)
	}

	row := rows[0]

	s := &Statement{
		Name:        name,
		Month:       d,
		Unit:        l.layout.ConsumptionUnit,
		Consumption: l.table.Cell(row, d.ConsumptionColumn),
		Amount:      l.table.Cell(row, d.AmountColumn),
		HasOverdue:  l.HasOverdue(),
	}

	if s.HasOverdue {
		s.Overdue = l.table.Cell(row, l.overdue)
	}

	return s, nil
}

// Chart returns the billed amount of name for every month, in month order.
func (l *Ledger) Chart(name string) []ChartPoint {
	rows := l.table.RowsWhere(l.layout.NameColumn, name)

	points := make([]ChartPoint, 0, len(l.months))

	for _, d := range l.months {
		p := ChartPoint{Key: d.Key, Label: d.Label}

		if len(rows) > 0 {
			p.Amount = currency.Parse(l.table.Cell(rows[0], d.AmountColumn))
		}

		points = append(points, p)
	}

	return points
}

// HasName reports whether name has at least one row in the sheet.
func (l *Ledger) HasName(name string) bool {
	return len(l.table.RowsWhere(l.layout.NameColumn, name)) > 0
}

// Suggest returns the listed name closest to name, compared without accents
// or case, or "" when nothing is close.
func (l *Ledger) Suggest(name string) string {
	names := l.Names()
	if len(names) == 0 {
		return ""
	}

	byKey := make(map[string]string, len(names))
	keys := make([]string, 0, len(names))

	for _, n := range names {
		k := normalize.Text(n)
		if _, dup := byKey[k]; dup {
			continue
		}

		byKey[k] = n
		keys = append(keys, k)
	}

	cm := closestmatch.New(keys, []int{2, 3})

	return byKey[cm.Closest(normalize.Text(name))]
}
