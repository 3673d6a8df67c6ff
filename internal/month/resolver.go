package month

import (
	"cmp"
	"slices"
	"strings"

	"github.com/theezequiel42/water-tracker/internal/normalize"
)

// Resolve discovers the months of a header row using DefaultMarkers.
func Resolve(headers []string) []Descriptor {
	return DefaultMarkers.Resolve(headers)
}

// Resolve groups consumption and amount headers by their normalized label
// and returns one descriptor per label that has both columns, ordered by
// (year, month, label) with unresolved parts sorting as 0. Headers matching
// a single role are dropped. When two headers share a key and role, the
// later one wins.
func (mk Markers) Resolve(headers []string) []Descriptor {
	p := mk.compile()

	groups := make(map[string]*Descriptor)

	var order []string

	for _, raw := range headers {
		header := strings.TrimSpace(raw)
		matches := p.match(header)

		for _, role := range []Role{RoleConsumption, RoleAmount} {
			label, ok := matches[role]
			if !ok {
				continue
			}

			key := normalize.Text(label)

			d, found := groups[key]
			if !found {
				d = &Descriptor{Key: key, Label: label}
				groups[key] = d
				order = append(order, key)
			}

			switch role {
			case RoleConsumption:
				d.ConsumptionColumn = header
			case RoleAmount:
				d.AmountColumn = header
			}
		}
	}

	months := make([]Descriptor, 0, len(order))

	for _, key := range order {
		d := groups[key]
		if d.ConsumptionColumn == "" || d.AmountColumn == "" {
			continue
		}

		d.Month, d.Year = monthAndYear(d.Label)
		months = append(months, *d)
	}

	slices.SortStableFunc(months, compareDescriptors)

	return months
}

func compareDescriptors(a, b Descriptor) int {
	if c := cmp.Compare(valueOrZero(a.Year), valueOrZero(b.Year)); c != 0 {
		return c
	}

	if c := cmp.Compare(valueOrZero(a.Month), valueOrZero(b.Month)); c != 0 {
		return c
	}

	return strings.Compare(a.Label, b.Label)
}

func valueOrZero(p *int) int {
	if p == nil {
		return 0
	}

	return *p
}

// PickDefault returns the key of the month preceding (currentMonth,
// currentYear). A descriptor without a year matches any year. When no
// descriptor matches, the last one is used; ok is false only for an empty
// slice.
func PickDefault(months []Descriptor, currentMonth, currentYear int) (string, bool) {
	if len(months) == 0 {
		return "", false
	}

	targetMonth, targetYear := currentMonth-1, currentYear
	if currentMonth == 1 {
		targetMonth, targetYear = 12, currentYear-1
	}

	for _, d := range months {
		if d.Month == nil || *d.Month != targetMonth {
			continue
		}

		if d.Year == nil || *d.Year == targetYear {
			return d.Key, true
		}
	}

	return months[len(months)-1].Key, true
}

// Find returns the descriptor whose key matches key once normalized, so a
// label typed by a user finds its month too.
func Find(months []Descriptor, key string) (Descriptor, bool) {
	want := normalize.Text(key)

	for _, d := range months {
		if d.Key == want {
			return d, true
		}
	}

	return Descriptor{}, false
}
