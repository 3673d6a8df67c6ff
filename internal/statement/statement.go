package statement

import (
	"strings"

	"github.com/theezequiel42/water-tracker/internal/currency"
	"github.com/theezequiel42/water-tracker/internal/month"
)

// Unavailable is shown for values that are missing or cannot be read.
const Unavailable = "Indisponível"

type ConsumptionStatus int

const (
	ConsumptionUnavailable ConsumptionStatus = iota
	ConsumptionBelowOne
	ConsumptionMeasured
)

func (s ConsumptionStatus) String() string {
	switch s {
	case ConsumptionBelowOne:
		return "below_one"
	case ConsumptionMeasured:
		return "measured"
	default:
		return "unavailable"
	}
}

// Statement is one person's figures for one month.
type Statement struct {
	Name        string
	Month       month.Descriptor
	Unit        string
	Consumption currency.Value
	Amount      currency.Value

	// Overdue is only meaningful when HasOverdue is set.
	Overdue    currency.Value
	HasOverdue bool
}

// ConsumptionStatus classifies the reading: negative or unreadable values
// are unavailable and zero means less than one unit was used.
func (s *Statement) ConsumptionStatus() ConsumptionStatus {
	v, err := currency.ParseQuantity(s.Consumption)
	switch {
	case err != nil || v < 0:
		return ConsumptionUnavailable
	case v == 0:
		return ConsumptionBelowOne
	default:
		return ConsumptionMeasured
	}
}

func (s *Statement) ConsumptionText() string {
	switch s.ConsumptionStatus() {
	case ConsumptionUnavailable:
		return Unavailable
	case ConsumptionBelowOne:
		return "Inferior a 1 " + s.Unit
	default:
		return strings.TrimSpace(s.Consumption.String()) + " " + s.Unit
	}
}

func (s *Statement) AmountText() string {
	return moneyText(s.Amount)
}

func (s *Statement) OverdueText() string {
	if !s.HasOverdue {
		return Unavailable
	}

	return moneyText(s.Overdue)
}

// moneyText shows an amount as written in the sheet, or Unavailable when the
// cell is empty or is not a number.
func moneyText(v currency.Value) string {
	if v.IsEmpty() {
		return Unavailable
	}

	if _, err := currency.ParseStrict(v); err != nil {
		return Unavailable
	}

	return currency.Display(v)
}

// ChartPoint is the billed amount of one month, zero when unknown.
type ChartPoint struct {
	Key    string
	Label  string
	Amount float64
}
