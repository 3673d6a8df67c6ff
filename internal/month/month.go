package month

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/theezequiel42/water-tracker/internal/normalize"
)

// Role identifies which figure of a month a header carries.
type Role int

const (
	RoleConsumption Role = iota
	RoleAmount
)

func (r Role) String() string {
	switch r {
	case RoleConsumption:
		return "consumption"
	case RoleAmount:
		return "amount"
	}

	return "unknown"
}

// Descriptor pairs the consumption and amount columns of one month.
type Descriptor struct {
	Key               string // normalized label, stable identity
	Label             string // label as written in the first matching header
	ConsumptionColumn string
	AmountColumn      string
	Month             *int // 1-12, nil when no month name was recognized
	Year              *int // nil when the label carries no 4-digit year
}

func (d Descriptor) String() string {
	return d.Label
}

// Markers are the header words that introduce each role.
type Markers struct {
	Consumption string `yaml:"consumption_marker"`
	Amount      string `yaml:"amount_marker"`
	// Overdue follows the amount marker in the overdue balance column,
	// which must never be taken for a month.
	Overdue string `yaml:"overdue_qualifier"`
}

// DefaultMarkers matches headers such as "Consumo Janeiro 2025 (m³)",
// "Valor Janeiro 2025 (R$)" and "Valor em Atraso (R$)".
var DefaultMarkers = Markers{
	Consumption: "Consumo",
	Amount:      "Valor",
	Overdue:     "em atraso",
}

// OverduePrefix is the normalized-text prefix of the overdue balance column.
func (mk Markers) OverduePrefix() string {
	return mk.Amount + " " + mk.Overdue
}

// space matches a run of whitespace, non-breaking spaces included.
const space = `[\s\p{Zs}]+`

// patterns holds the compiled header matchers for a set of markers.
type patterns struct {
	consumption *regexp.Regexp
	amount      *regexp.Regexp
	overdue     *regexp.Regexp
}

func (mk Markers) compile() patterns {
	return patterns{
		consumption: labelPattern(mk.Consumption),
		amount:      labelPattern(mk.Amount),
		overdue:     regexp.MustCompile(`(?i)^` + wordsPattern(mk.Amount) + space + wordsPattern(mk.Overdue)),
	}
}

// labelPattern captures the text between the marker and a parenthetical
// unit suffix or the end of the header.
func labelPattern(marker string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^` + wordsPattern(marker) + space + `(.*?)[\s\p{Zs}]*(?:\(|$)`)
}

// wordsPattern quotes each word of s and joins them with flexible whitespace.
func wordsPattern(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}

	return strings.Join(words, space)
}

// match tests a trimmed header against both roles. The overdue guard runs
// before the generic amount match.
func (p patterns) match(header string) map[Role]string {
	found := make(map[Role]string, 2)

	if m := p.consumption.FindStringSubmatch(header); m != nil {
		found[RoleConsumption] = strings.TrimSpace(m[1])
	}

	if p.overdue.MatchString(header) {
		return found
	}

	if m := p.amount.FindStringSubmatch(header); m != nil {
		found[RoleAmount] = strings.TrimSpace(m[1])
	}

	return found
}

// Validate reports markers that would make every header match or none.
func (mk Markers) Validate() error {
	if strings.TrimSpace(mk.Consumption) == "" {
		return fmt.Errorf("consumption marker is empty")
	}

	if strings.TrimSpace(mk.Amount) == "" {
		return fmt.Errorf("amount marker is empty")
	}

	if strings.TrimSpace(mk.Overdue) == "" {
		return fmt.Errorf("overdue qualifier is empty")
	}

	if normalize.Equal(mk.Consumption, mk.Amount) {
		return fmt.Errorf("consumption and amount markers are both %q", mk.Amount)
	}

	return nil
}
