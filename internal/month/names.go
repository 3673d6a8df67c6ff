package month

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/theezequiel42/water-tracker/internal/normalize"
)

// monthNames maps month-name tokens to their number. Lookups use normalized
// tokens, so the accented spelling of março is kept for completeness only.
var monthNames = map[string]int{
	"janeiro":   1,
	"fevereiro": 2,
	"marco":     3,
	"março":     3,
	"abril":     4,
	"maio":      5,
	"junho":     6,
	"julho":     7,
	"agosto":    8,
	"setembro":  9,
	"outubro":   10,
	"novembro":  11,
	"dezembro":  12,
}

var yearToken = regexp.MustCompile(`^[0-9]{4}$`)

// monthAndYear extracts the first recognized month name and the first
// 4-digit token of a label. "/" separates tokens like whitespace does.
func monthAndYear(label string) (*int, *int) {
	tokens := strings.Fields(strings.ReplaceAll(normalize.Text(label), "/", " "))

	var month, year *int

	for _, tok := range tokens {
		if n, ok := monthNames[tok]; ok {
			month = new(n)
			break
		}
	}

	for _, tok := range tokens {
		if !yearToken.MatchString(tok) {
			continue
		}

		if y, err := strconv.Atoi(tok); err == nil {
			year = new(y)
			break
		}
	}

	return month, year
}
