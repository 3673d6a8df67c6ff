package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const Symbol = "R$"

var ErrInvalid = errors.New("invalid number")

// Parse converts a billed amount into a number for charting. Absent,
// blank and unparseable cells count as zero.
func Parse(v Value) float64 {
	f, err := ParseStrict(v)
	if err != nil {
		return 0
	}

	return f
}

// ParseStrict converts a billed amount such as "R$ 1.234,56" into 1234.56.
// Absent and blank cells are zero; text that is not a number is an error.
func ParseStrict(v Value) (float64, error) {
	switch v.kind {
	case KindNumber:
		return v.number, nil
	case KindText:
		return parseBRL(v.text)
	}

	return 0, nil
}

// parseBRL strips the currency symbol, drops "." thousands separators and
// turns the decimal comma into a point.
func parseBRL(s string) (float64, error) {
	clean := strings.ReplaceAll(s, Symbol, "")
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	clean = strings.TrimSpace(clean)

	if clean == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	f, _ := d.Float64()

	return f, nil
}

// ParseQuantity reads a measured quantity such as "12", "12.5" or "12,5".
// Unlike amounts, a blank or absent quantity is an error: it was not measured.
func ParseQuantity(v Value) (float64, error) {
	switch v.kind {
	case KindNumber:
		return v.number, nil
	case KindText:
		s := strings.TrimSpace(v.text)
		if s == "" {
			return 0, fmt.Errorf("%w: empty", ErrInvalid)
		}

		d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalid, v.text)
		}

		f, _ := d.Float64()

		return f, nil
	}

	return 0, fmt.Errorf("%w: absent", ErrInvalid)
}

// Format renders f as "R$ 1.234,56".
func Format(f float64) string {
	s := decimal.NewFromFloat(f).Round(2).StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	var sb strings.Builder

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}

		sb.WriteRune(r)
	}

	return fmt.Sprintf("%s%s %s,%s", sign, Symbol, sb.String(), frac)
}

// Display returns the amount the way a statement shows it: text cells as
// written in the sheet, numeric cells formatted.
func Display(v Value) string {
	if v.kind == KindNumber {
		return Format(v.number)
	}

	return strings.TrimSpace(v.String())
}
