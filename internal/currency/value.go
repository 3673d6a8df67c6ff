package currency

import (
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindAbsent Kind = iota
	KindText
	KindNumber
)

// Value is a spreadsheet cell: text, an already-numeric value, or nothing.
type Value struct {
	kind   Kind
	text   string
	number float64
}

func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

func Number(f float64) Value {
	return Value{kind: KindNumber, number: f}
}

func Absent() Value {
	return Value{}
}

func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether the cell is absent or holds only whitespace.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindText:
		return strings.TrimSpace(v.text) == ""
	case KindNumber:
		return false
	}

	return true
}

// String returns the cell as it would be displayed in the sheet.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}

	return ""
}
