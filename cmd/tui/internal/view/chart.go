package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theezequiel42/water-tracker/internal/currency"
	"github.com/theezequiel42/water-tracker/internal/statement"
)

const (
	barRune     = "█"
	minBarWidth = 10
	chartTitle  = "Valor a Pagar por Mês"
)

var (
	barStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	currentBarStyle = lipgloss.NewStyle().Foreground(accentColor)
)

// RenderChart draws one horizontal bar per month, scaled to the largest
// amount and fitted to width. The bar of the month key current is
// highlighted.
func RenderChart(points []statement.ChartPoint, width int, current string) string {
	if len(points) == 0 {
		return ""
	}

	var (
		labelWidth, valueWidth int
		maxAmount              float64
		values                 = make([]string, len(points))
	)

	for i, p := range points {
		values[i] = currency.Format(p.Amount)
		labelWidth = max(labelWidth, lipgloss.Width(p.Label))
		valueWidth = max(valueWidth, lipgloss.Width(values[i]))
		maxAmount = max(maxAmount, p.Amount)
	}

	barWidth := max(width-labelWidth-valueWidth-4, minBarWidth)
	label := lipgloss.NewStyle().Width(labelWidth)

	lines := make([]string, 0, len(points)+2)
	lines = append(lines, labelStyle.Render(chartTitle), "")

	for i, p := range points {
		n := barLength(p.Amount, maxAmount, barWidth)

		style := barStyle
		if p.Key == current {
			style = currentBarStyle
		}

		bar := style.Render(strings.Repeat(barRune, n)) + strings.Repeat(" ", barWidth-n)
		lines = append(lines, fmt.Sprintf("%s  %s  %s", label.Render(p.Label), bar, values[i]))
	}

	return strings.Join(lines, "\n")
}

// barLength scales amount to width; any positive amount gets at least one
// cell so it is not mistaken for zero.
func barLength(amount, maxAmount float64, width int) int {
	if amount <= 0 || maxAmount <= 0 {
		return 0
	}

	n := int(math.Round(amount / maxAmount * float64(width)))

	return min(max(n, 1), width)
}
