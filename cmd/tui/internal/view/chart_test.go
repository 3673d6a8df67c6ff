package view_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theezequiel42/water-tracker/cmd/tui/internal/view"
	"github.com/theezequiel42/water-tracker/internal/statement"
)

func TestRenderChart(t *testing.T) {
	type testCase struct {
		name   string
		points []statement.ChartPoint
		verify func(t *testing.T, lines []string)
	}

	tests := []testCase{
		{
			name: "Bars Scale To The Largest Amount",
			points: []statement.ChartPoint{
				{Key: "abril 2025", Label: "Abril 2025", Amount: 100},
				{Key: "maio 2025", Label: "Maio 2025", Amount: 50},
				{Key: "junho 2025", Label: "Junho 2025", Amount: 0},
			},
			verify: func(t *testing.T, lines []string) {
				require.Len(t, lines, 5)
				assert.Contains(t, lines[0], "Valor a Pagar por Mês")

				full := strings.Count(lines[2], "█")
				half := strings.Count(lines[3], "█")

				assert.Positive(t, full)
				assert.InDelta(t, float64(full)/2, float64(half), 1)
				assert.Zero(t, strings.Count(lines[4], "█"))

				assert.Contains(t, lines[2], "R$ 100,00")
				assert.Contains(t, lines[3], "R$ 50,00")
				assert.Contains(t, lines[4], "R$ 0,00")
			},
		},
		{
			name: "Tiny Amounts Still Show",
			points: []statement.ChartPoint{
				{Key: "a", Label: "A", Amount: 10000},
				{Key: "b", Label: "B", Amount: 0.01},
			},
			verify: func(t *testing.T, lines []string) {
				assert.Equal(t, 1, strings.Count(lines[3], "█"))
			},
		},
		{
			name: "All Zero",
			points: []statement.ChartPoint{
				{Key: "a", Label: "A"},
				{Key: "b", Label: "B"},
			},
			verify: func(t *testing.T, lines []string) {
				for _, l := range lines {
					assert.NotContains(t, l, "█")
				}
			},
		},
		{
			name:   "No Points",
			points: nil,
			verify: func(t *testing.T, lines []string) {
				assert.Equal(t, []string{""}, lines)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := view.RenderChart(tt.points, 60, "maio 2025")
			tt.verify(t, strings.Split(out, "\n"))
		})
	}
}

func TestRenderChart_NarrowWidthKeepsMinimumBar(t *testing.T) {
	out := view.RenderChart([]statement.ChartPoint{{Key: "a", Label: "Janeiro 2025", Amount: 5}}, 5, "")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 10, strings.Count(lines[2], "█"))
}
