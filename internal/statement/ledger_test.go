package statement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theezequiel42/water-tracker/internal/currency"
	"github.com/theezequiel42/water-tracker/internal/month"
	"github.com/theezequiel42/water-tracker/internal/sheet"
	"github.com/theezequiel42/water-tracker/internal/statement"
)

func newLedger(t *testing.T) *statement.Ledger {
	t.Helper()

	l, err := statement.NewLedger(sampleTable(), statement.DefaultLayout())
	require.NoError(t, err)

	return l
}

func TestLedger_Names(t *testing.T) {
	assert.Equal(t, []string{"Ana", "Bruno", "Dora"}, newLedger(t).Names())
}

func TestLedger_DefaultMonth(t *testing.T) {
	l := newLedger(t)

	type testCase struct {
		name string
		now  time.Time
		want string
	}

	tests := []testCase{
		{name: "Previous Month Present", now: time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC), want: "abril 2025"},
		{name: "Previous Month Missing Falls Back To Last", now: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), want: "maio 2025"},
		{name: "Year Must Match", now: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), want: "maio 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.DefaultMonth(tt.now).Key)
		})
	}
}

func TestLedger_Statement(t *testing.T) {
	l := newLedger(t)

	type testCase struct {
		name    string
		who     string
		key     string
		wantErr error
		verify  func(t *testing.T, s *statement.Statement)
	}

	tests := []testCase{
		{
			name: "Measured Consumption Uses First Row",
			who:  "Ana",
			key:  "abril 2025",
			verify: func(t *testing.T, s *statement.Statement) {
				assert.Equal(t, "Abril 2025", s.Month.Label)
				assert.Equal(t, statement.ConsumptionMeasured, s.ConsumptionStatus())
				assert.Equal(t, "12 m³", s.ConsumptionText())
				assert.Equal(t, "R$ 45,90", s.AmountText())
				assert.Equal(t, "R$ 10,00", s.OverdueText())
			},
		},
		{
			name: "Zero Consumption",
			who:  "Ana",
			key:  "Maio 2025",
			verify: func(t *testing.T, s *statement.Statement) {
				assert.Equal(t, statement.ConsumptionBelowOne, s.ConsumptionStatus())
				assert.Equal(t, "Inferior a 1 m³", s.ConsumptionText())
			},
		},
		{
			name: "Negative Consumption Is Unavailable",
			who:  "Bruno",
			key:  "abril 2025",
			verify: func(t *testing.T, s *statement.Statement) {
				assert.Equal(t, statement.Unavailable, s.ConsumptionText())
				assert.Equal(t, "R$ 1.234,56", s.AmountText())
			},
		},
		{
			name: "Unparseable Consumption And Empty Cells",
			who:  "Bruno",
			key:  "maio 2025",
			verify: func(t *testing.T, s *statement.Statement) {
				assert.Equal(t, statement.ConsumptionUnavailable, s.ConsumptionStatus())
				assert.Equal(t, statement.Unavailable, s.AmountText())
				assert.Equal(t, statement.Unavailable, s.OverdueText())
			},
		},
		{
			name: "Non-numeric Amount Is Unavailable",
			who:  "Dora",
			key:  "abril 2025",
			verify: func(t *testing.T, s *statement.Statement) {
				assert.Equal(t, "5 m³", s.ConsumptionText())
				assert.Equal(t, statement.Unavailable, s.AmountText())
				assert.Equal(t, statement.Unavailable, s.OverdueText())
			},
		},
		{
			name: "Malformed Amount Is Unavailable",
			who:  "Dora",
			key:  "maio 2025",
			verify: func(t *testing.T, s *statement.Statement) {
				assert.Equal(t, statement.Unavailable, s.AmountText())
			},
		},
		{
			name:    "Unknown Month",
			who:     "Ana",
			key:     "junho 2025",
			wantErr: statement.ErrUnknownMonth,
		},
		{
			name:    "Unknown Name",
			who:     "Carla",
			key:     "abril 2025",
			wantErr: statement.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Statement(tt.who, tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.verify(t, got)
		})
	}
}

func TestLedger_StatementWithoutOverdueColumn(t *testing.T) {
	tbl := sheet.NewTable(
		[]string{"Nome", "Consumo Maio 2025", "Valor Maio 2025"},
		[][]currency.Value{{currency.Text("Ana"), currency.Number(3), currency.Number(21.5)}},
	)

	l, err := statement.NewLedger(tbl, statement.DefaultLayout())
	require.NoError(t, err)

	s, err := l.Statement("Ana", "maio 2025")
	require.NoError(t, err)

	assert.False(t, s.HasOverdue)
	assert.Equal(t, "3 m³", s.ConsumptionText())
	assert.Equal(t, "R$ 21,50", s.AmountText())
	assert.Equal(t, statement.Unavailable, s.OverdueText())
}

func TestLedger_Chart(t *testing.T) {
	l := newLedger(t)

	t.Run("Known Name", func(t *testing.T) {
		assert.Equal(t, []statement.ChartPoint{
			{Key: "abril 2025", Label: "Abril 2025", Amount: 45.9},
			{Key: "maio 2025", Label: "Maio 2025", Amount: 30},
		}, l.Chart("Ana"))
	})

	t.Run("Empty Cells Count As Zero", func(t *testing.T) {
		got := l.Chart("Bruno")
		require.Len(t, got, 2)
		assert.InDelta(t, 1234.56, got[0].Amount, 0.001)
		assert.Zero(t, got[1].Amount)
	})

	t.Run("Non-numeric Amounts Count As Zero", func(t *testing.T) {
		for _, p := range l.Chart("Dora") {
			assert.Zero(t, p.Amount)
		}
	})

	t.Run("Unknown Name Is All Zeros", func(t *testing.T) {
		for _, p := range l.Chart("Carla") {
			assert.Zero(t, p.Amount)
		}
	})
}

func TestLedger_CustomLayout(t *testing.T) {
	layout := statement.Layout{
		NameColumn:      "Morador",
		ConsumptionUnit: "kWh",
		Markers:         month.Markers{Consumption: "Leitura", Amount: "Total", Overdue: "pendente"},
	}
	require.NoError(t, layout.Validate())

	tbl := sheet.NewTable(
		[]string{"Morador", "Leitura Junho 2025", "Total Junho 2025", "Total pendente"},
		[][]currency.Value{{currency.Text("Ana"), currency.Text("0"), currency.Text("R$ 5,00"), currency.Text("R$ 1,00")}},
	)

	l, err := statement.NewLedger(tbl, layout)
	require.NoError(t, err)
	require.Len(t, l.Months(), 1)
	assert.Equal(t, "Total pendente", l.OverdueColumn())

	s, err := l.Statement("Ana", "junho 2025")
	require.NoError(t, err)
	assert.Equal(t, "Inferior a 1 kWh", s.ConsumptionText())
}

func TestLayout_Validate(t *testing.T) {
	assert.NoError(t, statement.DefaultLayout().Validate())

	l := statement.DefaultLayout()
	l.NameColumn = ""
	assert.Error(t, l.Validate())

	l = statement.DefaultLayout()
	l.Markers.Amount = ""
	assert.Error(t, l.Validate())
}

func TestLedger_Suggest(t *testing.T) {
	l := newLedger(t)

	assert.Equal(t, "Bruno", l.Suggest("brunno"))
	assert.Equal(t, "Ana", l.Suggest("ANA"))
}
