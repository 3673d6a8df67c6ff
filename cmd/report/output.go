package main

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/theezequiel42/water-tracker/internal/currency"
	"github.com/theezequiel42/water-tracker/internal/statement"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault

	return t
}

func printStatement(w io.Writer, s *statement.Statement) {
	t := newTable(w)
	t.SetTitle("%s · %s", s.Name, s.Month.Label)

	t.AppendRow(table.Row{"Consumo", s.ConsumptionText()})
	t.AppendRow(table.Row{"Valor a pagar", s.AmountText()})

	if s.HasOverdue {
		t.AppendRow(table.Row{"Valor em Atraso", s.OverdueText()})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Colors: text.Colors{text.Bold}},
		{Number: 2, Align: text.AlignRight},
	})

	t.Render()
}

func printChart(w io.Writer, points []statement.ChartPoint, current string) {
	t := newTable(w)
	t.SetTitle("Valor a Pagar por Mês")
	t.AppendHeader(table.Row{"Mês", "Valor"})

	var total float64

	for _, p := range points {
		label := p.Label
		if p.Key == current {
			label = text.Bold.Sprint(label)
		}

		t.AppendRow(table.Row{label, currency.Format(p.Amount)})
		total += p.Amount
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{text.Bold.Sprint("Total"), text.Bold.Sprint(currency.Format(total))})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	t.Render()
}

func printIndex(w io.Writer, ledger *statement.Ledger, now time.Time) {
	def := ledger.DefaultMonth(now).Key

	months := newTable(w)
	months.AppendHeader(table.Row{"Chave", "Mês", "Padrão"})

	for _, d := range ledger.Months() {
		mark := ""
		if d.Key == def {
			mark = "*"
		}

		months.AppendRow(table.Row{d.Key, d.Label, mark})
	}

	months.Render()

	names := newTable(w)
	names.AppendHeader(table.Row{"Nome"})

	for _, n := range ledger.Names() {
		names.AppendRow(table.Row{n})
	}

	names.Render()
}
