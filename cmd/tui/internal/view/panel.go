package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/theezequiel42/water-tracker/internal/statement"
)

const noDataNotice = "Nenhum dado encontrado para este usuário e mês selecionados."

func renderStatement(s *statement.Statement) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s · %s", s.Name, s.Month.Label)),
		"",
		field("Consumo", s.ConsumptionText()),
		field("Valor a pagar", s.AmountText()),
	}

	if s.HasOverdue {
		lines = append(lines, field("Valor em Atraso", s.OverdueText()))
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func field(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}
