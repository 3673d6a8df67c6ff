package view

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const defaultLoadTimeout = 30 * time.Second

var (
	accentColor = lipgloss.Color("205")
	errorColor  = lipgloss.Color("196")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	faintStyle  = lipgloss.NewStyle().Faint(true)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// LoadCtx returns a context bounding one sheet load.
func LoadCtx(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}

	return context.WithTimeout(context.Background(), timeout)
}
