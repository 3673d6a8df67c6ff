package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/theezequiel42/water-tracker/cmd/tui/internal/view"
	"github.com/theezequiel42/water-tracker/internal/config"
	"github.com/theezequiel42/water-tracker/internal/logger"
	"github.com/theezequiel42/water-tracker/internal/sheet"
	"github.com/theezequiel42/water-tracker/internal/statement"
)

type model struct {
	screen view.View
}

func (m model) Init() tea.Cmd {
	return m.screen.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.screen.Update(msg)
	if v, ok := next.(view.View); ok {
		m.screen = v
	}

	return m, cmd
}

func (m model) View() string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		PaddingLeft(1).
		Render(m.screen.Title())

	help := lipgloss.NewStyle().Faint(true).PaddingLeft(1).Render(m.screen.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, header, m.screen.View(), help)
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	fmt.Fprintln(os.Stderr, lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("%s: %v", msg, err)))
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fatal("failed to load config", err)
	}

	log, closer, err := logger.Open("tui", cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fatal("failed to create logger", err)
	}
	defer closer.Close()

	slog.SetDefault(log)

	layout, err := cfg.Layout()
	if err != nil {
		fatal("failed to load layout", err)
	}

	opts, err := cfg.SheetOptions()
	if err != nil {
		fatal("failed to read sheet settings", err)
	}

	loader, err := sheet.NewLoader(context.Background(), opts)
	if err != nil {
		fatal("failed to create sheet loader", err)
	}

	svc := statement.NewService(loader, layout)

	p := tea.NewProgram(model{screen: view.NewLookupModel(svc, cfg.Sheet.FetchTimeout)}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
