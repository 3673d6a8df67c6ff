package view

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theezequiel42/water-tracker/internal/statement"
)

var errNoNames = errors.New("nenhum nome encontrado na planilha")

type lookupState int

const (
	lookupStateLoading lookupState = iota
	lookupStateSelect
	lookupStateResult
	lookupStateFailed
)

// selection lives behind a pointer so the form keeps writing to the same
// values while the model is copied by value.
type selection struct {
	name  string
	month string
}

type LookupModel struct {
	CommonModel
	svc     *statement.Service
	timeout time.Duration
	now     func() time.Time

	state   lookupState
	spinner spinner.Model
	form    *huh.Form
	sel     *selection

	ledger *statement.Ledger
	result *statement.Statement
	chart  []statement.ChartPoint
	notice string
	err    error
}

func NewLookupModel(svc *statement.Service, timeout time.Duration) LookupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accentColor)

	return LookupModel{
		svc:     svc,
		timeout: timeout,
		now:     time.Now,
		state:   lookupStateLoading,
		spinner: s,
		sel:     &selection{},
	}
}

func (m LookupModel) Title() string { return "Consulta de Consumo e Pagamento" }

func (m LookupModel) ShortHelp() string {
	switch m.state {
	case lookupStateLoading:
		return "Carregando..."
	case lookupStateSelect:
		return "Enter: confirmar | Ctrl+C: sair"
	case lookupStateResult:
		return "c: trocar seleção | r: recarregar | q: sair"
	case lookupStateFailed:
		if statement.IsConfigError(m.err) {
			return "q: sair"
		}

		return "r: tentar novamente | q: sair"
	}

	return ""
}

func (m LookupModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m LookupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case ledgerLoadedMsg:
		return m.handleLoaded(msg)
	}

	switch m.state {
	case lookupStateLoading:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case lookupStateSelect:
		return m.updateSelect(msg)
	case lookupStateResult:
		return m.updateResult(msg)
	case lookupStateFailed:
		return m.updateFailed(msg)
	}

	return m, nil
}

func (m LookupModel) handleLoaded(msg ledgerLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("failed to load sheet", "error", msg.err)

		m.state = lookupStateFailed
		m.err = msg.err

		return m, nil
	}

	names := msg.ledger.Names()
	if len(names) == 0 {
		m.state = lookupStateFailed
		m.err = errNoNames

		return m, nil
	}

	m.ledger = msg.ledger
	m.err = nil

	// A reload keeps the current choice while it still exists in the sheet.
	if !msg.ledger.HasName(m.sel.name) {
		m.sel.name = names[0]
	}

	if _, ok := msg.ledger.Month(m.sel.month); !ok {
		m.sel.month = msg.ledger.DefaultMonth(m.now()).Key
	}

	slog.Info("sheet loaded", "names", len(names), "months", len(msg.ledger.Months()))

	return m.startSelect()
}

func (m LookupModel) startSelect() (tea.Model, tea.Cmd) {
	m.form = m.buildForm()
	m.state = lookupStateSelect

	return m, m.form.Init()
}

func (m LookupModel) updateSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		return m, tea.Quit
	case huh.StateCompleted:
		return m.showStatement(), nil
	}

	return m, cmd
}

func (m LookupModel) showStatement() LookupModel {
	m.state = lookupStateResult
	m.result, m.chart, m.notice = nil, nil, ""

	s, err := m.ledger.Statement(m.sel.name, m.sel.month)
	if err != nil {
		if errors.Is(err, statement.ErrNotFound) {
			m.notice = noDataNotice
			return m
		}

		m.state = lookupStateFailed
		m.err = err

		return m
	}

	m.result = s
	m.chart = m.ledger.Chart(s.Name)

	return m
}

func (m LookupModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "c":
		return m.startSelect()
	case "r":
		return m.reload()
	}

	return m, nil
}

func (m LookupModel) updateFailed(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r":
		if !statement.IsConfigError(m.err) {
			return m.reload()
		}
	}

	return m, nil
}

func (m LookupModel) reload() (tea.Model, tea.Cmd) {
	m.state = lookupStateLoading
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m LookupModel) buildForm() *huh.Form {
	nameOptions := huh.NewOptions(m.ledger.Names()...)

	months := m.ledger.Months()
	monthOptions := make([]huh.Option[string], len(months))

	for i, d := range months {
		monthOptions[i] = huh.NewOption(d.Label, d.Key)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("name").
				Title("Selecione seu nome").
				Options(nameOptions...).
				Height(min(len(nameOptions)+2, 12)).
				Value(&m.sel.name),
			huh.NewSelect[string]().
				Key("month").
				Title("Selecione o mês").
				Options(monthOptions...).
				Height(min(len(monthOptions)+2, 12)).
				Value(&m.sel.month),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m LookupModel) View() string {
	switch m.state {
	case lookupStateLoading:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Carregando planilha...", m.spinner.View()),
		)
	case lookupStateSelect:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	case lookupStateResult:
		return m.viewResult()
	case lookupStateFailed:
		return lipgloss.NewStyle().Padding(1).Render(
			errorStyle.Render(fmt.Sprintf("Erro: %v", m.err)),
		)
	}

	return ""
}

func (m LookupModel) viewResult() string {
	if m.result == nil {
		return lipgloss.NewStyle().Padding(1).Render(noticeStyle.Render(m.notice))
	}

	width := m.Width - 2
	if width <= 0 {
		width = 80
	}

	content := []string{renderStatement(m.result)}

	if !m.ledger.HasOverdue() {
		content = append(content, faintStyle.Render("Coluna de atraso não encontrada na planilha."))
	}

	content = append(content, "", RenderChart(m.chart, width, m.result.Month.Key))

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, content...))
}

type ledgerLoadedMsg struct {
	ledger *statement.Ledger
	err    error
}

func (m LookupModel) loadCmd() tea.Cmd {
	svc, timeout := m.svc, m.timeout

	return func() tea.Msg {
		ctx, cancel := LoadCtx(timeout)
		defer cancel()

		ledger, err := svc.Load(ctx)

		return ledgerLoadedMsg{ledger: ledger, err: err}
	}
}
