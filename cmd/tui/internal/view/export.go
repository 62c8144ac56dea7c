package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablolacamera1/ventaspanel/internal/export"
	"github.com/pablolacamera1/ventaspanel/internal/period"
	"github.com/pablolacamera1/ventaspanel/internal/report"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

type exportState int

const (
	exportStateForm exportState = iota
	exportStateResult
)

// ExportModel drives report generation: pick a type and period, write
// the CSV, show where it landed.
type ExportModel struct {
	snap          *sale.Snapshot
	exportService *export.Service

	state exportState
	form  *huh.Form
	err   error
	path  string

	formType   string
	formPeriod string
	formDir    string
}

func NewExportModel(snap *sale.Snapshot, svc *export.Service, dir string) ExportModel {
	m := ExportModel{
		snap:          snap,
		exportService: svc,
		formType:      string(report.TypeSales),
		formPeriod:    string(period.CurrentMonth),
		formDir:       dir,
	}
	m.form = m.buildForm()

	return m
}

func (m ExportModel) buildForm() *huh.Form {
	periodOptions := make([]huh.Option[string], 0, len(period.Tokens()))
	for _, t := range period.Tokens() {
		periodOptions = append(periodOptions, huh.NewOption(periodTitle(t), string(t)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("type").
				Title("Report Type").
				Options(
					huh.NewOption("Sales", string(report.TypeSales)),
					huh.NewOption("Products", string(report.TypeProducts)),
					huh.NewOption("Customers", string(report.TypeCustomers)),
				).
				Value(&m.formType),

			huh.NewSelect[string]().
				Key("period").
				Title("Period").
				Options(periodOptions...).
				Value(&m.formPeriod),

			huh.NewInput().
				Key("dir").
				Title("Output Directory").
				Value(&m.formDir),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

type exportDoneMsg struct {
	path string
	err  error
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(exportDoneMsg); ok {
		m.path = done.path
		m.err = done.err
		m.state = exportStateResult

		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	if m.state == exportStateResult {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.exportCmd()
}

func (m ExportModel) exportCmd() tea.Cmd {
	snap := m.snap
	svc := m.exportService
	typ, _ := report.ParseType(m.form.GetString("type"))
	token := period.Token(m.form.GetString("period"))
	dir := m.form.GetString("dir")

	return func() tea.Msg {
		rep := report.Build(snap, typ, token, time.Now())

		path, err := svc.WriteFile(dir, rep)

		return exportDoneMsg{path: path, err: err}
	}
}

func (m ExportModel) View() string {
	if m.state == exportStateResult {
		if m.err != nil {
			return lipgloss.NewStyle().Padding(1).Render(
				fmt.Sprintf("Export failed: %v\n\nEsc: back", m.err))
		}

		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Report written to %s\n\nEsc: back", m.path))
	}

	return lipgloss.NewStyle().Padding(1).Render("Export Report\n\n" + m.form.View())
}
