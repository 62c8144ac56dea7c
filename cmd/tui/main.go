package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/pablolacamera1/ventaspanel/cmd/tui/internal/view"
	"github.com/pablolacamera1/ventaspanel/internal/config"
	"github.com/pablolacamera1/ventaspanel/internal/export"
	"github.com/pablolacamera1/ventaspanel/internal/importer"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
	"github.com/pablolacamera1/ventaspanel/internal/sale/seed"
	"github.com/pablolacamera1/ventaspanel/internal/sale/store"
)

type model struct {
	snap          *sale.Snapshot
	exportService *export.Service
	exportDir     string

	currentView View

	dashboardView view.DashboardModel
	salesView     view.SalesModel
	exportView    view.ExportModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewSales     View = 2
	ViewExport    View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		slog.Error("failed to initialize data source", "source", cfg.Data.Source, "error", err)
		os.Exit(1)
	}

	snap, err := provider.Snapshot(context.Background())
	if err != nil {
		slog.Error("failed to load sales data", "error", err)
		os.Exit(1)
	}

	expSvc := export.NewService()

	return model{
		snap:          snap,
		exportService: expSvc,
		exportDir:     cfg.Export.Dir,
		currentView:   ViewMenu,
		dashboardView: view.NewDashboardModel(snap),
		salesView:     view.NewSalesModel(snap),
		exportView:    view.NewExportModel(snap, expSvc, cfg.Export.Dir),
	}
}

func newProvider(cfg *config.Config) (sale.Provider, error) {
	switch cfg.Data.Source {
	case config.SourcePostgres:
		return store.New(cfg.ConnectionString())
	case config.SourceCSV:
		snap, err := importer.LoadDir(cfg.Data.CSVDir)
		if err != nil {
			return nil, err
		}

		return sale.Static{Snap: snap}, nil
	case config.SourceSeed:
		return sale.Static{Snap: seed.Snapshot(cfg.Data.Seed, cfg.Data.Records, time.Now())}, nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.snap)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewSales
				m.salesView = view.NewSalesModel(m.snap)

				return m, m.salesView.Init()
			case "3":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.snap, m.exportService, m.exportDir)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewSales:
		var newModel tea.Model
		newModel, cmd = m.salesView.Update(msg)
		m.salesView = newModel.(view.SalesModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Ventas Panel\n\n" +
				"1. Dashboard\n" +
				"2. Sales\n" +
				"3. Export Report\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewSales:
		return m.salesView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
