package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablolacamera1/ventaspanel/internal/analytics"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cardStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// DashboardModel renders the KPI overview: headline numbers, monthly
// revenue, category breakdown and the product leaderboard.
type DashboardModel struct {
	snap *sale.Snapshot

	kpis       analytics.KPISnapshot
	monthly    []analytics.MonthRevenue
	categories []analytics.CategoryRevenue
	top        []analytics.ProductRank
	loaded     bool
}

func NewDashboardModel(snap *sale.Snapshot) DashboardModel {
	return DashboardModel{snap: snap}
}

type dashboardLoadedMsg struct {
	kpis       analytics.KPISnapshot
	monthly    []analytics.MonthRevenue
	categories []analytics.CategoryRevenue
	top        []analytics.ProductRank
}

func (m DashboardModel) Init() tea.Cmd {
	snap := m.snap

	return func() tea.Msg {
		return dashboardLoadedMsg{
			kpis:       analytics.ComputeKPIs(snap.Sales, time.Now()),
			monthly:    analytics.RevenueByMonth(snap.Sales),
			categories: analytics.RevenueByCategory(snap.Sales),
			top:        analytics.TopProducts(snap.Sales, 5),
		}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.kpis = msg.kpis
		m.monthly = msg.monthly
		m.categories = msg.categories
		m.top = msg.top
		m.loaded = true

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if !m.loaded {
		return lipgloss.NewStyle().Padding(2).Render("Computing...")
	}

	kpiCards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(fmt.Sprintf("Total Revenue\n%s", FormatAmount(m.kpis.TotalRevenue))),
		cardStyle.Render(fmt.Sprintf("Completed Sales\n%d", m.kpis.CompletedCount)),
		cardStyle.Render(fmt.Sprintf("Average Ticket\n%s", FormatAmount(int64(m.kpis.AverageTicket)))),
		cardStyle.Render(fmt.Sprintf("Growth\n%+.1f%%", m.kpis.GrowthPercent)),
	)

	var sb strings.Builder

	sb.WriteString(headerStyle.Render("Dashboard") + "\n\n")
	sb.WriteString(kpiCards + "\n\n")

	sb.WriteString(headerStyle.Render("Revenue by Month") + "\n")
	for _, b := range m.monthly {
		sb.WriteString(fmt.Sprintf("  %-10s %s\n", b.Period, FormatAmount(b.Total)))
	}

	sb.WriteString("\n" + headerStyle.Render("Revenue by Category") + "\n")
	for _, c := range m.categories {
		sb.WriteString(fmt.Sprintf("  %-16s %s\n", c.Category, FormatAmount(c.Revenue)))
	}

	sb.WriteString("\n" + headerStyle.Render("Top Products") + "\n")
	for i, p := range m.top {
		sb.WriteString(fmt.Sprintf("  %d. %-22s %s %s\n",
			i+1, p.ProductName, FormatAmount(p.Revenue),
			faintStyle.Render(fmt.Sprintf("(%d units)", p.UnitsSold))))
	}

	sb.WriteString("\n" + faintStyle.Render("Esc: back"))

	return lipgloss.NewStyle().Padding(1).Render(sb.String())
}
