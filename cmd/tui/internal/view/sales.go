package view

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablolacamera1/ventaspanel/internal/analytics"
	"github.com/pablolacamera1/ventaspanel/internal/period"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

// saleItem wraps a sale to implement list.Item.
type saleItem struct {
	v sale.Sale
}

func (i saleItem) Title() string {
	status := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.v.Status))

	return fmt.Sprintf("#%d  %s  %s  %s", i.v.ID, FormatDate(i.v.Date), FormatAmount(i.v.Total), status)
}

func (i saleItem) Description() string {
	return fmt.Sprintf("%s x%d - %s", i.v.ProductName, i.v.Quantity, i.v.CustomerName)
}

func (i saleItem) FilterValue() string {
	return i.v.ProductName + " " + i.v.CustomerName
}

// statusCycle is the order the status filter steps through.
var statusCycle = []string{sale.StatusAll, string(sale.StatusCompleted), string(sale.StatusPending), string(sale.StatusCancelled)}

var sortCycle = []sale.SortKey{sale.SortDateDesc, sale.SortDateAsc, sale.SortAmountDesc, sale.SortAmountAsc}

// SalesModel lists sales with status filtering, sorting and an
// optional period window. The "/" filter searches product and customer
// names like the panel's search box.
type SalesModel struct {
	snap *sale.Snapshot
	now  func() time.Time

	list      list.Model
	picker    PeriodPicker
	picking   bool
	token     period.Token
	hasPeriod bool
	statusIdx int
	sortIdx   int
	totals    analytics.ListingTotals
}

func NewSalesModel(snap *sale.Snapshot) SalesModel {
	return NewSalesModelAt(snap, time.Now)
}

// NewSalesModelAt builds a sales view with a fixed evaluation clock.
func NewSalesModelAt(snap *sale.Snapshot, now func() time.Time) SalesModel {
	l := list.New([]list.Item{}, saleItemDelegate{}, 0, 0)
	l.Title = "Sales"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	m := SalesModel{snap: snap, now: now, picker: NewPeriodPicker(), list: l}
	m.refresh()

	return m
}

func (m SalesModel) Init() tea.Cmd {
	return nil
}

func (m *SalesModel) refresh() {
	filtered := sale.Apply(m.snap.Sales, sale.Query{
		Status: statusCycle[m.statusIdx],
		Sort:   sortCycle[m.sortIdx],
	})

	if m.hasPeriod {
		window := period.Resolve(m.token, m.now())

		// In the list "today" means the calendar day, like over HTTP.
		if m.token == period.Today {
			window = window.ExpandToDay()
		}

		inWindow := filtered[:0]

		for _, v := range filtered {
			if window.Contains(v.Date) {
				inWindow = append(inWindow, v)
			}
		}

		filtered = inWindow
	}

	m.totals = analytics.FilteredTotals(filtered)

	items := make([]list.Item, len(filtered))
	for i, v := range filtered {
		items[i] = saleItem{v: v}
	}

	m.list.SetItems(items)

	periodLabel := "all dates"
	if m.hasPeriod {
		periodLabel = periodTitle(m.token)
	}

	m.list.Title = fmt.Sprintf("Sales [%s | %s | %s]", statusCycle[m.statusIdx], sortCycle[m.sortIdx], periodLabel)
}

func (m SalesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sel, ok := msg.(PeriodSelectedMsg); ok {
		m.token = sel.Token
		m.hasPeriod = true
		m.picking = false
		m.refresh()

		return m, nil
	}

	if m.picking {
		return m.updatePicker(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "s":
			m.statusIdx = (m.statusIdx + 1) % len(statusCycle)
			m.refresh()

			return m, nil
		case "o":
			m.sortIdx = (m.sortIdx + 1) % len(sortCycle)
			m.refresh()

			return m, nil
		case "p":
			m.picking = true
			m.picker.Reset()

			return m, nil
		case "a":
			m.hasPeriod = false
			m.refresh()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m SalesModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	return m, cmd
}

func (m SalesModel) View() string {
	if m.picking {
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())
	}

	summary := faintStyle.Render(fmt.Sprintf(
		"Completed: %s (%d)  |  Showing: %d  |  s: status  o: sort  p: period  a: all dates  /: search",
		FormatAmount(m.totals.Revenue), m.totals.Completed, m.totals.Shown,
	))

	return lipgloss.NewStyle().Padding(1).Render(summary + "\n" + m.list.View())
}

// saleItemDelegate renders items in the list.
type saleItemDelegate struct{}

func (d saleItemDelegate) Height() int                             { return 2 }
func (d saleItemDelegate) Spacing() int                            { return 0 }
func (d saleItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d saleItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(saleItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "    %s\n", faintStyle.Render(i.Description()))
}
