package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablolacamera1/ventaspanel/internal/period"
)

// PeriodSelectedMsg is emitted when the user picks a reporting period.
type PeriodSelectedMsg struct {
	Token period.Token
}

// PeriodPicker is a reusable component for selecting a named reporting
// period.
type PeriodPicker struct {
	tokens   []period.Token
	selected int
}

func NewPeriodPicker() PeriodPicker {
	return PeriodPicker{tokens: period.Tokens()}
}

func periodTitle(t period.Token) string {
	switch t {
	case period.Today:
		return "Today"
	case period.Last7Days:
		return "Last 7 Days"
	case period.Last30Days:
		return "Last 30 Days"
	case period.CurrentYear:
		return "Current Year"
	default:
		return "Current Month"
	}
}

func (m PeriodPicker) Init() tea.Cmd {
	return nil
}

func (m PeriodPicker) Update(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyUp:
		if m.selected > 0 {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < len(m.tokens)-1 {
			m.selected++
		}
	case tea.KeyEnter:
		token := m.tokens[m.selected]
		return m, func() tea.Msg {
			return PeriodSelectedMsg{Token: token}
		}
	}

	return m, nil
}

func (m PeriodPicker) View() string {
	s := "Select Period:\n\n"

	for i, t := range m.tokens {
		cursor := " "
		if m.selected == i {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, periodTitle(t))
	}

	return s + "\n(Enter to select, Esc to back)"
}

// Reset returns the picker to its initial selection.
func (m *PeriodPicker) Reset() {
	m.selected = 0
}
