package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tripweaver/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateForm:
		content = m.viewForm()
	case constants.StatePending:
		content = m.viewPending()
	case constants.StateItinerary:
		content = docStyle.Render(m.itinerary.View())
	case constants.StateFailed:
		content = m.viewFailed()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render("TripWeaver"),
		taglineStyle.Render("LLM-assisted trip planning"),
	)
}

func (m Model) viewForm() string {
	if m.notice == "" {
		return docStyle.Render(m.form.View())
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		warningStyle.Render(m.notice),
		"",
		m.form.View(),
	))
}

func (m Model) viewPending() string {
	return lipgloss.Place(m.width, max(m.height-4, 3),
		lipgloss.Center, lipgloss.Center,
		m.spinner.View()+" "+constants.MsgPlanning,
	)
}

func (m Model) viewFailed() string {
	return lipgloss.Place(m.width, max(m.height-4, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(m.failure),
			"",
			"[r] Retry",
			"[n] New trip",
			"[q] Quit",
		),
	)
}
