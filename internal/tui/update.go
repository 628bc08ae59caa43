package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tripweaver/internal/constants"
	apperrors "github.com/julianstephens/tripweaver/internal/errors"
	"github.com/julianstephens/tripweaver/internal/logger"
	"github.com/julianstephens/tripweaver/internal/request"
	"github.com/julianstephens/tripweaver/internal/session"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.itinerary.SetSize(msg.Width-h, msg.Height-4-v)
		return m, nil

	case planUpdateMsg:
		return m.handlePlanUpdate(msg)

	case spinner.TickMsg:
		if m.state != constants.StatePending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
	}

	if m.state == constants.StateForm {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.New) && m.state != constants.StatePending:
			return m.openForm()
		case key.Matches(msg, m.keys.Retry) && m.state == constants.StateFailed:
			return m.submit()
		case key.Matches(msg, m.keys.Explain) && m.state == constants.StateItinerary:
			m.draft.ShowExplanation = !m.draft.ShowExplanation
			m.itinerary.SetItinerary(m.project(m.controller.Current()))
			return m, nil
		}
	}

	if m.state == constants.StateItinerary {
		var cmd tea.Cmd
		m.itinerary, cmd = m.itinerary.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		if m.itinerary.Itinerary != nil {
			m.state = constants.StateItinerary
			return m, nil
		}
		return m.quit()
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		next, cmd := m.submit()
		return next, tea.Batch(append(cmds, cmd)...)
	case huh.StateAborted:
		return m.quit()
	}
	return m, tea.Batch(cmds...)
}

// submit hands the draft to the controller. A declined submission sends the
// user back to the form with the previous values intact.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.controller.Submit(m.draft.Fields()) {
		if m.controller.Current().Kind == session.Pending {
			m.state = constants.StatePending
			return m, nil
		}
		m.notice = constants.MsgEmptyQuery
		if _, err := request.Build(m.draft.Fields()); err != nil {
			m.notice = apperrors.UserMessage(err)
		}
		return m.openForm()
	}

	m.notice = ""
	m.failure = ""
	m.state = constants.StatePending
	return m, tea.Batch(m.spinner.Tick, waitForUpdate(m.controller.Updates()))
}

func (m Model) handlePlanUpdate(msg planUpdateMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		return m, nil
	}

	switch msg.state.Kind {
	case session.Succeeded:
		m.itinerary.SetItinerary(m.project(msg.state))
		m.state = constants.StateItinerary
		return m, nil
	case session.Failed:
		m.failure = msg.state.Message
		m.state = constants.StateFailed
		return m, nil
	default:
		// Pending was read before the result arrived; keep listening.
		return m, waitForUpdate(m.controller.Updates())
	}
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	m.form = NewTripForm(m.draft)
	m.state = constants.StateForm
	return m, m.form.Init()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.controller.Dispose()
	logger.Debug("TUI closed", "state", m.controller.Current().Kind)
	return m, tea.Quit
}
