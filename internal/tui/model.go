package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tripweaver/internal/constants"
	"github.com/julianstephens/tripweaver/internal/request"
	"github.com/julianstephens/tripweaver/internal/session"
	"github.com/julianstephens/tripweaver/internal/tui/components/itinerary"
	"github.com/julianstephens/tripweaver/internal/view"
)

// planUpdateMsg carries a controller transition into the event loop.
// ok is false once the controller has been disposed.
type planUpdateMsg struct {
	state session.State
	ok    bool
}

type Model struct {
	controller *session.Controller
	draft      *request.Draft
	form       *huh.Form
	state      constants.SessionState
	keys       KeyMap
	help       help.Model
	spinner    spinner.Model
	itinerary  itinerary.Model
	quitting   bool
	width      int
	height     int
	notice     string // shown above the form, e.g. after an empty submit
	failure    string // message of the last failed request
}

// NewModel wires a controller and a draft into a screen. The screen owns the
// controller from here on and disposes it on quit.
func NewModel(ctrl *session.Controller, draft *request.Draft) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = pendingStyle

	return Model{
		controller: ctrl,
		draft:      draft,
		form:       NewTripForm(draft),
		state:      constants.StateForm,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		spinner:    sp,
		itinerary:  itinerary.New(0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateItinerary:
		keys = append(keys, m.keys.New, m.keys.Explain, m.keys.Up, m.keys.Down)
	case constants.StateFailed:
		keys = append(keys, m.keys.Retry, m.keys.New)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// waitForUpdate blocks on the controller's update channel.
func waitForUpdate(ch <-chan session.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-ch
		return planUpdateMsg{state: st, ok: ok}
	}
}

// project builds the itinerary view from a successful state and the request
// that produced it.
func (m Model) project(st session.State) view.Itinerary {
	opts := view.Options{
		DataSource:      m.draft.DataSource,
		ShowExplanation: m.draft.ShowExplanation,
	}
	if req, ok := m.controller.LastRequest(); ok {
		opts.DataSource = req.DataSource
		opts.Pace = req.Pace
	}
	return view.Project(st.Plan, opts)
}
