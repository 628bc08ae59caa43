package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tripweaver/internal/constants"
	"github.com/julianstephens/tripweaver/internal/models"
	"github.com/julianstephens/tripweaver/internal/request"
	"github.com/julianstephens/tripweaver/internal/session"
)

type stubPlanner struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
	plan    models.TripPlan
	err     error
}

func (p *stubPlanner) Plan(ctx context.Context, req models.TripRequest) (models.TripPlan, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.release != nil {
		select {
		case <-p.release:
		case <-ctx.Done():
			return models.TripPlan{}, ctx.Err()
		}
	}
	return p.plan, p.err
}

func (p *stubPlanner) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func romePlan() models.TripPlan {
	return models.TripPlan{
		City: "Rome",
		Days: []models.DayPlan{
			{Day: 1, Places: []models.Place{{Name: "Colosseum", Category: "Historic Site"}}},
			{Day: 2, Places: []models.Place{}},
		},
		Explanation: models.Some("Old stones.\n\nGood food."),
	}
}

func newTestModel(t *testing.T, p *stubPlanner) (Model, *session.Controller) {
	t.Helper()
	ctrl := session.New(p)
	t.Cleanup(ctrl.Dispose)

	m := NewModel(ctrl, request.NewDraft(models.DataSourceOffline, true))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), ctrl
}

func TestSubmit_EmptyQueryStaysOnForm(t *testing.T) {
	p := &stubPlanner{plan: romePlan()}
	m, ctrl := newTestModel(t, p)

	next, _ := m.submit()
	m = next.(Model)

	if m.state != constants.StateForm {
		t.Errorf("state = %d, want form", m.state)
	}
	if m.notice != constants.MsgEmptyQuery {
		t.Errorf("notice = %q, want %q", m.notice, constants.MsgEmptyQuery)
	}
	if ctrl.Current().Kind != session.Idle || p.Calls() != 0 {
		t.Error("empty query must not start a request")
	}
}

func TestSubmit_PendingThenSucceeded(t *testing.T) {
	p := &stubPlanner{plan: romePlan(), release: make(chan struct{})}
	m, ctrl := newTestModel(t, p)
	m.draft.Query = "3 days in Rome"
	m.draft.Pace = models.PacePacked

	next, cmd := m.submit()
	m = next.(Model)
	if m.state != constants.StatePending {
		t.Fatalf("state = %d, want pending", m.state)
	}
	if cmd == nil {
		t.Error("submit should return spinner and listener commands")
	}
	if !strings.Contains(m.View(), constants.MsgPlanning) {
		t.Error("pending view should show the planning message")
	}

	// a second submit while pending is ignored
	next, _ = m.submit()
	m = next.(Model)
	if m.state != constants.StatePending {
		t.Errorf("state = %d after duplicate submit, want pending", m.state)
	}

	close(p.release)
	ctrl.Wait()
	if got := p.Calls(); got != 1 {
		t.Errorf("planner calls = %d, want 1", got)
	}

	next, _ = m.Update(planUpdateMsg{state: ctrl.Current(), ok: true})
	m = next.(Model)
	if m.state != constants.StateItinerary {
		t.Fatalf("state = %d, want itinerary", m.state)
	}

	out := m.View()
	for _, want := range []string{"Rome", "Day 1", "Colosseum", "Historic Site", "Day 2", constants.MsgNoPlacesForDay, "packed pace", "Good food."} {
		if !strings.Contains(out, want) {
			t.Errorf("itinerary view missing %q", want)
		}
	}
}

func TestExplainToggle(t *testing.T) {
	p := &stubPlanner{plan: romePlan()}
	m, ctrl := newTestModel(t, p)
	m.draft.Query = "Rome"

	next, _ := m.submit()
	m = next.(Model)
	ctrl.Wait()
	next, _ = m.Update(planUpdateMsg{state: ctrl.Current(), ok: true})
	m = next.(Model)

	if !strings.Contains(m.View(), "Old stones.") {
		t.Fatal("explanation should be visible by default")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	m = next.(Model)
	if strings.Contains(m.View(), "Old stones.") {
		t.Error("explanation should be hidden after toggle")
	}
}

func TestSubmit_Failure(t *testing.T) {
	p := &stubPlanner{err: errors.New("connection refused")}
	m, ctrl := newTestModel(t, p)
	m.draft.Query = "Tokyo"

	next, _ := m.submit()
	m = next.(Model)
	ctrl.Wait()

	next, _ = m.Update(planUpdateMsg{state: ctrl.Current(), ok: true})
	m = next.(Model)
	if m.state != constants.StateFailed {
		t.Fatalf("state = %d, want failed", m.state)
	}
	if !strings.Contains(m.View(), constants.MsgPlanFailed) {
		t.Error("failed view should show the failure message")
	}
	if strings.Contains(m.View(), "connection refused") {
		t.Error("underlying cause must not reach the view")
	}

	// retry issues a fresh request
	p.err = nil
	p.plan = romePlan()
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(Model)
	if m.state != constants.StatePending {
		t.Errorf("state = %d after retry, want pending", m.state)
	}
	ctrl.Wait()
}

func TestPendingUpdateKeepsListening(t *testing.T) {
	p := &stubPlanner{plan: romePlan(), release: make(chan struct{})}
	m, ctrl := newTestModel(t, p)
	m.draft.Query = "Rome"

	next, _ := m.submit()
	m = next.(Model)

	next, cmd := m.Update(planUpdateMsg{state: session.State{Kind: session.Pending}, ok: true})
	m = next.(Model)
	if m.state != constants.StatePending || cmd == nil {
		t.Error("a pending update should keep the screen pending and re-subscribe")
	}

	close(p.release)
	ctrl.Wait()
}

func TestQuitDisposesController(t *testing.T) {
	p := &stubPlanner{plan: romePlan(), release: make(chan struct{})}
	m, ctrl := newTestModel(t, p)
	m.draft.Query = "Rome"

	next, _ := m.submit()
	m = next.(Model)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if !ctrl.Disposed() {
		t.Error("controller should be disposed on quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	ctrl.Wait()
	if got := ctrl.Current().Kind; got != session.Pending {
		t.Errorf("disposed controller state = %s, want pending (late result dropped)", got)
	}

	next, _ = m.Update(planUpdateMsg{ok: false})
	if next.(Model).state != constants.StatePending {
		t.Error("closed update channel should not change screen state")
	}
}
