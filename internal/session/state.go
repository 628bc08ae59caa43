package session

import "github.com/julianstephens/tripweaver/internal/models"

// Kind tags the session lifecycle stage.
type Kind int

const (
	Idle Kind = iota
	Pending
	Succeeded
	Failed
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is one of Idle, Pending, Succeeded(Plan) or Failed(Message).
// Plan is only meaningful when Kind is Succeeded, Message only when Failed.
type State struct {
	Kind    Kind
	Plan    models.TripPlan
	Message string
}

// Terminal reports whether the state ends a request.
func (s State) Terminal() bool {
	return s.Kind == Succeeded || s.Kind == Failed
}
