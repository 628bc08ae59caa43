// Package session owns the lifecycle of a single trip-plan request.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/tripweaver/internal/constants"
	"github.com/julianstephens/tripweaver/internal/logger"
	"github.com/julianstephens/tripweaver/internal/models"
	"github.com/julianstephens/tripweaver/internal/request"
)

// Planner is the remote planning service as seen by the controller.
type Planner interface {
	Plan(ctx context.Context, req models.TripRequest) (models.TripPlan, error)
}

type Option func(*Controller)

// WithTimeout bounds each request. By default the controller relies on the
// planner's own timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.timeout = d
	}
}

// Controller allows at most one outstanding plan request. All state lives
// behind mu; the request goroutine only touches it to deliver its result.
type Controller struct {
	planner Planner
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	state    State
	last     models.TripRequest
	hasLast  bool
	disposed bool
	updates  chan State
	inflight sync.WaitGroup
}

func New(p Planner, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		planner: p,
		ctx:     ctx,
		cancel:  cancel,
		state:   State{Kind: Idle},
		updates: make(chan State, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit builds a request from f and starts it. It returns false, leaving the
// state untouched, when a request is already pending, the controller has been
// disposed, or the input is rejected. When it returns true the state is
// already Pending.
func (c *Controller) Submit(f request.Fields) bool {
	req, err := request.Build(f)
	if err != nil {
		if !errors.Is(err, request.ErrEmptyQuery) {
			logger.Warn("Rejected trip request", "error", err)
		}
		return false
	}

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return false
	}
	if c.state.Kind == Pending {
		c.mu.Unlock()
		logger.Debug("Ignoring submit while a plan request is pending")
		return false
	}
	c.state = State{Kind: Pending}
	c.last = req
	c.hasLast = true
	c.inflight.Add(1)
	c.publish(c.state)
	c.mu.Unlock()

	go c.run(req)
	return true
}

// Current returns a snapshot of the session state.
func (c *Controller) Current() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastRequest returns the request behind the current state, if any.
func (c *Controller) LastRequest() (models.TripRequest, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.hasLast
}

// Updates delivers state transitions. The channel holds only the most recent
// undelivered state and is closed by Dispose.
func (c *Controller) Updates() <-chan State {
	return c.updates
}

// Wait blocks until no request is in flight.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Dispose cancels any in-flight request and guarantees its result is never
// applied. Safe to call more than once.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.disposed = true
	c.cancel()
	close(c.updates)
}

// Disposed reports whether Dispose has been called.
func (c *Controller) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

func (c *Controller) run(req models.TripRequest) {
	defer c.inflight.Done()

	plan, err := c.call(req)

	next := State{Kind: Succeeded, Plan: plan}
	if err != nil {
		logger.Error("Plan request failed", "error", err, "data_source", req.DataSource)
		next = State{Kind: Failed, Message: constants.MsgPlanFailed}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		logger.Debug("Dropping plan result for disposed session", "state", next.Kind)
		return
	}
	c.state = next
	c.publish(next)
}

// call invokes the planner, turning panics and invalid plans into errors.
func (c *Controller) call(req models.TripRequest) (plan models.TripPlan, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("planner panicked: %v", r)
		}
	}()

	ctx := c.ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	plan, err = c.planner.Plan(ctx, req)
	if err != nil {
		return models.TripPlan{}, err
	}
	if err := plan.Validate(); err != nil {
		return models.TripPlan{}, fmt.Errorf("invalid plan: %w", err)
	}
	plan.Normalize()
	return plan, nil
}

// publish must be called with mu held. Older undelivered states are replaced.
func (c *Controller) publish(s State) {
	select {
	case <-c.updates:
	default:
	}
	select {
	case c.updates <- s:
	default:
	}
}
