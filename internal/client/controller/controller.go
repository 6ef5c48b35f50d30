package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/dtroode/rewards-server/internal/logger"
)

// API is the slice of the rewards service the controller talks to.
type API interface {
	GetConsent(ctx context.Context) (Snapshot, error)
	UpdateConsent(ctx context.Context, given bool) error
}

// Session reports whether the acting identity is signed in.
type Session interface {
	Authenticated() bool
}

// Confirmer asks the user to confirm a withdrawal, which deletes their contributed data.
type Confirmer interface {
	ConfirmWithdrawal(ctx context.Context) (bool, error)
}

// Notifier surfaces failures to the user.
type Notifier interface {
	NotifyFailure(err error)
}

// Controller drives the consent toggle for one signed-in user. It is safe for
// concurrent use and allows one mutation at a time.
type Controller struct {
	mu    sync.Mutex
	state State

	api       API
	session   Session
	confirmer Confirmer
	notifier  Notifier
	logger    *logger.Logger
}

// New creates a controller in the Unknown state. Call Refresh to load it.
func New(api API, session Session, confirmer Confirmer, notifier Notifier, logger *logger.Logger) *Controller {
	return &Controller{
		api:       api,
		session:   session,
		confirmer: confirmer,
		notifier:  notifier,
		logger:    logger,
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Enabled reports whether a toggle would be accepted right now.
func (c *Controller) Enabled() bool {
	return c.session.Authenticated() && c.State().Phase == PhaseSynced
}

// Refresh reads the consent state from the server.
func (c *Controller) Refresh(ctx context.Context) error {
	if !c.session.Authenticated() {
		return ErrNotAuthenticated
	}
	if c.State().Phase == PhasePending {
		return ErrMutationInFlight
	}

	snap, err := c.api.GetConsent(ctx)
	if err != nil {
		c.apply(Event{Kind: EventFetchFailed})
		return fmt.Errorf("failed to load consent: %w", err)
	}
	if _, err := c.apply(Event{Kind: EventFetched, Snapshot: snap}); err != nil {
		return err
	}
	return nil
}

// Toggle flips the current consent flag.
func (c *Controller) Toggle(ctx context.Context) error {
	given, ok := c.State().ConsentGiven()
	if !ok {
		return ErrNotReady
	}
	return c.SetConsent(ctx, !given)
}

// SetConsent changes the consent flag. Setting the current value is a no-op.
func (c *Controller) SetConsent(ctx context.Context, given bool) error {
	if !c.session.Authenticated() {
		return ErrNotAuthenticated
	}

	current := c.State()
	switch current.Phase {
	case PhaseUnknown:
		return ErrNotReady
	case PhasePending:
		return ErrMutationInFlight
	}
	if current.Server.ConsentGiven == given {
		return nil
	}

	if !given {
		ok, err := c.confirmer.ConfirmWithdrawal(ctx)
		if err != nil {
			return fmt.Errorf("failed to confirm withdrawal: %w", err)
		}
		if !ok {
			return ErrWithdrawalDeclined
		}
	}

	// Re-checked under the lock: another call may have started meanwhile.
	next, err := c.apply(Event{Kind: EventToggled, Value: given})
	if err != nil {
		return err
	}
	if next.Phase != PhasePending {
		return nil
	}

	if err := c.api.UpdateConsent(ctx, given); err != nil {
		c.apply(Event{Kind: EventMutationFailed})
		err = fmt.Errorf("failed to update consent: %w", err)
		c.notify(err)
		return err
	}

	snap, err := c.api.GetConsent(ctx)
	if err != nil {
		c.apply(Event{Kind: EventReloadFailed})
		err = fmt.Errorf("consent updated but reload failed: %w", err)
		c.notify(err)
		return err
	}
	_, err = c.apply(Event{Kind: EventMutationConfirmed, Snapshot: snap})
	return err
}

// Reset drops the local view, e.g. when the session ends.
func (c *Controller) Reset() {
	c.apply(Event{Kind: EventReset})
}

func (c *Controller) apply(e Event) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := Transition(c.state, e)
	if err != nil {
		return c.state, err
	}
	if next.Phase != c.state.Phase {
		c.logger.Debug("consent state changed", "from", c.state.Phase, "to", next.Phase)
	}
	c.state = next
	return next, nil
}

func (c *Controller) notify(err error) {
	if c.notifier != nil {
		c.notifier.NotifyFailure(err)
	}
}
