// Package controller keeps a client's view of the consent flag in step with the server.
//
// The view starts Unknown and is only ever seeded by a server read. A toggle
// applies the new value optimistically (Pending) until the server confirms it
// and a fresh read replaces it, or rejects it and the last synced value is
// restored.
package controller

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrNotReady           = errors.New("consent state not loaded yet")
	ErrMutationInFlight   = errors.New("consent change already in progress")
	ErrWithdrawalDeclined = errors.New("withdrawal not confirmed")
	ErrInvalidTransition  = errors.New("invalid transition")
)

type Phase int

const (
	PhaseUnknown Phase = iota
	PhaseSynced
	PhasePending
)

func (p Phase) String() string {
	switch p {
	case PhaseUnknown:
		return "unknown"
	case PhaseSynced:
		return "synced"
	case PhasePending:
		return "pending"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Snapshot is what the server reported on the last successful read.
type Snapshot struct {
	ConsentGiven bool
	RewardPoints int64
	ConsentDate  *time.Time
}

// State is Unknown, Synced(Server) or Pending(Optimistic, Server).
type State struct {
	Phase      Phase
	Server     Snapshot
	Optimistic bool
}

// ConsentGiven is the value to display. ok is false while nothing is known.
func (s State) ConsentGiven() (given bool, ok bool) {
	switch s.Phase {
	case PhaseSynced:
		return s.Server.ConsentGiven, true
	case PhasePending:
		return s.Optimistic, true
	default:
		return false, false
	}
}

type EventKind int

const (
	// EventFetched carries a successful server read.
	EventFetched EventKind = iota
	// EventFetchFailed records a failed server read.
	EventFetchFailed
	// EventToggled requests Value as the new consent flag.
	EventToggled
	// EventMutationConfirmed carries the re-read that follows an accepted change.
	EventMutationConfirmed
	// EventMutationFailed records a rejected change.
	EventMutationFailed
	// EventReloadFailed records a failed re-read after an accepted change.
	EventReloadFailed
	// EventReset forgets everything, e.g. on sign-out.
	EventReset
)

type Event struct {
	Kind     EventKind
	Snapshot Snapshot
	Value    bool
}

// Transition is the pure state machine. It never mutates s and returns s
// unchanged together with an error when the event is not allowed.
func Transition(s State, e Event) (State, error) {
	if e.Kind == EventReset {
		return State{}, nil
	}

	switch s.Phase {
	case PhaseUnknown:
		switch e.Kind {
		case EventFetched:
			return State{Phase: PhaseSynced, Server: e.Snapshot}, nil
		case EventFetchFailed:
			return s, nil
		case EventToggled:
			return s, ErrNotReady
		}

	case PhaseSynced:
		switch e.Kind {
		case EventFetched:
			return State{Phase: PhaseSynced, Server: e.Snapshot}, nil
		case EventFetchFailed:
			return s, nil
		case EventToggled:
			if e.Value == s.Server.ConsentGiven {
				return s, nil
			}
			return State{Phase: PhasePending, Server: s.Server, Optimistic: e.Value}, nil
		}

	case PhasePending:
		switch e.Kind {
		case EventMutationConfirmed:
			return State{Phase: PhaseSynced, Server: e.Snapshot}, nil
		case EventMutationFailed:
			return State{Phase: PhaseSynced, Server: s.Server}, nil
		case EventReloadFailed:
			// The change went through but the follow-up read did not.
			return State{}, nil
		case EventFetchFailed:
			// A read that started before the toggle; the mutation still owns the state.
			return s, nil
		case EventToggled, EventFetched:
			return s, ErrMutationInFlight
		}
	}

	return s, fmt.Errorf("%w: event %d in phase %s", ErrInvalidTransition, e.Kind, s.Phase)
}
