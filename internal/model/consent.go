package model

import (
	"context"
	"strconv"
	"time"
)

// UserID identifies an account holder. It is owned by the account subsystem;
// this service only references it.
type UserID int64

// String returns the decimal representation used for hashing and metadata.
func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseUserID parses the decimal representation of a user id.
func ParseUserID(s string) (UserID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return UserID(v), nil
}

// ConsentStore persists one consent record per user.
type ConsentStore interface {
	Get(ctx context.Context, userID UserID) (ConsentRecord, error)
	Save(ctx context.Context, record ConsentRecord) error
	AddPoints(ctx context.Context, userID UserID, delta int64) (int64, error)
}

// ConsentRecord is the durable consent state of a user.
// A missing record means no consent and zero points.
type ConsentRecord struct {
	UserID         UserID
	ConsentGiven   bool
	ConsentDate    *time.Time
	WithdrawalDate *time.Time
	RewardPoints   int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ConsentState is the view of a consent record returned to callers.
type ConsentState struct {
	ConsentGiven bool
	RewardPoints int64
	ConsentDate  *time.Time
}

// DefaultConsentState is the state of a user that never touched consent.
func DefaultConsentState() ConsentState {
	return ConsentState{}
}

// State projects the record onto the caller-facing view.
func (r ConsentRecord) State() ConsentState {
	return ConsentState{
		ConsentGiven: r.ConsentGiven,
		RewardPoints: r.RewardPoints,
		ConsentDate:  r.ConsentDate,
	}
}

// ApplyConsent returns the record after setting consent to given at now and
// reports whether the flag actually changed. Dates are stamped only on transitions.
func (r ConsentRecord) ApplyConsent(given bool, now time.Time) (ConsentRecord, bool) {
	if r.ConsentGiven == given {
		return r, false
	}

	r.ConsentGiven = given
	if given {
		r.ConsentDate = &now
	} else {
		r.WithdrawalDate = &now
	}
	r.UpdatedAt = now

	return r, true
}
