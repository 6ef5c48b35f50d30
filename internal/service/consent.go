package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/rewards-server/internal/hasher"
	"github.com/dtroode/rewards-server/internal/logger"
	"github.com/dtroode/rewards-server/internal/model"
)

// Consent owns the consent flag and reward balance of each user.
type Consent struct {
	consentStore model.ConsentStore
	transactor   model.Transactor
	publisher    model.EventPublisher
	logger       *logger.Logger
	now          func() time.Time
}

// NewConsent creates the consent service. A nil publisher disables consent events.
func NewConsent(
	consentStore model.ConsentStore,
	transactor model.Transactor,
	publisher model.EventPublisher,
	logger *logger.Logger,
) *Consent {
	return &Consent{
		consentStore: consentStore,
		transactor:   transactor,
		publisher:    publisher,
		logger:       logger,
		now:          time.Now,
	}
}

// GetConsent returns the user's consent state. A user without a record has
// the default state: no consent and zero points.
func (s *Consent) GetConsent(ctx context.Context, userID model.UserID) (model.ConsentState, error) {
	record, err := s.consentStore.Get(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.DefaultConsentState(), nil
	}
	if err != nil {
		return model.ConsentState{}, storageError("get consent", err)
	}

	return record.State(), nil
}

// GetPoints returns the reward balance, or zero for an unknown user.
func (s *Consent) GetPoints(ctx context.Context, userID model.UserID) (int64, error) {
	record, err := s.consentStore.Get(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, storageError("get reward points", err)
	}

	return record.RewardPoints, nil
}

// UpdateConsent sets the consent flag. Withdrawal deletes every anonymized
// record of the user in the same transaction that flips the flag, whether or
// not the flag was already false. Points are kept.
func (s *Consent) UpdateConsent(ctx context.Context, userID model.UserID, given bool) error {
	hashedUserID := hasher.Hash(userID)

	var (
		changed bool
		deleted int64
	)
	err := s.transactor.WithUserLock(ctx, userID, func(ctx context.Context, uow model.UnitOfWork) error {
		record, err := uow.Consents().Get(ctx, userID)
		if errors.Is(err, model.ErrNotFound) {
			record = model.ConsentRecord{UserID: userID}
		} else if err != nil {
			return err
		}

		var updated model.ConsentRecord
		updated, changed = record.ApplyConsent(given, s.now().UTC())
		if changed {
			if err := uow.Consents().Save(ctx, updated); err != nil {
				return err
			}
		}

		if !given {
			deleted, err = uow.Anonymized().DeleteByHashedUserID(ctx, hashedUserID)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return storageError("update consent", err)
	}

	s.logger.Info("consent updated", "user_id", userID, "consent_given", given, "changed", changed, "records_deleted", deleted)

	if changed {
		s.publish(ctx, model.ConsentChanged{
			EventID:        uuid.New(),
			HashedUserID:   hashedUserID,
			ConsentGiven:   given,
			RecordsDeleted: deleted,
			OccurredAt:     s.now().UTC(),
		})
	}

	return nil
}

func (s *Consent) publish(ctx context.Context, event model.ConsentChanged) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishConsentChanged(ctx, event); err != nil {
		s.logger.Warn("failed to publish consent event", "event_id", event.EventID, "error", err)
	}
}
