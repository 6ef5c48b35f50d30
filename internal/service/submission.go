package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dtroode/rewards-server/internal/hasher"
	"github.com/dtroode/rewards-server/internal/logger"
	"github.com/dtroode/rewards-server/internal/model"
)

// DefaultPointsPerSubmission is the reward for one accepted submission.
const DefaultPointsPerSubmission int64 = 10

// Submission accepts anonymized transactions from consenting users.
type Submission struct {
	transactor          model.Transactor
	limiter             model.RateLimiter
	logger              *logger.Logger
	pointsPerSubmission int64
	now                 func() time.Time
}

// NewSubmission creates the submission service. A nil limiter disables rate limiting
// and a non-positive pointsPerSubmission falls back to DefaultPointsPerSubmission.
func NewSubmission(
	transactor model.Transactor,
	limiter model.RateLimiter,
	logger *logger.Logger,
	pointsPerSubmission int64,
) *Submission {
	if pointsPerSubmission <= 0 {
		pointsPerSubmission = DefaultPointsPerSubmission
	}
	return &Submission{
		transactor:          transactor,
		limiter:             limiter,
		logger:              logger,
		pointsPerSubmission: pointsPerSubmission,
		now:                 time.Now,
	}
}

// Submit stores an anonymized copy of a transaction and credits points, but
// only while the user's consent is active. Consent is read under the same
// per-user lock that writes the record, so a concurrent withdrawal either
// sweeps the new record or causes it to be skipped.
func (s *Submission) Submit(ctx context.Context, userID model.UserID, params model.SubmitParams) (model.SubmitResult, error) {
	amount, err := params.Validate()
	if err != nil {
		return model.SubmitResult{}, err
	}

	if err := s.allow(ctx, userID); err != nil {
		return model.SubmitResult{}, err
	}

	record := model.AnonymizedRecord{
		HashedUserID:     hasher.Hash(userID),
		Amount:           amount,
		Category:         strings.TrimSpace(params.Category),
		City:             strings.TrimSpace(params.City),
		Inventory:        params.Inventory,
		TransactionMonth: model.TransactionMonth(s.now()),
	}

	var result model.SubmitResult
	err = s.transactor.WithUserLock(ctx, userID, func(ctx context.Context, uow model.UnitOfWork) error {
		consent, err := uow.Consents().Get(ctx, userID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}
		if !consent.ConsentGiven {
			result = model.SubmitResult{Reason: model.ReasonConsentNotGiven}
			return nil
		}

		if _, err := uow.Anonymized().Create(ctx, record); err != nil {
			return err
		}
		if _, err := uow.Consents().AddPoints(ctx, userID, s.pointsPerSubmission); err != nil {
			return err
		}

		result = model.SubmitResult{Success: true, PointsEarned: s.pointsPerSubmission}
		return nil
	})
	if err != nil {
		return model.SubmitResult{}, storageError("submit data", err)
	}

	if result.Success {
		s.logger.Info("submission accepted", "user_id", userID, "points_earned", result.PointsEarned)
	} else {
		s.logger.Info("submission skipped", "user_id", userID, "reason", result.Reason)
	}

	return result, nil
}

func (s *Submission) allow(ctx context.Context, userID model.UserID) error {
	if s.limiter == nil {
		return nil
	}
	ok, err := s.limiter.Allow(ctx, userID)
	if err != nil {
		s.logger.Warn("rate limiter unavailable, allowing submission", "error", err)
		return nil
	}
	if !ok {
		return model.ErrRateLimited
	}
	return nil
}
