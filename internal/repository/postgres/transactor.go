package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/rewards-server/internal/logger"
	"github.com/dtroode/rewards-server/internal/model"
)

var _ model.Transactor = (*Transactor)(nil)

// Transactor runs units of work in a transaction holding a per-user advisory lock.
type Transactor struct {
	db     *Connection
	logger *logger.Logger
}

func NewTransactor(db *Connection, logger *logger.Logger) *Transactor {
	return &Transactor{
		db:     db,
		logger: logger,
	}
}

type unitOfWork struct {
	consents   *ConsentRepository
	anonymized *AnonymizedRepository
}

func (u *unitOfWork) Consents() model.ConsentStore {
	return u.consents
}

func (u *unitOfWork) Anonymized() model.AnonymizedStore {
	return u.anonymized
}

// WithUserLock runs fn in a transaction holding the advisory lock keyed by the user id.
// The lock is released on commit or rollback.
func (t *Transactor) WithUserLock(ctx context.Context, userID model.UserID, fn func(ctx context.Context, uow model.UnitOfWork) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return wrapError("begin transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			t.logger.Error("failed to rollback transaction", "error", rbErr)
		}
	}()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(userID)); err != nil {
		return wrapError("acquire user lock", err)
	}

	uow := &unitOfWork{
		consents:   &ConsentRepository{db: tx},
		anonymized: &AnonymizedRepository{db: tx},
	}
	if err := fn(ctx, uow); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapError("commit transaction", err)
	}

	return nil
}
