package postgres

import (
	"context"

	"github.com/dtroode/rewards-server/internal/model"
)

var _ model.ConsentStore = (*ConsentRepository)(nil)

// ConsentRepository stores user_consent rows.
type ConsentRepository struct {
	db querier
}

func NewConsentRepository(db *Connection) *ConsentRepository {
	return &ConsentRepository{
		db: db,
	}
}

// Get returns model.ErrNotFound when the user has no row.
func (r *ConsentRepository) Get(ctx context.Context, userID model.UserID) (model.ConsentRecord, error) {
	query := `SELECT user_id, consent_given, consent_date, withdrawal_date, reward_points, created_at, updated_at
			  FROM user_consent WHERE user_id = $1`

	var record model.ConsentRecord
	err := r.db.QueryRow(ctx, query, int64(userID)).Scan(
		&record.UserID, &record.ConsentGiven, &record.ConsentDate, &record.WithdrawalDate,
		&record.RewardPoints, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return model.ConsentRecord{}, wrapError("get consent", err)
	}

	return record, nil
}

// Save inserts or updates the consent flag and dates. Points are owned by AddPoints
// and are only written on insert.
func (r *ConsentRepository) Save(ctx context.Context, record model.ConsentRecord) error {
	query := `INSERT INTO user_consent (user_id, consent_given, consent_date, withdrawal_date, reward_points, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, COALESCE($6, NOW()), COALESCE($7, NOW()))
			  ON CONFLICT (user_id) DO UPDATE SET
			      consent_given = EXCLUDED.consent_given,
			      consent_date = EXCLUDED.consent_date,
			      withdrawal_date = EXCLUDED.withdrawal_date,
			      updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		int64(record.UserID), record.ConsentGiven, record.ConsentDate, record.WithdrawalDate,
		record.RewardPoints, nullTime(record.CreatedAt), nullTime(record.UpdatedAt),
	)
	if err != nil {
		return wrapError("save consent", err)
	}

	return nil
}

// AddPoints increments the balance, creating the row when absent, and returns the new total.
func (r *ConsentRepository) AddPoints(ctx context.Context, userID model.UserID, delta int64) (int64, error) {
	query := `INSERT INTO user_consent (user_id, reward_points)
			  VALUES ($1, $2)
			  ON CONFLICT (user_id) DO UPDATE SET
			      reward_points = user_consent.reward_points + EXCLUDED.reward_points,
			      updated_at = NOW()
			  RETURNING reward_points`

	var total int64
	if err := r.db.QueryRow(ctx, query, int64(userID), delta).Scan(&total); err != nil {
		return 0, wrapError("add reward points", err)
	}

	return total, nil
}
