package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dtroode/rewards-server/internal/model"
)

var _ model.AnonymizedStore = (*AnonymizedRepository)(nil)

// AnonymizedRepository stores anonymous_market_data rows.
type AnonymizedRepository struct {
	db querier
}

func NewAnonymizedRepository(db *Connection) *AnonymizedRepository {
	return &AnonymizedRepository{
		db: db,
	}
}

func (r *AnonymizedRepository) Create(ctx context.Context, record model.AnonymizedRecord) (model.AnonymizedRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	inventory, err := encodeInventory(record.Inventory)
	if err != nil {
		return model.AnonymizedRecord{}, fmt.Errorf("failed to encode inventory: %w: %w", model.ErrMalformedInput, err)
	}

	query := `INSERT INTO anonymous_market_data (id, hashed_user_id, amount, category, city, inventory, transaction_month, created_at)
			  VALUES ($1, $2, $3::numeric, $4, $5, $6::jsonb, $7, COALESCE($8, NOW()))
			  RETURNING created_at`

	err = r.db.QueryRow(ctx, query,
		record.ID, record.HashedUserID, record.Amount.String(), record.Category, record.City,
		inventory, record.TransactionMonth, nullTime(record.CreatedAt),
	).Scan(&record.CreatedAt)
	if err != nil {
		return model.AnonymizedRecord{}, wrapError("create anonymized record", err)
	}

	return record, nil
}

// DeleteByHashedUserID returns the number of rows removed.
func (r *AnonymizedRepository) DeleteByHashedUserID(ctx context.Context, hashedUserID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM anonymous_market_data WHERE hashed_user_id = $1`, hashedUserID)
	if err != nil {
		return 0, wrapError("delete anonymized records", err)
	}

	return tag.RowsAffected(), nil
}

func (r *AnonymizedRepository) CountByHashedUserID(ctx context.Context, hashedUserID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM anonymous_market_data WHERE hashed_user_id = $1`, hashedUserID).Scan(&count)
	if err != nil {
		return 0, wrapError("count anonymized records", err)
	}

	return count, nil
}

// ListByMonth returns rows for a YYYY-MM month, oldest first.
func (r *AnonymizedRepository) ListByMonth(ctx context.Context, month string) ([]model.AnonymizedRecord, error) {
	query := `SELECT id, hashed_user_id, amount::text, category, city, inventory, transaction_month, created_at
			  FROM anonymous_market_data
			  WHERE transaction_month = $1
			  ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, month)
	if err != nil {
		return nil, wrapError("list anonymized records", err)
	}

	records, err := pgx.CollectRows(rows, scanAnonymized)
	if err != nil {
		return nil, wrapError("scan anonymized records", err)
	}

	return records, nil
}

func scanAnonymized(row pgx.CollectableRow) (model.AnonymizedRecord, error) {
	var (
		record    model.AnonymizedRecord
		amount    string
		inventory []byte
	)
	err := row.Scan(
		&record.ID, &record.HashedUserID, &amount, &record.Category, &record.City,
		&inventory, &record.TransactionMonth, &record.CreatedAt,
	)
	if err != nil {
		return model.AnonymizedRecord{}, err
	}

	record.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return model.AnonymizedRecord{}, fmt.Errorf("failed to parse amount %q: %w", amount, err)
	}
	if len(inventory) > 0 {
		if err := json.Unmarshal(inventory, &record.Inventory); err != nil {
			return model.AnonymizedRecord{}, fmt.Errorf("failed to decode inventory: %w", err)
		}
	}

	return record, nil
}

func encodeInventory(items []model.LineItem) (string, error) {
	if len(items) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
