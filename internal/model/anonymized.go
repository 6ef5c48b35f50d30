package model

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnonymizedStore persists anonymized transaction facts keyed by pseudonymous id only.
// There is no per-record delete: rows leave the store through the bulk sweep.
type AnonymizedStore interface {
	Create(ctx context.Context, record AnonymizedRecord) (AnonymizedRecord, error)
	DeleteByHashedUserID(ctx context.Context, hashedUserID string) (int64, error)
	CountByHashedUserID(ctx context.Context, hashedUserID string) (int64, error)
	ListByMonth(ctx context.Context, month string) ([]AnonymizedRecord, error)
}

// AnonymizedRecord is a stored transaction fact with no identifying information.
type AnonymizedRecord struct {
	ID               uuid.UUID
	HashedUserID     string
	Amount           decimal.Decimal
	Category         string
	City             string
	Inventory        []LineItem
	TransactionMonth string
	CreatedAt        time.Time
}

// LineItem is one line of a receipt.
type LineItem struct {
	Description string          `json:"description"`
	Brand       string          `json:"brand,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	Promotion   bool            `json:"promotion"`
}

// TransactionMonth formats t as YYYY-MM in UTC.
func TransactionMonth(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// PreviousMonth returns the YYYY-MM of the calendar month before t.
func PreviousMonth(t time.Time) string {
	t = t.UTC()
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return TransactionMonth(first.AddDate(0, -1, 0))
}

// ValidMonth reports whether s is a YYYY-MM month.
func ValidMonth(s string) bool {
	if len(s) != 7 {
		return false
	}
	_, err := time.Parse("2006-01", s)
	return err == nil
}
