package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketSegment aggregates one (category, city) group of a month.
// Contributors counts distinct pseudonymous submitters, not transactions.
type MarketSegment struct {
	Category      string          `json:"category"`
	City          string          `json:"city"`
	Contributors  int64           `json:"contributors"`
	Transactions  int64           `json:"transactions"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AverageAmount decimal.Decimal `json:"average_amount"`
	LineItems     int64           `json:"line_items"`
}

// MarketReport is the monthly export artifact. It carries no pseudonymous ids.
type MarketReport struct {
	Month              string          `json:"month"`
	GeneratedAt        time.Time       `json:"generated_at"`
	MinGroupSize       int             `json:"min_group_size"`
	Segments           []MarketSegment `json:"segments"`
	SuppressedSegments int             `json:"suppressed_segments"`
	SuppressedRecords  int64           `json:"suppressed_records"`
}

// ExportKey is the object key of the report for month.
func ExportKey(month string) string {
	return "exports/market-data-" + month + ".json"
}
