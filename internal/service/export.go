package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dtroode/rewards-server/internal/logger"
	"github.com/dtroode/rewards-server/internal/model"
)

// DefaultMinGroupSize is the smallest number of distinct contributors a
// (category, city) group needs to be published in an export.
const DefaultMinGroupSize = 5

// Export builds monthly market reports from anonymized records and uploads
// them to object storage.
type Export struct {
	anonymizedStore model.AnonymizedStore
	storage         model.ObjectStorage
	logger          *logger.Logger
	minGroupSize    int
	now             func() time.Time
}

// NewExport creates an export service. A minGroupSize below one falls back
// to DefaultMinGroupSize.
func NewExport(
	anonymizedStore model.AnonymizedStore,
	storage model.ObjectStorage,
	logger *logger.Logger,
	minGroupSize int,
) *Export {
	if minGroupSize < 1 {
		minGroupSize = DefaultMinGroupSize
	}
	return &Export{
		anonymizedStore: anonymizedStore,
		storage:         storage,
		logger:          logger,
		minGroupSize:    minGroupSize,
		now:             time.Now,
	}
}

// ExportPreviousMonth exports the calendar month before now.
func (s *Export) ExportPreviousMonth(ctx context.Context) (model.MarketReport, error) {
	return s.ExportMonth(ctx, model.PreviousMonth(s.now()))
}

// ExportMonth aggregates the month's anonymized records per (category, city),
// drops groups with fewer distinct contributors than the minimum group size,
// and uploads the report.
func (s *Export) ExportMonth(ctx context.Context, month string) (model.MarketReport, error) {
	if !model.ValidMonth(month) {
		return model.MarketReport{}, fmt.Errorf("%w: month %q is not YYYY-MM", model.ErrMalformedInput, month)
	}

	records, err := s.anonymizedStore.ListByMonth(ctx, month)
	if err != nil {
		return model.MarketReport{}, storageError("list anonymized records", err)
	}

	report := BuildMarketReport(month, records, s.minGroupSize)
	report.GeneratedAt = s.now().UTC()

	payload, err := json.Marshal(report)
	if err != nil {
		return model.MarketReport{}, fmt.Errorf("failed to encode market report: %w", err)
	}

	key := model.ExportKey(month)
	if err := s.storage.Upload(ctx, key, bytes.NewReader(payload), int64(len(payload)), "application/json"); err != nil {
		return model.MarketReport{}, fmt.Errorf("failed to upload market report: %w", err)
	}

	s.logger.Info("market report exported",
		"month", month,
		"key", key,
		"segments", len(report.Segments),
		"suppressed_segments", report.SuppressedSegments,
	)

	return report, nil
}

type segmentKey struct {
	category string
	city     string
}

// BuildMarketReport groups records and applies small-group suppression.
// A group is published only when at least minGroupSize distinct hashed user
// ids contributed to it, so repeated submissions by one person never make a
// group large enough on their own.
func BuildMarketReport(month string, records []model.AnonymizedRecord, minGroupSize int) model.MarketReport {
	groups := make(map[segmentKey]*model.MarketSegment)
	contributors := make(map[segmentKey]map[string]struct{})
	for _, r := range records {
		key := segmentKey{category: r.Category, city: r.City}
		seg, ok := groups[key]
		if !ok {
			seg = &model.MarketSegment{Category: r.Category, City: r.City, TotalAmount: decimal.Zero}
			groups[key] = seg
			contributors[key] = make(map[string]struct{})
		}
		if _, seen := contributors[key][r.HashedUserID]; !seen {
			contributors[key][r.HashedUserID] = struct{}{}
			seg.Contributors++
		}
		seg.Transactions++
		seg.TotalAmount = seg.TotalAmount.Add(r.Amount)
		seg.LineItems += int64(len(r.Inventory))
	}

	report := model.MarketReport{
		Month:        month,
		MinGroupSize: minGroupSize,
		Segments:     make([]model.MarketSegment, 0, len(groups)),
	}
	for _, seg := range groups {
		if seg.Contributors < int64(minGroupSize) {
			report.SuppressedSegments++
			report.SuppressedRecords += seg.Transactions
			continue
		}
		seg.AverageAmount = seg.TotalAmount.Div(decimal.NewFromInt(seg.Transactions)).Round(2)
		report.Segments = append(report.Segments, *seg)
	}

	sort.Slice(report.Segments, func(i, j int) bool {
		a, b := report.Segments[i], report.Segments[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.City < b.City
	})

	return report
}
