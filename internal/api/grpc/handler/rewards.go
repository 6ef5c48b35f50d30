package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	rewardsv1 "github.com/dtroode/rewards-server/api/rewards/v1"
	"github.com/dtroode/rewards-server/internal/logger"
	"github.com/dtroode/rewards-server/internal/model"
)

// ConsentService is the consent side of the rewards API.
type ConsentService interface {
	GetConsent(ctx context.Context, userID model.UserID) (model.ConsentState, error)
	UpdateConsent(ctx context.Context, userID model.UserID, given bool) error
	GetPoints(ctx context.Context, userID model.UserID) (int64, error)
}

type SubmissionService interface {
	Submit(ctx context.Context, userID model.UserID, params model.SubmitParams) (model.SubmitResult, error)
}

// Rewards handles the rewards.v1.Rewards endpoints.
type Rewards struct {
	rewardsv1.UnimplementedRewardsServer
	consentService    ConsentService
	submissionService SubmissionService
	contextManager    model.ContextManager
	logger            *logger.Logger
}

// NewRewards creates the handler. Every method expects the user id set by the auth interceptor.
func NewRewards(
	consentService ConsentService,
	submissionService SubmissionService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Rewards {
	return &Rewards{
		consentService:    consentService,
		submissionService: submissionService,
		contextManager:    contextManager,
		logger:            logger,
	}
}

// GetConsent leaves consent_date unset when consent was never given.
func (h *Rewards) GetConsent(ctx context.Context, _ *rewardsv1.GetConsentRequest) (*rewardsv1.GetConsentResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	state, err := h.consentService.GetConsent(ctx, userID)
	if err != nil {
		h.logger.Error("Rewards handler: get consent failed", "user_id", userID, "error", err.Error())
		return nil, handleError(err)
	}

	resp := &rewardsv1.GetConsentResponse{
		ConsentGiven: state.ConsentGiven,
		RewardPoints: state.RewardPoints,
	}
	if state.ConsentDate != nil {
		resp.ConsentDate = timestamppb.New(*state.ConsentDate)
	}

	return resp, nil
}

func (h *Rewards) UpdateConsent(ctx context.Context, req *rewardsv1.UpdateConsentRequest) (*rewardsv1.UpdateConsentResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Debug("Rewards handler: processing update consent request", "user_id", userID, "consent_given", req.GetConsentGiven())

	if err := h.consentService.UpdateConsent(ctx, userID, req.GetConsentGiven()); err != nil {
		h.logger.Error("Rewards handler: update consent failed", "user_id", userID, "error", err.Error())
		return nil, handleError(err)
	}

	return &rewardsv1.UpdateConsentResponse{Success: true}, nil
}

// SubmitData reports a missing consent in the response, not as an error.
func (h *Rewards) SubmitData(ctx context.Context, req *rewardsv1.SubmitDataRequest) (*rewardsv1.SubmitDataResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	inventory, err := convertLineItems(req.GetInventory())
	if err != nil {
		return nil, handleError(err)
	}

	result, err := h.submissionService.Submit(ctx, userID, model.SubmitParams{
		Amount:    req.GetAmount(),
		Category:  req.GetCategory(),
		City:      req.GetCity(),
		Inventory: inventory,
	})
	if err != nil {
		h.logger.Warn("Rewards handler: submit data failed", "user_id", userID, "error", err.Error())
		return nil, handleError(err)
	}

	return &rewardsv1.SubmitDataResponse{
		Success:      result.Success,
		PointsEarned: result.PointsEarned,
		Reason:       result.Reason,
	}, nil
}

func (h *Rewards) GetPoints(ctx context.Context, _ *rewardsv1.GetPointsRequest) (*rewardsv1.GetPointsResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	points, err := h.consentService.GetPoints(ctx, userID)
	if err != nil {
		h.logger.Error("Rewards handler: get points failed", "user_id", userID, "error", err.Error())
		return nil, handleError(err)
	}

	return &rewardsv1.GetPointsResponse{Points: points}, nil
}

func (h *Rewards) userID(ctx context.Context) (model.UserID, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return 0, model.ErrUnauthenticated
	}
	return userID, nil
}

func convertLineItems(items []*rewardsv1.LineItem) ([]model.LineItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	out := make([]model.LineItem, 0, len(items))
	for i, item := range items {
		quantity, err := parseDecimal(item.GetQuantity())
		if err != nil {
			return nil, fmt.Errorf("%w: inventory[%d].quantity: %w", model.ErrMalformedInput, i, err)
		}
		unitPrice, err := parseDecimal(item.GetUnitPrice())
		if err != nil {
			return nil, fmt.Errorf("%w: inventory[%d].unitPrice: %w", model.ErrMalformedInput, i, err)
		}
		total, err := parseDecimal(item.GetTotal())
		if err != nil {
			return nil, fmt.Errorf("%w: inventory[%d].total: %w", model.ErrMalformedInput, i, err)
		}

		out = append(out, model.LineItem{
			Description: item.GetDescription(),
			Brand:       item.GetBrand(),
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Total:       total,
			Promotion:   item.GetPromotion(),
		})
	}

	return out, nil
}

// parseDecimal treats an empty string as zero.
func parseDecimal(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	return model.ParseDecimal(s)
}
