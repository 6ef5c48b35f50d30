package handler

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	rewardsv1 "github.com/dtroode/rewards-server/api/rewards/v1"
	grpcctx "github.com/dtroode/rewards-server/internal/api/grpc/context"
	"github.com/dtroode/rewards-server/internal/model"
	"github.com/dtroode/rewards-server/internal/testutil"
)

type mockConsentService struct {
	mock.Mock
}

func (m *mockConsentService) GetConsent(ctx context.Context, userID model.UserID) (model.ConsentState, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.ConsentState), args.Error(1)
}

func (m *mockConsentService) UpdateConsent(ctx context.Context, userID model.UserID, given bool) error {
	args := m.Called(ctx, userID, given)
	return args.Error(0)
}

func (m *mockConsentService) GetPoints(ctx context.Context, userID model.UserID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockSubmissionService struct {
	mock.Mock
}

func (m *mockSubmissionService) Submit(ctx context.Context, userID model.UserID, params model.SubmitParams) (model.SubmitResult, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(model.SubmitResult), args.Error(1)
}

func newHandler(t *testing.T) (*Rewards, *mockConsentService, *mockSubmissionService) {
	t.Helper()
	cs := &mockConsentService{}
	ss := &mockSubmissionService{}
	t.Cleanup(func() {
		cs.AssertExpectations(t)
		ss.AssertExpectations(t)
	})
	return NewRewards(cs, ss, grpcctx.NewManager(), testutil.MakeNoopLogger()), cs, ss
}

func authed(userID model.UserID) context.Context {
	return grpcctx.NewManager().SetUserIDToContext(context.Background(), userID)
}

func TestRewards_Unauthenticated(t *testing.T) {
	h, _, _ := newHandler(t)
	ctx := context.Background()

	_, err := h.GetConsent(ctx, &rewardsv1.GetConsentRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = h.UpdateConsent(ctx, &rewardsv1.UpdateConsentRequest{ConsentGiven: true})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = h.SubmitData(ctx, &rewardsv1.SubmitDataRequest{Amount: "1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = h.GetPoints(ctx, &rewardsv1.GetPointsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRewards_GetConsent(t *testing.T) {
	h, cs, _ := newHandler(t)
	date := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cs.On("GetConsent", mock.Anything, model.UserID(42)).
		Return(model.ConsentState{ConsentGiven: true, RewardPoints: 20, ConsentDate: &date}, nil)

	resp, err := h.GetConsent(authed(42), &rewardsv1.GetConsentRequest{})
	require.NoError(t, err)
	assert.True(t, resp.ConsentGiven)
	assert.Equal(t, int64(20), resp.RewardPoints)
	require.NotNil(t, resp.GetConsentDate())
	assert.True(t, date.Equal(resp.GetConsentDate().AsTime()))
}

func TestRewards_UpdateConsent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, cs, _ := newHandler(t)
		cs.On("UpdateConsent", mock.Anything, model.UserID(42), false).Return(nil)

		resp, err := h.UpdateConsent(authed(42), &rewardsv1.UpdateConsentRequest{ConsentGiven: false})
		require.NoError(t, err)
		assert.True(t, resp.Success)
	})

	t.Run("storage unavailable", func(t *testing.T) {
		h, cs, _ := newHandler(t)
		cs.On("UpdateConsent", mock.Anything, model.UserID(42), true).Return(model.ErrStorageUnavailable)

		_, err := h.UpdateConsent(authed(42), &rewardsv1.UpdateConsentRequest{ConsentGiven: true})
		assert.Equal(t, codes.Unavailable, status.Code(err))
	})
}

func TestRewards_SubmitData(t *testing.T) {
	t.Run("converts inventory", func(t *testing.T) {
		h, _, ss := newHandler(t)
		ss.On("Submit", mock.Anything, model.UserID(42), mock.MatchedBy(func(p model.SubmitParams) bool {
			return p.Amount == "12.50" && p.Category == "groceries" && len(p.Inventory) == 1 &&
				p.Inventory[0].UnitPrice.Equal(decimal.RequireFromString("6.25")) &&
				p.Inventory[0].Quantity.Equal(decimal.NewFromInt(2)) &&
				p.Inventory[0].Promotion
		})).Return(model.SubmitResult{Success: true, PointsEarned: 10}, nil)

		resp, err := h.SubmitData(authed(42), &rewardsv1.SubmitDataRequest{
			Amount:   "12.50",
			Category: "groceries",
			City:     "Porto",
			Inventory: []*rewardsv1.LineItem{{
				Description: "cheese",
				Quantity:    "2",
				UnitPrice:   "6.25",
				Total:       "12.50",
				Promotion:   true,
			}},
		})
		require.NoError(t, err)
		assert.True(t, proto.Equal(&rewardsv1.SubmitDataResponse{Success: true, PointsEarned: 10}, resp))
	})

	t.Run("consent not given is not an error", func(t *testing.T) {
		h, _, ss := newHandler(t)
		ss.On("Submit", mock.Anything, model.UserID(42), mock.Anything).
			Return(model.SubmitResult{Reason: model.ReasonConsentNotGiven}, nil)

		resp, err := h.SubmitData(authed(42), &rewardsv1.SubmitDataRequest{Amount: "1", Category: "x"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "consent not given", resp.Reason)
	})

	t.Run("bad line item decimal", func(t *testing.T) {
		h, _, _ := newHandler(t)

		_, err := h.SubmitData(authed(42), &rewardsv1.SubmitDataRequest{
			Amount:    "1",
			Category:  "x",
			Inventory: []*rewardsv1.LineItem{{Total: "abc"}},
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("rate limited", func(t *testing.T) {
		h, _, ss := newHandler(t)
		ss.On("Submit", mock.Anything, model.UserID(42), mock.Anything).Return(model.SubmitResult{}, model.ErrRateLimited)

		_, err := h.SubmitData(authed(42), &rewardsv1.SubmitDataRequest{Amount: "1", Category: "x"})
		assert.Equal(t, codes.ResourceExhausted, status.Code(err))
	})
}

func TestRewards_GetPoints(t *testing.T) {
	h, cs, _ := newHandler(t)
	cs.On("GetPoints", mock.Anything, model.UserID(42)).Return(int64(30), nil)

	resp, err := h.GetPoints(authed(42), &rewardsv1.GetPointsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(30), resp.Points)
}
