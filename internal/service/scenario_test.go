package service

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/rewards-server/internal/hasher"
	"github.com/dtroode/rewards-server/internal/model"
	"github.com/dtroode/rewards-server/internal/repository/memory"
	"github.com/dtroode/rewards-server/internal/testutil"
)

func TestScenario_GrantSubmitWithdraw(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	log := testutil.MakeNoopLogger()
	consent := NewConsent(store.Consents(), store, nil, log)
	submission := NewSubmission(store, nil, log, 10)

	const user model.UserID = 42

	state, err := consent.GetConsent(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConsentState(), state)

	got, err := submission.Submit(ctx, user, validParams())
	require.NoError(t, err)
	assert.Equal(t, model.SubmitResult{Reason: model.ReasonConsentNotGiven}, got)

	require.NoError(t, consent.UpdateConsent(ctx, user, true))

	state, err = consent.GetConsent(ctx, user)
	require.NoError(t, err)
	assert.True(t, state.ConsentGiven)
	require.NotNil(t, state.ConsentDate)
	firstConsentDate := *state.ConsentDate

	got, err = submission.Submit(ctx, user, validParams())
	require.NoError(t, err)
	assert.Equal(t, model.SubmitResult{Success: true, PointsEarned: 10}, got)

	count, err := store.Anonymized().CountByHashedUserID(ctx, hasher.Hash(user))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	points, err := consent.GetPoints(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(10), points)

	// granting again keeps the original consent date
	require.NoError(t, consent.UpdateConsent(ctx, user, true))
	state, err = consent.GetConsent(ctx, user)
	require.NoError(t, err)
	assert.True(t, firstConsentDate.Equal(*state.ConsentDate))

	require.NoError(t, consent.UpdateConsent(ctx, user, false))

	count, err = store.Anonymized().CountByHashedUserID(ctx, hasher.Hash(user))
	require.NoError(t, err)
	assert.Zero(t, count)

	state, err = consent.GetConsent(ctx, user)
	require.NoError(t, err)
	assert.False(t, state.ConsentGiven)
	assert.Equal(t, int64(10), state.RewardPoints)

	record, err := store.Consents().Get(ctx, user)
	require.NoError(t, err)
	assert.NotNil(t, record.WithdrawalDate)

	got, err = submission.Submit(ctx, user, validParams())
	require.NoError(t, err)
	assert.False(t, got.Success)

	count, err = store.Anonymized().CountByHashedUserID(ctx, hasher.Hash(user))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestScenario_OtherUsersUntouchedByWithdrawal(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	log := testutil.MakeNoopLogger()
	consent := NewConsent(store.Consents(), store, nil, log)
	submission := NewSubmission(store, nil, log, 10)

	for _, u := range []model.UserID{1, 2} {
		require.NoError(t, consent.UpdateConsent(ctx, u, true))
		_, err := submission.Submit(ctx, u, validParams())
		require.NoError(t, err)
	}

	require.NoError(t, consent.UpdateConsent(ctx, 1, false))

	count, err := store.Anonymized().CountByHashedUserID(ctx, hasher.Hash(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestScenario_SubmitRacingWithdrawal(t *testing.T) {
	ctx := context.Background()
	log := testutil.MakeNoopLogger()
	const user model.UserID = 99

	for i := 0; i < 50; i++ {
		store := memory.NewStore()
		consent := NewConsent(store.Consents(), store, nil, log)
		submission := NewSubmission(store, nil, log, 10)
		require.NoError(t, consent.UpdateConsent(ctx, user, true))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := submission.Submit(ctx, user, validParams())
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, consent.UpdateConsent(ctx, user, false))
		}()
		wg.Wait()

		count, err := store.Anonymized().CountByHashedUserID(ctx, hasher.Hash(user))
		require.NoError(t, err)
		assert.Zero(t, count)
	}
}

func TestScenario_StoredRecordCarriesNoIdentity(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	log := testutil.MakeNoopLogger()
	consent := NewConsent(store.Consents(), store, nil, log)
	submission := NewSubmission(store, nil, log, 10)
	submission.now = func() time.Time { return fixedNow }

	const user model.UserID = 918273645

	require.NoError(t, consent.UpdateConsent(ctx, user, true))
	got, err := submission.Submit(ctx, user, validParams())
	require.NoError(t, err)
	require.True(t, got.Success)

	rows, err := store.Anonymized().ListByMonth(ctx, model.TransactionMonth(fixedNow))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, hasher.Hash(user), row.HashedUserID)

	encoded, err := json.Marshal(row)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), strconv.FormatInt(int64(user), 10))

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &fields))
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{
		"ID", "CreatedAt",
		"HashedUserID", "Amount", "Category", "City", "Inventory", "TransactionMonth",
	}, keys)
}
