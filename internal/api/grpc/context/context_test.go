package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/rewards-server/internal/model"
)

func TestManager_SetAndGetUserID(t *testing.T) {
	m := NewManager()
	ctx := m.SetUserIDToContext(stdctx.Background(), 42)

	got, ok := m.GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, model.UserID(42), got)
}

func TestManager_GetUserID_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetUserIDFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_SetUserID_OverwritesClientValue(t *testing.T) {
	m := NewManager()
	baseMD := metadata.New(map[string]string{"x-trace-id": "t", "user_id": "1"})
	ctxWithMD := metadata.NewIncomingContext(stdctx.Background(), baseMD)

	ctx := m.SetUserIDToContext(ctxWithMD, 7)
	got, ok := m.GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, model.UserID(7), got)

	md, _ := metadata.FromIncomingContext(ctx)
	assert.Equal(t, []string{"t"}, md.Get("x-trace-id"))
	assert.Equal(t, []string{"1"}, baseMD.Get("user_id"), "original metadata is not mutated")
}

func TestManager_GetUserID_NotNumeric(t *testing.T) {
	m := NewManager()
	md := metadata.New(map[string]string{"user_id": "not-a-number"})
	ctx := metadata.NewIncomingContext(stdctx.Background(), md)
	_, ok := m.GetUserIDFromContext(ctx)
	assert.False(t, ok)
}
