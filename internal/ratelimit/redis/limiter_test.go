package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLimiter_Defaults(t *testing.T) {
	l := NewLimiter(nil, "  custom:prefix: ", 5, 10*time.Millisecond)
	assert.Equal(t, "custom:prefix", l.prefix)
	assert.Equal(t, time.Second, l.window)
	assert.Equal(t, "custom:prefix:submit:42", l.key(42))

	l = NewLimiter(nil, "", 5, time.Minute)
	assert.Equal(t, defaultPrefix, l.prefix)
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	ctx := context.Background()

	ok, err := NewLimiter(nil, "", 5, time.Minute).Allow(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, ok)

	var nilLimiter *Limiter
	ok, err = nilLimiter.Allow(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("redis://localhost:6379/0")
	assert.NoError(t, err)
	assert.NotNil(t, c)

	_, err = NewClient("://bad")
	assert.Error(t, err)
}
