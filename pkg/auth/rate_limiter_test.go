package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlidingWindowLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := NewSlidingWindowLimiter(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "user:ada")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "user:ada")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestSlidingWindowLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewSlidingWindowLimiter(1, time.Minute)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "user:ada")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "user:ada")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "user:grace")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestSlidingWindowLimiter_ResetClearsWindow(t *testing.T) {
	limiter := NewSlidingWindowLimiter(1, time.Minute)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "user:ada")
	require.NoError(t, err)
	require.True(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "user:ada"))

	allowed, err = limiter.Allow(ctx, "user:ada")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestSlidingWindowLimiter_ExpiredRequestsFallOut(t *testing.T) {
	limiter := NewSlidingWindowLimiter(1, 10*time.Millisecond)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "user:ada")
	require.NoError(t, err)
	require.True(t, allowed)

	time.Sleep(20 * time.Millisecond)

	allowed, err = limiter.Allow(ctx, "user:ada")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestIPRateLimiter_LimitsPerAddress(t *testing.T) {
	limiter := NewIPRateLimiter(2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}
