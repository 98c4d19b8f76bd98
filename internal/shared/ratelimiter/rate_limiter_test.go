package ratelimiter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(3, time.Hour)
	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, rl.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
	assert.Equal(t, 3, rl.count)
}

func TestRateLimiter_WaitsForNextWindow(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 50*time.Millisecond)
	require.NoError(t, rl.Wait(context.Background()))

	start := time.Now()
	require.NoError(t, rl.Wait(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.Equal(t, 1, rl.count)
}

func TestRateLimiter_ResetsAfterInterval(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute)
	rl.now = func() time.Time { return current }
	rl.lastReset = current

	require.NoError(t, rl.Wait(context.Background()))
	current = current.Add(2 * time.Minute)
	require.NoError(t, rl.Wait(context.Background()))

	assert.Equal(t, 1, rl.count)
	assert.Equal(t, current, rl.lastReset)
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Hour)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rl.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, rl.count)
}

func TestRateLimiter_Unlimited(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0, time.Hour)
	for i := 0; i < 100; i++ {
		require.NoError(t, rl.Wait(context.Background()))
	}
	assert.Zero(t, rl.count)
}

func TestRateLimiter_ConcurrentWait(t *testing.T) {
	t.Parallel()

	const workers = 8
	rl := NewRateLimiter(100, time.Hour)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- rl.Wait(context.Background())
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Equal(t, workers, rl.count)
}

func TestRateLimiter_ConcurrentWaitBlocksOverLimit(t *testing.T) {
	t.Parallel()

	const workers = 4
	rl := NewRateLimiter(2, 50*time.Millisecond)

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, rl.Wait(context.Background()))
		}()
	}
	wg.Wait()

	// 上限を超えた2件は次のウィンドウまで待たされる
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
