package video

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollUntilDone_ReturnsOnceDone(t *testing.T) {
	cfg := PollConfig{Interval: time.Millisecond, Timeout: time.Second}

	calls := 0
	result, err := PollUntilDone(context.Background(), cfg, func(ctx context.Context) (string, bool, error) {
		calls++
		return "ready", calls >= 3, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "ready", result)
	assert.Equal(t, 3, calls)
}

func TestPollUntilDone_PropagatesPollError(t *testing.T) {
	cfg := PollConfig{Interval: time.Millisecond, Timeout: time.Second}
	boom := errors.New("provider unavailable")

	_, err := PollUntilDone(context.Background(), cfg, func(ctx context.Context) (int, bool, error) {
		return 0, false, boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestPollUntilDone_TimeoutCeiling(t *testing.T) {
	cfg := PollConfig{Interval: 5 * time.Millisecond, Timeout: 20 * time.Millisecond}

	_, err := PollUntilDone(context.Background(), cfg, func(ctx context.Context) (int, bool, error) {
		return 0, false, nil
	})

	assert.ErrorIs(t, err, ErrPollTimeout)
}

func TestPollUntilDone_ContextCancellation(t *testing.T) {
	cfg := PollConfig{Interval: 5 * time.Millisecond, Timeout: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := PollUntilDone(ctx, cfg, func(ctx context.Context) (int, bool, error) {
		return 0, false, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPollUntilDone_BackoffCapsAtMaxInterval(t *testing.T) {
	cfg := PollConfig{
		Interval:      time.Millisecond,
		MaxInterval:   4 * time.Millisecond,
		BackoffFactor: 2.0,
		Timeout:       time.Second,
	}

	var stamps []time.Time
	calls := 0
	_, err := PollUntilDone(context.Background(), cfg, func(ctx context.Context) (int, bool, error) {
		stamps = append(stamps, time.Now())
		calls++
		return calls, calls >= 6, nil
	})

	assert.NoError(t, err)
	// Intervals double (1ms, 2ms, 4ms) then hold at the 4ms cap.
	last := stamps[len(stamps)-1].Sub(stamps[len(stamps)-2])
	assert.GreaterOrEqual(t, last, 4*time.Millisecond)
	assert.Less(t, last, 100*time.Millisecond)
}

func TestPollConfigDefaults(t *testing.T) {
	cfg := PollConfig{}.withDefaults()
	assert.Equal(t, 8*time.Second, cfg.Interval)
	assert.Equal(t, 2*time.Minute, cfg.MaxInterval)
	assert.Equal(t, 1.0, cfg.BackoffFactor)
	assert.Equal(t, 15*time.Minute, cfg.Timeout)
}
