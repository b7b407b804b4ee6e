package video

import (
	"context"
	"errors"
	"time"
)

// ErrPollTimeout is returned when an operation does not complete before the
// configured ceiling.
var ErrPollTimeout = errors.New("poll: timeout ceiling reached")

// PollConfig controls a poll-until-ready loop. The zero value polls every
// 8 seconds (the provider's historical fixed interval) with no backoff and a
// 15 minute ceiling.
type PollConfig struct {
	Interval      time.Duration
	MaxInterval   time.Duration
	BackoffFactor float64 // 1.0 means a fixed interval
	Timeout       time.Duration
}

func (c PollConfig) withDefaults() PollConfig {
	if c.Interval <= 0 {
		c.Interval = 8 * time.Second
	}
	if c.BackoffFactor < 1.0 {
		c.BackoffFactor = 1.0
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 2 * time.Minute
	}
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Minute
	}
	return c
}

// PollUntilDone calls poll at the configured interval until it reports done,
// the context is cancelled, or the timeout ceiling is reached. poll returns
// the current value, whether the operation has completed, and any terminal
// error.
func PollUntilDone[T any](ctx context.Context, cfg PollConfig, poll func(context.Context) (T, bool, error)) (T, error) {
	var zero T
	cfg = cfg.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	interval := cfg.Interval
	for {
		value, done, err := poll(ctx)
		if err != nil {
			return zero, err
		}
		if done {
			return value, nil
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return zero, ErrPollTimeout
			}
			return zero, ctx.Err()
		case <-timer.C:
		}

		interval = time.Duration(float64(interval) * cfg.BackoffFactor)
		if interval > cfg.MaxInterval {
			interval = cfg.MaxInterval
		}
	}
}
