package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/postwright/postwright-api/internal/generation"
)

// operation is a single attempt against the generation endpoint.
type operation func(ctx context.Context) (string, error)

// retryPolicy wraps an operation with exponential-backoff-with-jitter retry
// behavior. The policy is a plain value with injectable randomness and sleep,
// so it can be exercised in tests with a fake operation and no real waiting.
type retryPolicy struct {
	// maxRetries is the number of retries after the first attempt; the total
	// attempt budget is maxRetries+1.
	maxRetries int

	// baseDelay is the backoff base and also the lower bound for every delay.
	baseDelay time.Duration

	// maxDelay is the upper bound for every delay.
	maxDelay time.Duration

	// rng supplies the jitter component.
	rng *rand.Rand

	// sleep waits for the given duration or until the context is cancelled.
	sleep func(ctx context.Context, d time.Duration) error
}

// newRetryPolicy builds a retryPolicy from configuration, falling back to
// safe defaults for invalid values rather than failing.
func newRetryPolicy(ctx context.Context, logger *slog.Logger, maxRetries, baseDelaySeconds, maxDelaySeconds int) retryPolicy {
	if maxRetries < 0 {
		logger.WarnContext(ctx, "Invalid max retries value, using default", "max_retries", 5)
		maxRetries = 5
	}

	if baseDelaySeconds < 1 {
		logger.WarnContext(ctx, "Invalid retry delay value, using default", "base_delay_seconds", 1)
		baseDelaySeconds = 1
	}

	if maxDelaySeconds < baseDelaySeconds {
		logger.WarnContext(ctx, "Invalid max retry delay value, using default", "max_delay_seconds", 60)
		maxDelaySeconds = 60
	}

	return retryPolicy{
		maxRetries: maxRetries,
		baseDelay:  time.Duration(baseDelaySeconds) * time.Second,
		maxDelay:   time.Duration(maxDelaySeconds) * time.Second,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:      sleepWithContext,
	}
}

// sleepWithContext waits for d or returns early with the context's error.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// isPermanent reports whether err should never be retried. Content blocked by
// safety filters and malformed responses will not improve on a second attempt;
// everything else is assumed transient.
func isPermanent(err error) bool {
	return errors.Is(err, generation.ErrContentBlocked) ||
		errors.Is(err, generation.ErrInvalidResponse) ||
		errors.Is(err, generation.ErrInvalidConfig)
}

// delay computes the backoff before the next attempt:
// baseDelay * 2^attempt * jitter(0.5..1.0), clamped to [baseDelay, maxDelay].
func (p retryPolicy) delay(attempt int) time.Duration {
	backoff := float64(p.baseDelay) * math.Pow(2, float64(attempt))
	jitterFactor := 0.5 + p.rng.Float64()*0.5
	d := time.Duration(backoff * jitterFactor)

	if d < p.baseDelay {
		d = p.baseDelay
	}
	if d > p.maxDelay {
		d = p.maxDelay
	}
	return d
}

// do runs op until it succeeds, returns a permanent error, or the attempt
// budget is exhausted. On exhaustion the last error is wrapped in
// generation.ErrTransientFailure so callers see a single failure signal.
func (p retryPolicy) do(ctx context.Context, logger *slog.Logger, op operation) (string, error) {
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		attemptNum := attempt + 1 // For logging (1-based)
		logger.InfoContext(ctx, "Making generation call",
			"attempt", attemptNum,
			"max_attempts", p.maxRetries+1)

		result, err := op(ctx)
		if err == nil {
			logger.InfoContext(ctx, "Generation call successful",
				"attempt", attemptNum)
			return result, nil
		}

		logger.ErrorContext(ctx, "Generation call failed",
			"attempt", attemptNum,
			"error", err)

		if isPermanent(err) {
			logger.WarnContext(ctx, "Permanent error occurred, not retrying",
				"error", err)
			return "", err
		}

		if attempt >= p.maxRetries {
			logger.WarnContext(ctx, "Maximum retry attempts reached",
				"max_attempts", p.maxRetries+1)
			return "", fmt.Errorf("%w: exhausted %d attempts: %v",
				generation.ErrTransientFailure, p.maxRetries+1, err)
		}

		d := p.delay(attempt)
		logger.InfoContext(ctx, "Retrying after delay",
			"attempt", attemptNum,
			"delay", d)

		if err := p.sleep(ctx, d); err != nil {
			logger.WarnContext(ctx, "Generation call cancelled during retry delay",
				"attempt", attemptNum,
				"ctx_err", err)
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
		}
	}

	// Unreachable: the loop either returns a result or the exhaustion error.
	return "", generation.ErrTransientFailure
}
