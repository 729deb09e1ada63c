// Copyright (c) 2026, LinguaKit Labs. (https://www.linguakit.dev).
//
// LinguaKit Labs licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package retry wraps upstream calls with bounded exponential-backoff retries.
// Only failures that report themselves as transient are retried; everything
// else propagates to the caller on the first attempt.
package retry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Defaults applied when a Policy field is zero.
const (
	DefaultMaxAttempts  = 3
	DefaultInitialDelay = 1000 * time.Millisecond
)

// ErrServiceBusy replaces the raw upstream failure once the retry budget is
// exhausted. The low-level cause is logged for diagnostics but deliberately
// kept out of the caller-visible message.
var ErrServiceBusy = errors.New("the service is busy right now, please try again in a moment")

// errBudgetExhausted guards the loop exit that should be unreachable.
var errBudgetExhausted = errors.New("retry budget exhausted unexpectedly")

// Policy bounds the retry behavior of a single logical operation.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// InitialDelay is the wait after the first retryable failure; it doubles
	// after each subsequent one.
	InitialDelay time.Duration
}

// DefaultPolicy returns the policy used by the gateway services.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, InitialDelay: DefaultInitialDelay}
}

// retryable is implemented by errors that describe a transient upstream
// condition, e.g. a 429 or 503 from the provider.
type retryable interface {
	Retryable() bool
}

// IsRetryable reports whether err marks a transient upstream failure.
func IsRetryable(err error) bool {
	var r retryable
	if errors.As(err, &r) {
		return r.Retryable()
	}
	return false
}

// Do runs op until it succeeds, fails fatally, or the attempt budget is spent.
// Backoff waits suspend only the calling goroutine and honor ctx cancellation.
func Do[T any](ctx context.Context, policy Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = DefaultMaxAttempts
	}
	if policy.InitialDelay <= 0 {
		policy.InitialDelay = DefaultInitialDelay
	}

	backoffCfg := backoff.NewExponentialBackOff()
	backoffCfg.InitialInterval = policy.InitialDelay
	backoffCfg.Multiplier = 2
	backoffCfg.RandomizationFactor = 0
	backoffCfg.MaxInterval = policy.InitialDelay << 16

	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if !IsRetryable(err) {
			return zero, err
		}
		lastErr = err
		if attempt == policy.MaxAttempts {
			break
		}
		sleep := backoffCfg.NextBackOff()
		slog.Debug("transient upstream failure, backing off",
			"attempt", attempt,
			"maxAttempts", policy.MaxAttempts,
			"delay", sleep,
			"error", err.Error())
		select {
		case <-time.After(sleep):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	if lastErr == nil {
		// The loop above always returns or records lastErr before breaking;
		// reaching this without one is a bug, not an upstream condition.
		return zero, errBudgetExhausted
	}
	slog.Warn("retry budget exhausted",
		"attempts", policy.MaxAttempts,
		"cause", lastErr.Error())
	return zero, ErrServiceBusy
}
