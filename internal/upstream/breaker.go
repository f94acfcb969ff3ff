// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package upstream

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/avesmap/avesmap/internal/logging"
	"github.com/avesmap/avesmap/internal/metrics"
)

// ErrCircuitOpen is returned when the breaker rejects a call without
// attempting the upstream. Callers treat it like any other transport
// failure.
var ErrCircuitOpen = errors.New("upstream circuit breaker is open")

// breakerName labels metrics and log lines for the single upstream breaker.
const breakerName = "ebird_upstream"

// CircuitBreakerClient wraps a Forwarder with a gobreaker circuit breaker.
// Only transport failures count against the breaker; upstream HTTP errors
// (401, 429, ...) are valid responses that must reach the browser and do
// not trip it.
type CircuitBreakerClient struct {
	inner   Forwarder
	breaker *gobreaker.CircuitBreaker[*Result]
}

// NewCircuitBreakerClient wraps inner with a breaker. The breaker opens
// after 60% of at least 10 requests fail within the rolling interval, and
// probes again after the timeout.
func NewCircuitBreakerClient(inner Forwarder) *CircuitBreakerClient {
	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     120 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	}

	return &CircuitBreakerClient{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[*Result](settings),
	}
}

// Forward implements Forwarder through the breaker.
func (c *CircuitBreakerClient) Forward(ctx context.Context, endpointPath, credential string, params url.Values) (*Result, error) {
	result, err := c.breaker.Execute(func() (*Result, error) {
		return c.inner.Forward(ctx, endpointPath, credential, params)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
		return nil, ErrCircuitOpen
	case err != nil:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		return nil, err
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
		return result, nil
	}
}

// stateValue maps a breaker state to its gauge value.
func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
