// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

// Package upstream implements the outbound leg of the request proxy: the
// forwarder that talks to the eBird v2 API with the credential attached as
// a header, and an optional circuit breaker around it.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/avesmap/avesmap/internal/metrics"
)

// Guard errors for malformed forward calls. Both fail before any network
// access; the HTTP handler validates its inputs first, so hitting one of
// these from there is a defect.
var (
	ErrMissingEndpoint   = errors.New("endpoint path is required")
	ErrMissingCredential = errors.New("credential is required")
)

// CredentialHeader is the header the eBird API expects the token in. The
// credential arrives from the browser as a query parameter but must never
// leave the proxy as one.
const CredentialHeader = "X-eBirdApiToken"

// userAgent identifies this client to the upstream service.
const userAgent = "avesmap/1.0"

// Forwarder issues one upstream call per Forward invocation. Implemented
// by Client and CircuitBreakerClient.
type Forwarder interface {
	// Forward performs a GET against baseURL+endpointPath with params as
	// the query string and the credential attached as a header. A Result
	// is returned for every HTTP response regardless of status; an error
	// is returned only when the call never completed.
	Forward(ctx context.Context, endpointPath, credential string, params url.Values) (*Result, error)
}

// Result is a relayed upstream response.
type Result struct {
	// StatusCode is the upstream HTTP status, preserved verbatim so the
	// API client's classification can dispatch on it.
	StatusCode int

	// ContentType is the upstream Content-Type header.
	ContentType string

	// Body is the full upstream response body.
	Body []byte
}

// OK reports whether the upstream response was a success.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// Client is the plain forwarder. It is stateless per call: no retries, no
// credential storage.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a forwarder for the given upstream base URL
// (e.g. https://api.ebird.org/v2).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Forward implements Forwarder.
func (c *Client) Forward(ctx context.Context, endpointPath, credential string, params url.Values) (*Result, error) {
	if endpointPath == "" {
		return nil, ErrMissingEndpoint
	}
	if credential == "" {
		return nil, ErrMissingCredential
	}

	reqURL := c.baseURL + endpointPath
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream request: %w", err)
	}
	req.Header.Set(CredentialHeader, credential)
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest("transport_error", time.Since(start))
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordUpstreamRequest("transport_error", time.Since(start))
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	metrics.RecordUpstreamRequest(statusClass(resp.StatusCode), time.Since(start))

	return &Result{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// statusClass buckets a status code for metrics labels.
func statusClass(status int) string {
	switch {
	case status >= 200 && status <= 299:
		return "2xx"
	case status >= 400 && status <= 499:
		return "4xx"
	case status >= 500:
		return "5xx"
	default:
		return "other"
	}
}
