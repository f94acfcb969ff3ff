// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package ebird

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"

	"github.com/avesmap/avesmap/internal/logging"
	"github.com/avesmap/avesmap/internal/models"
	"github.com/avesmap/avesmap/internal/validation"
)

// proxyForwardPath is the proxy endpoint the client calls (Boundary B).
const proxyForwardPath = "/api/v1/ebird"

// Credential probe parameters: the cheapest well-formed notable
// observations query. Region US with a one-day window and a single result.
const (
	probeRegion   = "US"
	probeDaysBack = 1
	probeResults  = 1
)

// maxErrorBodySize caps how much of an error response body is read for
// diagnostics, preventing unbounded allocation on large upstream errors.
const maxErrorBodySize = 64 * 1024 // 64KB

// Client talks to the eBird data service through the request proxy.
//
// The client holds exactly one piece of state: the session credential,
// replaced wholesale by SetCredential and read by in-flight fetches. There
// is no cross-call cache — every operation is a fresh round trip. Multiple
// Client instances are fully isolated; the credential is never stored in
// package-level state.
//
// Thread safety: all methods are safe for concurrent use.
type Client struct {
	proxyURL   string
	httpClient *http.Client

	mu     sync.RWMutex
	apiKey string

	// seq numbers fetches so consumers can discard stale responses.
	seq atomic.Uint64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Tests use this to
// inject transports; the default client enforces no timeout, leaving any
// bound to the caller's context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client that forwards through the proxy at proxyURL
// (scheme and host, no trailing slash required).
func NewClient(proxyURL string, opts ...Option) *Client {
	c := &Client{
		proxyURL:   trimTrailingSlash(proxyURL),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func trimTrailingSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// SetCredential atomically replaces the session credential. No
// well-formedness validation happens here; use ValidateCredential for that.
func (c *Client) SetCredential(secret string) {
	c.mu.Lock()
	c.apiKey = secret
	c.mu.Unlock()

	logging.Debug().
		Str("api_key", logging.SanitizeAPIKey(secret)).
		Msg("session credential replaced")
}

// credential returns the current credential.
func (c *Client) credential() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// FetchResult is a successful fetch outcome. Seq and the echoed criteria
// are the correlation data consumers use to detect and discard stale
// responses: a result is stale when its Seq is lower than the newest
// sequence the consumer has issued.
type FetchResult struct {
	// Seq is the fetch sequence number, increasing with every fetch this
	// client starts (including failed ones).
	Seq uint64

	// RegionCode is the region the fetch was scoped to.
	RegionCode string

	// Criteria is the effective criteria snapshot with every default
	// materialized.
	Criteria FilterCriteria

	// Sightings are the upstream records in upstream order, neither
	// sorted nor deduplicated.
	Sightings []models.Sighting
}

// FetchNotableObservations retrieves recent notable observations for the
// region. Omitted criteria fields fall back to their documented defaults.
//
// The operation fails with KindMissingCredential before any network access
// when no credential has been set. All other failures are classified per
// the package taxonomy; no failure is retried.
func (c *Client) FetchNotableObservations(ctx context.Context, regionCode string, criteria FilterCriteria) (*FetchResult, error) {
	if regionCode == "" {
		return nil, fmt.Errorf("region code is required")
	}
	if err := validation.ValidateStruct(&criteria); err != nil {
		return nil, fmt.Errorf("invalid filter criteria: %w", err)
	}

	key := c.credential()
	if key == "" {
		return nil, &Error{Kind: KindMissingCredential, Message: "no credential set; call SetCredential first"}
	}

	seq := c.seq.Add(1)
	eff := criteria.withDefaults()

	params := eff.Values()
	params.Set("endpoint", notableObservationsPath(regionCode))
	params.Set("apiKey", key)

	reqURL := c.proxyURL + proxyForwardPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "request never completed", Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.classifyResponse(resp)
	}

	var sightings []models.Sighting
	if err := json.NewDecoder(resp.Body).Decode(&sightings); err != nil {
		return nil, &Error{
			Kind:    KindUpstream,
			Status:  resp.StatusCode,
			Message: "upstream payload is not a sighting sequence",
			Detail:  err.Error(),
		}
	}

	logging.Debug().
		Uint64("seq", seq).
		Str("region", regionCode).
		Int("sightings", len(sightings)).
		Dur("elapsed", time.Since(start)).
		Msg("notable observations fetched")

	return &FetchResult{
		Seq:        seq,
		RegionCode: regionCode,
		Criteria:   eff,
		Sightings:  sightings,
	}, nil
}

// ValidateCredential probes the upstream service with the currently set
// credential using a minimal-cost query. It never raises: every failure is
// absorbed into false so UI code can treat validation as non-throwing.
// Callers needing the failure detail should issue a direct fetch instead.
func (c *Client) ValidateCredential(ctx context.Context) bool {
	maxResults := probeResults
	_, err := c.FetchNotableObservations(ctx, probeRegion, FilterCriteria{
		DaysBack:   probeDaysBack,
		Detail:     DetailSimple,
		MaxResults: &maxResults,
	})
	if err != nil {
		logging.Debug().Err(err).Msg("credential probe failed")
		return false
	}
	return true
}

// LastSeq returns the sequence number of the most recently started fetch.
// Consumers compare a FetchResult's Seq against this to detect staleness.
func (c *Client) LastSeq() uint64 {
	return c.seq.Load()
}

// classifyResponse turns a non-2xx proxy response into a classified error.
// The proxy mirrors the upstream status and wraps detail in a ProxyError
// body; a body that fails to parse is used raw as detail text.
func (c *Client) classifyResponse(resp *http.Response) *Error {
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if readErr != nil {
		body = nil
	}

	var pe models.ProxyError
	message, detail := "", string(body)
	if err := json.Unmarshal(body, &pe); err == nil && pe.Error != "" {
		message = pe.Error
		detail = pe.Details
	}

	return classifyStatus(resp.StatusCode, message, detail)
}

// notableObservationsPath builds the upstream resource path for the recent
// notable observations of a region.
func notableObservationsPath(regionCode string) string {
	return "/data/obs/" + url.PathEscape(regionCode) + "/recent/notable"
}
