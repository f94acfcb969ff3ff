// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avesmap/avesmap/internal/logging"
	"github.com/avesmap/avesmap/internal/middleware"
	"github.com/avesmap/avesmap/internal/upstream"
)

// allowedEndpointPrefixes restricts forwarding to the eBird API surfaces the
// viewer uses. Anything else is rejected before the upstream is contacted,
// so the proxy cannot be turned into an open relay.
var allowedEndpointPrefixes = []string{
	"/data/",
	"/ref/",
}

// Handler holds the dependencies for the HTTP handlers.
type Handler struct {
	forwarder upstream.Forwarder
	version   string
	startTime time.Time
}

// NewHandler creates a Handler.
func NewHandler(forwarder upstream.Forwarder, version string) *Handler {
	return &Handler{
		forwarder: forwarder,
		version:   version,
		startTime: time.Now(),
	}
}

// ForwardEBird handles GET /api/v1/ebird. It expects an endpoint parameter
// naming the upstream path and an apiKey parameter carrying the credential;
// every other query parameter is passed through to the eBird API unchanged.
// The credential leaves this process only as the X-eBirdApiToken header,
// never in a URL.
func (h *Handler) ForwardEBird(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	requestID := middleware.GetRequestID(r.Context())

	endpoint := query.Get("endpoint")
	if endpoint == "" {
		respondProxyError(w, http.StatusBadRequest, "Missing endpoint parameter", "")
		return
	}

	apiKey := query.Get("apiKey")
	if apiKey == "" {
		respondProxyError(w, http.StatusBadRequest, "Missing apiKey parameter", "")
		return
	}

	if !endpointAllowed(endpoint) {
		logging.Warn().
			Str("request_id", requestID).
			Str("endpoint", endpoint).
			Msg("Rejected forward request for disallowed endpoint")
		respondProxyError(w, http.StatusBadRequest, "Endpoint not allowed", "")
		return
	}

	// Everything except the routing and credential parameters travels
	// upstream verbatim.
	params := query
	params.Del("endpoint")
	params.Del("apiKey")

	logging.Debug().
		Str("request_id", requestID).
		Str("endpoint", endpoint).
		Str("api_key", logging.SanitizeAPIKey(apiKey)).
		Msg("Forwarding request to eBird API")

	result, err := h.forwarder.Forward(r.Context(), endpoint, apiKey, params)
	if err != nil {
		logging.Error().
			Err(err).
			Str("request_id", requestID).
			Str("endpoint", endpoint).
			Msg("eBird forward failed")
		respondProxyError(w, http.StatusInternalServerError,
			"Failed to fetch data from eBird API", err.Error())
		return
	}

	if !result.OK() {
		logging.Warn().
			Str("request_id", requestID).
			Str("endpoint", endpoint).
			Int("status", result.StatusCode).
			Msg("eBird API returned an error status")
		respondProxyError(w, result.StatusCode,
			fmt.Sprintf("eBird API error: %s", http.StatusText(result.StatusCode)),
			string(result.Body))
		return
	}

	contentType := result.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(result.StatusCode)
	if _, err := w.Write(result.Body); err != nil {
		logging.Error().Err(err).Str("request_id", requestID).Msg("Failed to write relayed response")
	}
}

// endpointAllowed reports whether the requested upstream path is on the
// forwarding allowlist.
func endpointAllowed(endpoint string) bool {
	if !strings.HasPrefix(endpoint, "/") || strings.Contains(endpoint, "..") {
		return false
	}
	for _, prefix := range allowedEndpointPrefixes {
		if strings.HasPrefix(endpoint, prefix) {
			return true
		}
	}
	return false
}
