// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package api

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/avesmap/avesmap/internal/logging"
	"github.com/avesmap/avesmap/internal/models"
)

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// respondProxyError writes a normalized proxy error body. details may be
// empty, in which case it is omitted from the JSON.
func respondProxyError(w http.ResponseWriter, status int, message, details string) {
	respondJSON(w, status, models.ProxyError{
		Error:   message,
		Details: details,
	})
}
