// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package api

import (
	"net/http"
	"time"

	"github.com/avesmap/avesmap/internal/models"
)

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	})
}

// HealthLive handles GET /health/live. Liveness means the process is
// serving requests; it says nothing about the eBird API being reachable.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady handles GET /health/ready. The proxy holds no connections or
// state of its own, so readiness follows liveness.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
