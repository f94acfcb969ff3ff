// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package models

// ProxyError is the error payload the request proxy returns on any non-2xx
// response. The HTTP status of the proxy response mirrors the upstream
// status (or a fixed 500 when the upstream call never completed), so the
// API client can classify on the status alone; this body carries the
// human-readable remainder.
//
// Example:
//
//	{
//	  "error": "Too Many Requests",
//	  "details": "request rate exceeded"
//	}
type ProxyError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthStatus is the payload of the /health endpoint.
type HealthStatus struct {
	Status  string  `json:"status"`
	Version string  `json:"version"`
	Uptime  float64 `json:"uptime_seconds"`
}
