// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

// Package api implements the HTTP surface of the proxy: the eBird forward
// endpoint the browser client calls, health probes, and the Prometheus
// metrics endpoint, all routed through chi.
//
// The forward endpoint moves the credential from a query parameter into the
// header the eBird API expects, so the secret never appears in an upstream
// URL. Upstream error statuses are mirrored back to the browser with a
// normalized JSON body; a forwarding failure that produced no upstream
// response at all maps to 500.
package api
