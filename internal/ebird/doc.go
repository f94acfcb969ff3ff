// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

// Package ebird implements the API client half of the Avesmap core: typed
// operations over the request proxy for the eBird v2 data service.
//
// The client owns the session credential, translates FilterCriteria into
// upstream query parameters, and classifies every failure into the error
// taxonomy the UI depends on (see Error and ErrorKind). It performs no
// retries, caches nothing across calls, and never sorts or deduplicates
// upstream results.
//
// Every fetch result carries a monotonically increasing sequence number so
// consumers can discard responses that arrive after a newer fetch has been
// issued; the client itself never cancels superseded calls.
package ebird
