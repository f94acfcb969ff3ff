// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

// Package models defines the wire-level data structures shared by the API
// client and the request proxy: the upstream Sighting record and the
// proxy's normalized error payload.
package models
