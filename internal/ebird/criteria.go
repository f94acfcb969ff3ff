// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package ebird

import (
	"net/url"
	"strconv"
	"strings"
)

// Detail selects how much of each observation record upstream returns.
type Detail string

const (
	// DetailSimple returns the abbreviated record shape.
	DetailSimple Detail = "simple"

	// DetailFull returns the complete record shape, including
	// administrative region names and observer attribution.
	DetailFull Detail = "full"
)

// Documented criteria defaults and bounds.
const (
	DefaultDaysBack      = 14
	MinDaysBack          = 1
	MaxDaysBack          = 30
	MaxResultsCap        = 10000
	MaxExtraLocations    = 10
	DefaultSpeciesLocale = "en"
)

// DefaultDetail is the detail level used when none is specified.
const DefaultDetail = DetailFull

// FilterCriteria describes one notable-observations query. The zero value
// of every field means "use the documented default"; MaxResults is a
// pointer because absence means "all available results", which no integer
// value can express.
//
// A criteria value is treated as an immutable snapshot once submitted to a
// fetch: the client copies it (with defaults materialized) into the
// FetchResult so in-flight requests never observe later mutation.
type FilterCriteria struct {
	// DaysBack is the lookback window in days, 1 to 30. Default 14.
	DaysBack int `validate:"omitempty,min=1,max=30"`

	// Detail selects the record shape. Default full.
	Detail Detail `validate:"omitempty,oneof=simple full"`

	// HotspotOnly restricts results to designated hotspots. Default false.
	HotspotOnly bool

	// MaxResults caps the result count, 1 to 10000. Nil means all.
	MaxResults *int `validate:"omitempty,min=1,max=10000"`

	// ExtraLocations lists up to 10 additional location codes to include.
	ExtraLocations []string `validate:"omitempty,max=10,dive,required"`

	// SpeciesLocale is the locale tag for common-name localization.
	// Default "en".
	SpeciesLocale string
}

// withDefaults returns a copy with every omitted field replaced by its
// documented default.
func (c FilterCriteria) withDefaults() FilterCriteria {
	if c.DaysBack == 0 {
		c.DaysBack = DefaultDaysBack
	}
	if c.Detail == "" {
		c.Detail = DefaultDetail
	}
	if c.SpeciesLocale == "" {
		c.SpeciesLocale = DefaultSpeciesLocale
	}
	return c
}

// Values encodes the criteria as upstream query parameters, mapping fields
// 1:1. Booleans are serialized as the literal strings "true"/"false";
// optional fields appear only when present. Defaults must already be
// materialized (see withDefaults) so the encoded set always names every
// non-optional parameter explicitly.
func (c FilterCriteria) Values() url.Values {
	params := url.Values{}
	params.Set("back", strconv.Itoa(c.DaysBack))
	params.Set("detail", string(c.Detail))
	params.Set("hotspot", strconv.FormatBool(c.HotspotOnly))
	params.Set("sppLocale", c.SpeciesLocale)
	if c.MaxResults != nil {
		params.Set("maxResults", strconv.Itoa(*c.MaxResults))
	}
	if len(c.ExtraLocations) > 0 {
		params.Set("r", strings.Join(c.ExtraLocations, ","))
	}
	return params
}
