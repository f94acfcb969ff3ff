// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package models

// Sighting is a single notable observation as returned by the eBird v2
// "recent notable observations" endpoint.
//
// The record is a pass-through value: the core never recomputes or validates
// individual fields beyond confirming the upstream payload parses as a
// sequence of these records. The opaque identifiers (SubID, ObsID,
// ChecklistID) are used by the UI only as stable map-marker keys and must
// never be interpreted.
//
// Field names mirror the upstream JSON exactly so the payload survives a
// round trip through the proxy unchanged.
type Sighting struct {
	// Species identification.
	SpeciesCode    string `json:"speciesCode"`
	CommonName     string `json:"comName"`
	ScientificName string `json:"sciName"`

	// Location and time of the observation.
	LocationID   string  `json:"locId"`
	LocationName string  `json:"locName"`
	ObsDate      string  `json:"obsDt"`
	HowMany      *int    `json:"howMany,omitempty"`
	Latitude     float64 `json:"lat"`
	Longitude    float64 `json:"lng"`

	// Review state flags. All three are independent.
	ObsValid        bool `json:"obsValid"`
	ObsReviewed     bool `json:"obsReviewed"`
	LocationPrivate bool `json:"locationPrivate"`

	// Administrative region hierarchy.
	CountryCode      string `json:"countryCode,omitempty"`
	CountryName      string `json:"countryName,omitempty"`
	Subnational1Code string `json:"subnational1Code,omitempty"`
	Subnational1Name string `json:"subnational1Name,omitempty"`
	Subnational2Code string `json:"subnational2Code,omitempty"`
	Subnational2Name string `json:"subnational2Name,omitempty"`

	// Observer attribution.
	UserDisplayName string `json:"userDisplayName,omitempty"`

	// Opaque identifiers, stable across fetches.
	SubID       string `json:"subId"`
	ObsID       string `json:"obsId,omitempty"`
	ChecklistID string `json:"checklistId,omitempty"`
}
