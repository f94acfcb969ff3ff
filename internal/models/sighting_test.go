// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package models

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestSightingDecodesEBirdPayload(t *testing.T) {
	t.Parallel()

	// A full-detail record as the eBird v2 API returns it.
	payload := []byte(`{
		"speciesCode": "snoowl1",
		"comName": "Snowy Owl",
		"sciName": "Bubo scandiacus",
		"locId": "L109145",
		"locName": "Jones Beach SP--West End",
		"obsDt": "2026-01-15 09:12",
		"howMany": 2,
		"lat": 40.5896,
		"lng": -73.5044,
		"obsValid": true,
		"obsReviewed": true,
		"locationPrivate": false,
		"subnational2Code": "US-NY-059",
		"subnational2Name": "Nassau",
		"subnational1Code": "US-NY",
		"subnational1Name": "New York",
		"countryCode": "US",
		"countryName": "United States",
		"userDisplayName": "Pat Observer",
		"subId": "S123456789",
		"obsId": "OBS987654321",
		"checklistId": "CL24680"
	}`)

	var s Sighting
	if err := json.Unmarshal(payload, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if s.SpeciesCode != "snoowl1" || s.CommonName != "Snowy Owl" {
		t.Errorf("species fields = %q / %q", s.SpeciesCode, s.CommonName)
	}
	if s.HowMany == nil || *s.HowMany != 2 {
		t.Errorf("HowMany = %v, want 2", s.HowMany)
	}
	if s.Latitude != 40.5896 || s.Longitude != -73.5044 {
		t.Errorf("coordinates = %v, %v", s.Latitude, s.Longitude)
	}
	if !s.ObsValid || !s.ObsReviewed || s.LocationPrivate {
		t.Errorf("flags = valid=%v reviewed=%v private=%v", s.ObsValid, s.ObsReviewed, s.LocationPrivate)
	}
	if s.Subnational1Code != "US-NY" || s.CountryCode != "US" {
		t.Errorf("region fields = %q / %q", s.Subnational1Code, s.CountryCode)
	}
}

func TestSightingOmitsAbsentCount(t *testing.T) {
	t.Parallel()

	// Simple-detail records leave howMany out when the count is an "X".
	var s Sighting
	if err := json.Unmarshal([]byte(`{"speciesCode":"gyrfal","obsDt":"2026-01-15 08:40"}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.HowMany != nil {
		t.Errorf("HowMany = %v, want nil for absent count", s.HowMany)
	}

	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) == "" {
		t.Fatalf("empty marshal output")
	}
	var round map[string]interface{}
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if _, present := round["howMany"]; present {
		t.Errorf("howMany should be omitted when nil")
	}
}
