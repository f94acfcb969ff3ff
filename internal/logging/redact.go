// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package logging

import (
	"fmt"
	"strings"
)

// apiKeyPrefixLen is the number of leading characters of a credential that
// may appear in diagnostic output. The prefix alone is not usable as a
// credential.
const apiKeyPrefixLen = 4

// SanitizeAPIKey returns a redacted form of an eBird API token safe for
// logging: the first few characters followed by an ellipsis. Tokens shorter
// than the prefix are fully redacted.
//
//	logging.Info().Str("api_key", logging.SanitizeAPIKey(key)).Msg("credential replaced")
func SanitizeAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= apiKeyPrefixLen {
		return "[redacted]"
	}
	return key[:apiKeyPrefixLen] + "…"
}

// SanitizeLogValue removes control characters from a string so attacker
// controlled input (upstream error bodies, query parameters) cannot forge
// log lines.
func SanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
