// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package logging

import (
	"strings"
	"testing"
)

func TestSanitizeAPIKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		want string
	}{
		{"empty", "", ""},
		{"single char", "a", "[redacted]"},
		{"exactly prefix length", "abcd", "[redacted]"},
		{"typical token", "jfekjedvescr", "jfek…"},
		{"long token", "0123456789abcdef0123456789abcdef", "0123…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SanitizeAPIKey(tt.key)
			if got != tt.want {
				t.Errorf("SanitizeAPIKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
			// The sanitized form must never contain the full secret.
			if len(tt.key) > apiKeyPrefixLen && strings.Contains(got, tt.key) {
				t.Errorf("sanitized form %q leaks the full key", got)
			}
		})
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "US-NY notable", "US-NY notable"},
		{"newline injection", "line1\nFAKE LOG", "line1\\x0aFAKE LOG"},
		{"carriage return", "a\rb", "a\\x0db"},
		{"delete char", "a\x7fb", "a\\x7fb"},
		{"unicode preserved", "Böhm's Bee-eater", "Böhm's Bee-eater"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SanitizeLogValue(tt.in); got != tt.want {
				t.Errorf("SanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
