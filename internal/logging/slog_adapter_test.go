// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSlogHandlerQualifiesNestedGroupsOutermostFirst(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(&SlogHandler{logger: zerolog.New(&buf)})

	logger.WithGroup("outer").WithGroup("inner").Info("nested", slog.String("key", "v"))

	out := buf.String()
	if !strings.Contains(out, `"outer.inner.key":"v"`) {
		t.Errorf("output %q missing outermost-first key outer.inner.key", out)
	}
}

func TestSlogHandlerGroupAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(&SlogHandler{logger: zerolog.New(&buf)})

	logger.WithGroup("geo").Info("marker",
		slog.Group("point", slog.Float64("lat", 40.5896), slog.Float64("lng", -73.5044)))

	out := buf.String()
	if !strings.Contains(out, `"geo.point.lat":40.5896`) {
		t.Errorf("output %q missing geo.point.lat", out)
	}
	if !strings.Contains(out, `"geo.point.lng":-73.5044`) {
		t.Errorf("output %q missing geo.point.lng", out)
	}
}

func TestSlogHandlerUngroupedAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(&SlogHandler{logger: zerolog.New(&buf)})

	logger.Info("plain", slog.String("service", "http-server"), slog.Int("port", 8080))

	out := buf.String()
	if !strings.Contains(out, `"service":"http-server"`) || !strings.Contains(out, `"port":8080`) {
		t.Errorf("output %q missing unqualified attrs", out)
	}
}
