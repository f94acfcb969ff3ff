// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"
)

func TestClientForwardAttachesCredentialHeader(t *testing.T) {
	t.Parallel()

	var gotPath, gotToken, gotUA string
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotToken = r.Header.Get(CredentialHeader)
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"speciesCode":"snoowl1"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	params := url.Values{}
	params.Set("back", "7")
	params.Set("hotspot", "true")

	result, err := client.Forward(context.Background(), "/data/obs/US-NY/recent/notable", "tok123", params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/data/obs/US-NY/recent/notable" {
		t.Errorf("path = %q", gotPath)
	}
	if gotToken != "tok123" {
		t.Errorf("token header = %q, want tok123", gotToken)
	}
	if gotUA != "avesmap/1.0" {
		t.Errorf("user agent = %q", gotUA)
	}
	if gotQuery.Get("back") != "7" || gotQuery.Get("hotspot") != "true" {
		t.Errorf("query = %v", gotQuery)
	}

	if !result.OK() {
		t.Errorf("result.OK() = false for 200")
	}
	if result.ContentType != "application/json" {
		t.Errorf("content type = %q", result.ContentType)
	}
	if string(result.Body) != `[{"speciesCode":"snoowl1"}]` {
		t.Errorf("body = %q", result.Body)
	}
}

func TestClientForwardPreservesErrorStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []int{400, 401, 403, 429, 500, 502} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte("error body"))
		}))

		client := NewClient(server.URL, 5*time.Second)
		result, err := client.Forward(context.Background(), "/data/obs/US/recent/notable", "tok", nil)
		server.Close()

		if err != nil {
			t.Fatalf("status %d: non-2xx must not be a forwarding error, got %v", status, err)
		}
		if result.StatusCode != status {
			t.Errorf("status = %d, want %d", result.StatusCode, status)
		}
		if result.OK() {
			t.Errorf("result.OK() = true for %d", status)
		}
		if string(result.Body) != "error body" {
			t.Errorf("body = %q", result.Body)
		}
	}
}

func TestClientForwardGuardsEmptyInputs(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	if _, err := client.Forward(context.Background(), "", "tok", nil); !errors.Is(err, ErrMissingEndpoint) {
		t.Errorf("empty endpoint: err = %v, want ErrMissingEndpoint", err)
	}
	if _, err := client.Forward(context.Background(), "/data/obs/US/recent/notable", "", nil); !errors.Is(err, ErrMissingCredential) {
		t.Errorf("empty credential: err = %v, want ErrMissingCredential", err)
	}
	if hits.Load() != 0 {
		t.Errorf("guard failures must not reach the network, got %d calls", hits.Load())
	}
}

func TestClientForwardTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)
	result, err := client.Forward(context.Background(), "/data/obs/US/recent/notable", "tok", nil)
	if err == nil {
		t.Fatalf("expected error for unreachable upstream, got result %+v", result)
	}
}

func TestClientForwardHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(server.URL, 0)
	if _, err := client.Forward(ctx, "/data/obs/US/recent/notable", "tok", nil); err == nil {
		t.Fatalf("expected context deadline error")
	}
}

func TestStatusClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{200, "2xx"},
		{204, "2xx"},
		{404, "4xx"},
		{429, "4xx"},
		{500, "5xx"},
		{302, "other"},
	}
	for _, tt := range tests {
		if got := statusClass(tt.status); got != tt.want {
			t.Errorf("statusClass(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
