// Avesmap - Notable Bird Sightings on a Map
// Copyright 2026 Avesmap contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/avesmap/avesmap

package ebird

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind identifies a failure category the UI can act on. The mapping
// from upstream status to kind is the principal contract of this package:
// it is what lets the UI render "your API key was rejected" instead of a
// generic failure.
type ErrorKind int

const (
	// KindMissingCredential means no credential was set before an
	// operation requiring one. Raised before any network access.
	KindMissingCredential ErrorKind = iota + 1

	// KindMissingEndpoint means the proxy received a forward request with
	// no endpoint path. A local defect — this client always supplies one —
	// but surfaced distinctly so it fails loudly instead of reading as an
	// upstream problem.
	KindMissingEndpoint

	// KindInvalidCredential means upstream rejected the credential (401).
	KindInvalidCredential

	// KindForbidden means upstream refused the request despite a present
	// credential (403).
	KindForbidden

	// KindRateLimited means upstream signaled excessive request rate (429).
	KindRateLimited

	// KindUpstream covers any other non-success status. The Error retains
	// the raw status and detail text for display.
	KindUpstream

	// KindTransport means the request never reached the upstream service:
	// network failure, DNS failure, the proxy being unreachable, or the
	// proxy's own call to upstream never completing.
	KindTransport
)

// String returns the kind's stable name.
func (k ErrorKind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing_credential"
	case KindMissingEndpoint:
		return "missing_endpoint"
	case KindInvalidCredential:
		return "invalid_credential"
	case KindForbidden:
		return "forbidden"
	case KindRateLimited:
		return "rate_limited"
	case KindUpstream:
		return "upstream_error"
	case KindTransport:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// Error is the classified failure returned by client operations.
type Error struct {
	// Kind is the failure category.
	Kind ErrorKind

	// Status is the HTTP status that produced the classification, 0 when
	// the failure happened before or below HTTP (missing credential, a
	// call that never reached the proxy). A transport failure between the
	// proxy and upstream carries the proxy's fixed 500.
	Status int

	// Message is a short human-readable description.
	Message string

	// Detail carries whatever detail text upstream returned, when any.
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Detail != "":
		return fmt.Sprintf("%s (HTTP %d): %s: %s", e.Kind, e.Status, e.Message, e.Detail)
	case e.Status != 0:
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Detail)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Fixed proxy error messages, part of the Boundary B wire contract. The
// proxy emits these in its own responses (as opposed to relaying an
// upstream body), and the client recognizes them to classify conditions
// the status code alone cannot distinguish.
const (
	// proxyMissingEndpointMessage marks the proxy's 400 for an absent
	// endpoint parameter.
	proxyMissingEndpointMessage = "Missing endpoint parameter"

	// proxyTransportFailureMessage marks the proxy's fixed 500 when its
	// upstream call never completed. A local failure between proxy and
	// upstream, not an upstream response.
	proxyTransportFailureMessage = "Failed to fetch data from eBird API"
)

// classifyStatus maps a non-success HTTP status relayed by the proxy to a
// classified error. The proxy preserves the upstream status verbatim, so
// dispatching on the status alone is sufficient — except for the proxy's
// own responses, recognized by their fixed messages.
func classifyStatus(status int, message, detail string) *Error {
	if status == http.StatusBadRequest && message == proxyMissingEndpointMessage {
		return &Error{Kind: KindMissingEndpoint, Status: status, Message: "proxy request carried no endpoint path", Detail: detail}
	}
	if status == http.StatusInternalServerError && message == proxyTransportFailureMessage {
		return &Error{Kind: KindTransport, Status: status, Message: "proxy could not reach upstream", Detail: detail}
	}

	switch status {
	case http.StatusUnauthorized:
		return &Error{Kind: KindInvalidCredential, Status: status, Message: "credential rejected by upstream", Detail: detail}
	case http.StatusForbidden:
		return &Error{Kind: KindForbidden, Status: status, Message: "request not authorized for this resource", Detail: detail}
	case http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, Status: status, Message: "upstream rate limit exceeded", Detail: detail}
	default:
		if message == "" {
			message = http.StatusText(status)
		}
		return &Error{Kind: KindUpstream, Status: status, Message: message, Detail: detail}
	}
}
