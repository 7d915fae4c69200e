// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading request parameters. Handlers match
// them with [errors.Is] and answer the rejection body.
var (
	// ErrMissingParameter is returned when a required query or form
	// parameter is absent or empty.
	ErrMissingParameter = errors.New("missing request parameter")

	// ErrInvalidParameter is returned when a parameter is present but
	// cannot be parsed, e.g. a non-numeric version.
	ErrInvalidParameter = errors.New("invalid request parameter")

	// ErrEmptyToken is returned by the session-key middleware when the
	// request carries no "k" parameter.
	ErrEmptyToken = errors.New("empty session key")

	// ErrTokenMismatch is returned when the server is configured with a
	// session key and the request carries a different one.
	ErrTokenMismatch = errors.New("session key does not match")
)
