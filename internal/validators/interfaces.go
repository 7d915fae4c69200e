// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks locally entered founder data before it is stored
// and queued for upload.
//
// Data pulled from the server is never validated: the server is
// authoritative and its snapshots are applied as they are.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
