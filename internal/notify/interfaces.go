// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify holds the fire-and-forget side effects of the sync client:
// the "directory updated" notification and anonymous usage reporting.
//
// Neither side effect may fail or block the caller. Implementations log
// their own errors and return nothing.
package notify

import (
	"context"

	"github.com/MKhiriev/founder-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notify_mock.go -package=mock

// Notifier tells the user that a sync pass changed the local directory.
type Notifier interface {
	Notify(ctx context.Context, report models.SyncReport)
}

// UsageReporter sends one usage statistics entry per reported page.
type UsageReporter interface {
	// Report sends page and pageURL in the background.
	Report(ctx context.Context, page, pageURL string)
	// Wait blocks until every report sent so far has finished.
	Wait()
}
