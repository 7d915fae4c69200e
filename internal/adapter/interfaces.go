// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport client of the founder directory
// server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// engine from the wire format. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) speaking the directory's form-encoded endpoints.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401). The server's "0" failure sentinel surfaces as [ErrRejected] and
// undecodable bodies as [ErrMalformedResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/founder-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the founder directory server.
// Every call carries the session token of the current pass, and every
// returned version value is exactly what the server sent.
type ServerAdapter interface {
	// DeleteFounder asks the server to delete the record with id and returns
	// the new server max version. Returns [ErrRejected] when the server
	// answers "0".
	DeleteFounder(ctx context.Context, token, id string) (int64, error)

	// CreateFounder sends the content fields of f and returns the record as
	// stored by the server, carrying its assigned id and version. The id of
	// f is not transmitted.
	CreateFounder(ctx context.Context, token string, f models.Founder) (models.Founder, error)

	// UpdateFounder sends the content fields of f together with its id and
	// last known version and returns the record as stored by the server.
	UpdateFounder(ctx context.Context, token string, f models.Founder) (models.Founder, error)

	// GetUpdatesSince returns every record changed on the server with a
	// version in (localMax, serverMax]. serverMax 0 leaves the upper bound
	// to the server. Malformed entries are skipped and counted; a body that
	// is not a JSON array is an error.
	GetUpdatesSince(ctx context.Context, token string, localMax, serverMax int64) (models.DeltaBatch, error)

	// UploadPhoto sends one photo as a multipart form.
	UploadPhoto(ctx context.Context, token string, key models.PhotoKey, data []byte) error

	// DownloadPhoto fetches one photo. Returns [ErrNoPhoto] when the server
	// answers with an empty body.
	DownloadPhoto(ctx context.Context, token string, key models.PhotoKey) ([]byte, error)
}
