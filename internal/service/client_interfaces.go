package service

import (
	"context"

	"github.com/MKhiriev/founder-directory/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService defines the reconciliation pass between the local record
// store and the directory server.
type ClientSyncService interface {
	// RunSyncPass pushes pending local deletions, creations and edits, then
	// pulls every server change newer than the local max version.
	//
	// The pass never fails as a whole: every per-record problem is logged and
	// counted in the returned report while the remaining records are still
	// processed. A token is required; the caller decides what an empty one
	// means.
	RunSyncPass(ctx context.Context, token string) models.SyncReport
}

// ClientPhotoService defines the photo side-channel of a record. Photos are
// transferred after the record itself has been acknowledged and never block
// record sync.
type ClientPhotoService interface {
	// UploadPhotos sends the cached founder and spouse photos of id. A photo
	// that is not cached is not an error. The returned error joins the
	// failures of every role that could not be uploaded.
	UploadPhotos(ctx context.Context, token, id string) error

	// DownloadPhotos fetches the founder and spouse photos of id into the
	// cache. A role the server has no photo for is skipped silently; the
	// returned error joins the remaining failures.
	DownloadPhotos(ctx context.Context, token, id string) error

	// MovePhotos re-keys the cached photos of oldID to newID.
	MovePhotos(ctx context.Context, oldID, newID string) error

	// DeletePhotos drops the cached photos of id.
	DeletePhotos(ctx context.Context, id string) error
}

// ClientDirectoryService is the local editing surface of the directory. Every
// write lands in the local store first and is flagged for the next sync pass.
type ClientDirectoryService interface {
	// Create stores a new record under a placeholder id, flagged new and
	// dirty. Unknown field names are rejected with [ErrUnknownField].
	Create(ctx context.Context, fields map[string]string) (models.Founder, error)

	// Update applies fields to the record with id and flags it dirty.
	// Fields that are not mentioned keep their current value.
	Update(ctx context.Context, id string, fields map[string]string) (models.Founder, error)

	// Delete flags the record for deletion. A record that never reached the
	// server is removed outright together with its cached photos.
	Delete(ctx context.Context, id string) error

	// SetPhoto caches a photo for the record and flags it dirty so the photo
	// is uploaded by the next pass.
	SetPhoto(ctx context.Context, key models.PhotoKey, data []byte) error

	// Get returns a record that is not flagged for deletion.
	Get(ctx context.Context, id string) (models.Founder, error)

	// List returns every record that is not flagged for deletion.
	List(ctx context.Context) ([]models.Founder, error)
}

// ClientSyncJob runs reconciliation passes on a fixed interval for a bounded
// lifetime. The lifetime deadline is fixed when the job is constructed; once
// the job reaches [models.JobStopped] it never runs again.
type ClientSyncJob interface {
	// Run loops on the calling goroutine until the token is empty, the
	// deadline passes, ctx is done or Stop is called.
	Run(ctx context.Context, token string)

	// Start runs the loop on a background goroutine. Calling Start on a job
	// that is already running or stopped is a no-op.
	Start(ctx context.Context, token string)

	// Stop requests the loop to end and blocks until a background loop has
	// exited. A pass that is in flight runs to completion first.
	Stop()

	// SyncNow runs a pass immediately. Concurrent callers and the scheduler
	// share one in-flight pass.
	SyncNow(ctx context.Context, token string) models.SyncReport

	// State returns the current lifecycle state.
	State() models.JobState
}
