package store

import (
	"context"

	"github.com/MKhiriev/founder-directory/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// FounderRepository is the local record store of founder records.
//
// Every mutating method is a single atomic write: a concurrent reader never
// observes a record halfway through an acknowledgement. Scans return records
// ordered by version.
type FounderRepository interface {
	// MaxVersion returns the highest version held locally, deleted-pending
	// records included. An empty store yields 0.
	MaxVersion(ctx context.Context) (int64, error)

	// ListDeleted returns the records flagged for deletion.
	ListDeleted(ctx context.Context) ([]models.Founder, error)
	// ListNew returns the records that were never created on the server.
	ListNew(ctx context.Context) ([]models.Founder, error)
	// ListDirty returns existing records with unsent local edits.
	ListDirty(ctx context.Context) ([]models.Founder, error)

	// GetFounder returns the record with id or [ErrFounderNotFound].
	GetFounder(ctx context.Context, id string) (models.Founder, error)
	// GetAllFounders returns every record not flagged for deletion.
	GetAllFounders(ctx context.Context) ([]models.Founder, error)

	// InsertFounder stores f with the flags it carries.
	InsertFounder(ctx context.Context, f models.Founder) error
	// UpdateFounder overwrites the fields and version of the record with
	// f.ID with a server snapshot and clears dirty. new and deleted are
	// kept. It returns the rows affected.
	UpdateFounder(ctx context.Context, f models.Founder) (int64, error)
	// AcknowledgeFounder applies a server acknowledgement to the record
	// held under oldID: id, fields and version are taken from f, new and
	// dirty are cleared, deleted is untouched.
	AcknowledgeFounder(ctx context.Context, oldID string, f models.Founder) error
	// EditFounder replaces the content fields of f.ID and flags it dirty.
	EditFounder(ctx context.Context, f models.Founder) error

	MarkDirty(ctx context.Context, id string) error
	MarkDeleted(ctx context.Context, id string) error
	// DeleteFounder removes the record with id and returns the rows affected.
	DeleteFounder(ctx context.Context, id string) (int64, error)

	// Subscribe returns a feed of committed mutations and a function that
	// ends the subscription. Slow subscribers lose events.
	Subscribe() (<-chan models.ChangeEvent, func())
}

// PhotoStorage is the local cache of founder and spouse photos.
type PhotoStorage interface {
	LoadPhoto(ctx context.Context, key models.PhotoKey) ([]byte, error)
	SavePhoto(ctx context.Context, key models.PhotoKey, data []byte) error
	RenamePhotos(ctx context.Context, oldID, newID string) error
	DeletePhotos(ctx context.Context, id string) error
}
