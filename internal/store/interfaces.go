package store

import (
	"context"

	"github.com/MKhiriev/founder-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DirectoryStorage is the authoritative record set held by the development
// directory server. Every write takes the next value of one global version
// counter.
type DirectoryStorage interface {
	// Create stores a new record, assigning its id and version.
	Create(ctx context.Context, fields map[string]string) (models.Founder, error)
	// Update replaces the fields of a live record and assigns a new version.
	Update(ctx context.Context, id string, fields map[string]string) (models.Founder, error)
	// Delete turns a live record into a tombstone and returns the new
	// server max version.
	Delete(ctx context.Context, id string) (int64, error)
	// Since returns records and tombstones with lower < version <= upper,
	// ordered by version. upper <= 0 means no upper bound.
	Since(ctx context.Context, lower, upper int64) ([]models.Founder, error)
	// MaxVersion returns the current value of the version counter.
	MaxVersion(ctx context.Context) int64

	SavePhoto(ctx context.Context, key models.PhotoKey, data []byte) error
	LoadPhoto(ctx context.Context, key models.PhotoKey) ([]byte, error)
}
