package service

import (
	"context"

	"github.com/MKhiriev/founder-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DirectoryService is the server side of the directory endpoints. Every
// write takes the next value of one global version counter, so versions
// returned by this service grow strictly.
type DirectoryService interface {
	// Create stores a new record and returns it with its assigned id and
	// version.
	Create(ctx context.Context, fields map[string]string) (models.Founder, error)

	// Update replaces the fields of a live record. baseVersion is the
	// version the client last saw; the last writer wins.
	Update(ctx context.Context, id string, baseVersion int64, fields map[string]string) (models.Founder, error)

	// Delete turns a record into a tombstone and returns the new max
	// version.
	Delete(ctx context.Context, id string) (int64, error)

	// Since returns records and tombstones with lower < version <= upper.
	// upper <= 0 means no upper bound.
	Since(ctx context.Context, lower, upper int64) ([]models.Founder, error)

	SavePhoto(ctx context.Context, key models.PhotoKey, data []byte) error
	LoadPhoto(ctx context.Context, key models.PhotoKey) ([]byte, error)
}
