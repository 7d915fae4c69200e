package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/models"
)

// photoFileStorage is the default implementation of [PhotoStorage]. Photos
// live in one flat directory, one file per cached image, named after
// [models.PhotoKey.FileName].
type photoFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewPhotoFileStorage constructs a [PhotoStorage] rooted at dir, creating
// the directory when it does not exist yet.
func NewPhotoFileStorage(dir string, logger *logger.Logger) (PhotoStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating photo dir: %w", err)
	}

	return &photoFileStorage{dir: dir, logger: logger}, nil
}

// LoadPhoto returns the cached bytes for key, or [ErrPhotoNotFound] when
// nothing is cached under it.
func (p *photoFileStorage) LoadPhoto(ctx context.Context, key models.PhotoKey) ([]byte, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPhotoKey, key)
	}

	data, err := os.ReadFile(p.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPhotoNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading photo %s: %w", key, err)
	}

	return data, nil
}

// SavePhoto writes data under key, replacing any previous file. The bytes
// are written to a temporary file first and renamed into place, so readers
// never observe a partially written photo.
func (p *photoFileStorage) SavePhoto(ctx context.Context, key models.PhotoKey, data []byte) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPhotoKey, key)
	}

	tmp, err := os.CreateTemp(p.dir, "."+key.FileName()+".*")
	if err != nil {
		return fmt.Errorf("error creating temp photo file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing photo %s: %w", key, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error closing photo %s: %w", key, err)
	}

	if err = os.Rename(tmpName, p.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error storing photo %s: %w", key, err)
	}

	return nil
}

// RenamePhotos moves every cached photo of oldID to newID. Roles without a
// cached photo are skipped.
func (p *photoFileStorage) RenamePhotos(ctx context.Context, oldID, newID string) error {
	log := logger.FromContext(ctx)

	var errs []error
	for _, role := range models.PhotoRoles {
		from := models.PhotoKey{Role: role, ID: oldID}
		to := models.PhotoKey{Role: role, ID: newID}

		err := os.Rename(p.path(from), p.path(to))
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}

		log.Err(err).
			Str("func", "photoFileStorage.RenamePhotos").
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("failed to move cached photo")
		errs = append(errs, fmt.Errorf("error moving photo %s: %w", from, err))
	}

	return errors.Join(errs...)
}

// DeletePhotos removes every cached photo of id.
func (p *photoFileStorage) DeletePhotos(ctx context.Context, id string) error {
	var errs []error
	for _, role := range models.PhotoRoles {
		key := models.PhotoKey{Role: role, ID: id}
		if err := os.Remove(p.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("error removing photo %s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

func (p *photoFileStorage) path(key models.PhotoKey) string {
	return filepath.Join(p.dir, filepath.Base(key.FileName()))
}
