package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/founder-directory/internal/adapter"
	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/store"
	"github.com/MKhiriev/founder-directory/models"
)

type clientPhotoService struct {
	photos  store.PhotoStorage
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientPhotoService(photos store.PhotoStorage, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientPhotoService {
	return &clientPhotoService{
		photos:  photos,
		adapter: serverAdapter,
		logger:  logger,
	}
}

func (s *clientPhotoService) UploadPhotos(ctx context.Context, token, id string) error {
	var errs []error

	for _, role := range models.PhotoRoles {
		key := models.PhotoKey{Role: role, ID: id}

		data, err := s.photos.LoadPhoto(ctx, key)
		if errors.Is(err, store.ErrPhotoNotFound) || (err == nil && len(data) == 0) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("load photo %s: %w", key, err))
			continue
		}

		if err = s.adapter.UploadPhoto(ctx, token, key, data); err != nil {
			s.logger.Warn().Err(err).
				Str("func", "clientPhotoService.UploadPhotos").
				Str("key", key.String()).
				Msg("photo upload failed")
			errs = append(errs, fmt.Errorf("upload photo %s: %w", key, err))
			continue
		}

		s.logger.Debug().
			Str("func", "clientPhotoService.UploadPhotos").
			Str("key", key.String()).
			Int("bytes", len(data)).
			Msg("photo uploaded")
	}

	return errors.Join(errs...)
}

func (s *clientPhotoService) DownloadPhotos(ctx context.Context, token, id string) error {
	var errs []error

	for _, role := range models.PhotoRoles {
		key := models.PhotoKey{Role: role, ID: id}

		data, err := s.adapter.DownloadPhoto(ctx, token, key)
		if errors.Is(err, adapter.ErrNoPhoto) {
			continue
		}
		if err != nil {
			s.logger.Warn().Err(err).
				Str("func", "clientPhotoService.DownloadPhotos").
				Str("key", key.String()).
				Msg("photo download failed")
			errs = append(errs, fmt.Errorf("download photo %s: %w", key, err))
			continue
		}

		if err = s.photos.SavePhoto(ctx, key, data); err != nil {
			s.logger.Err(err).
				Str("func", "clientPhotoService.DownloadPhotos").
				Str("key", key.String()).
				Msg("failed to cache downloaded photo")
			errs = append(errs, fmt.Errorf("save photo %s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

func (s *clientPhotoService) MovePhotos(ctx context.Context, oldID, newID string) error {
	if oldID == newID {
		return nil
	}
	return s.photos.RenamePhotos(ctx, oldID, newID)
}

func (s *clientPhotoService) DeletePhotos(ctx context.Context, id string) error {
	return s.photos.DeletePhotos(ctx, id)
}

// countErrors returns how many failures err carries when it was built with
// errors.Join.
func countErrors(err error) int {
	if err == nil {
		return 0
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return len(joined.Unwrap())
	}
	return 1
}
