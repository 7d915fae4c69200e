package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/store"
	"github.com/MKhiriev/founder-directory/models"
)

type directoryService struct {
	storage store.DirectoryStorage
	logger  *logger.Logger
}

func NewDirectoryService(storage store.DirectoryStorage, logger *logger.Logger) DirectoryService {
	return &directoryService{
		storage: storage,
		logger:  logger,
	}
}

func (s *directoryService) Create(ctx context.Context, fields map[string]string) (models.Founder, error) {
	f, err := s.storage.Create(ctx, fields)
	if err != nil {
		return models.Founder{}, fmt.Errorf("create founder: %w", err)
	}

	s.logger.Debug().
		Str("func", "directoryService.Create").
		Str("id", f.ID).
		Int64("version", f.Version).
		Msg("founder created")
	return f, nil
}

func (s *directoryService) Update(ctx context.Context, id string, baseVersion int64, fields map[string]string) (models.Founder, error) {
	if id == "" {
		return models.Founder{}, fmt.Errorf("%w: empty id", ErrInvalidDataProvided)
	}

	f, err := s.storage.Update(ctx, id, fields)
	if err != nil {
		return models.Founder{}, fmt.Errorf("update founder %s: %w", id, err)
	}

	s.logger.Debug().
		Str("func", "directoryService.Update").
		Str("id", id).
		Int64("base_version", baseVersion).
		Int64("version", f.Version).
		Msg("founder updated")
	return f, nil
}

func (s *directoryService) Delete(ctx context.Context, id string) (int64, error) {
	if id == "" {
		return 0, fmt.Errorf("%w: empty id", ErrInvalidDataProvided)
	}

	maxVersion, err := s.storage.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete founder %s: %w", id, err)
	}
	return maxVersion, nil
}

func (s *directoryService) Since(ctx context.Context, lower, upper int64) ([]models.Founder, error) {
	if lower < 0 {
		return nil, fmt.Errorf("%w: negative lower bound %d", ErrInvalidDataProvided, lower)
	}
	if upper > 0 && upper <= lower {
		return []models.Founder{}, nil
	}

	return s.storage.Since(ctx, lower, upper)
}

func (s *directoryService) SavePhoto(ctx context.Context, key models.PhotoKey, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty photo", ErrInvalidDataProvided)
	}
	if err := s.storage.SavePhoto(ctx, key, data); err != nil {
		return fmt.Errorf("save photo %s: %w", key, err)
	}
	return nil
}

func (s *directoryService) LoadPhoto(ctx context.Context, key models.PhotoKey) ([]byte, error) {
	return s.storage.LoadPhoto(ctx, key)
}
