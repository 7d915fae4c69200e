package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/store"
	"github.com/MKhiriev/founder-directory/internal/utils"
	"github.com/MKhiriev/founder-directory/internal/validators"
	"github.com/MKhiriev/founder-directory/models"
)

type clientDirectoryService struct {
	founders  store.FounderRepository
	photos    store.PhotoStorage
	ids       *utils.UUIDGenerator
	validator validators.Validator

	logger *logger.Logger
}

func NewClientDirectoryService(founders store.FounderRepository, photos store.PhotoStorage, logger *logger.Logger) ClientDirectoryService {
	return &clientDirectoryService{
		founders:  founders,
		photos:    photos,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewFounderValidator(),
		logger:    logger,
	}
}

func (s *clientDirectoryService) Create(ctx context.Context, fields map[string]string) (models.Founder, error) {
	f := models.Founder{
		ID:    s.ids.LocalID(),
		New:   true,
		Dirty: true,
	}
	if err := applyFields(&f, fields); err != nil {
		return models.Founder{}, err
	}
	if err := s.validate(ctx, f, fields); err != nil {
		return models.Founder{}, err
	}
	for _, name := range models.FounderFields {
		if _, ok := f.Fields[name]; !ok {
			f.SetField(name, "")
		}
	}

	if err := s.founders.InsertFounder(ctx, f); err != nil {
		s.logger.Err(err).
			Str("func", "clientDirectoryService.Create").
			Str("id", f.ID).
			Msg("failed to store new record")
		return models.Founder{}, fmt.Errorf("create founder: %w", err)
	}

	return f, nil
}

func (s *clientDirectoryService) Update(ctx context.Context, id string, fields map[string]string) (models.Founder, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return models.Founder{}, err
	}

	f = f.Clone()
	if err = applyFields(&f, fields); err != nil {
		return models.Founder{}, err
	}
	if err = s.validate(ctx, f, fields); err != nil {
		return models.Founder{}, err
	}

	if err = s.founders.EditFounder(ctx, f); err != nil {
		s.logger.Err(err).
			Str("func", "clientDirectoryService.Update").
			Str("id", id).
			Msg("failed to store local edit")
		return models.Founder{}, fmt.Errorf("update founder %s: %w", id, err)
	}

	f.Dirty = true
	return f, nil
}

func (s *clientDirectoryService) Delete(ctx context.Context, id string) error {
	f, err := s.founders.GetFounder(ctx, id)
	if err != nil {
		return fmt.Errorf("delete founder %s: %w", id, err)
	}

	if !f.New {
		if err = s.founders.MarkDeleted(ctx, id); err != nil {
			return fmt.Errorf("delete founder %s: %w", id, err)
		}
		return nil
	}

	// never reached the server: nothing to propagate
	if _, err = s.founders.DeleteFounder(ctx, id); err != nil {
		return fmt.Errorf("delete founder %s: %w", id, err)
	}
	if err = s.photos.DeletePhotos(ctx, id); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientDirectoryService.Delete").
			Str("id", id).
			Msg("failed to drop cached photos")
	}
	return nil
}

func (s *clientDirectoryService) SetPhoto(ctx context.Context, key models.PhotoKey, data []byte) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %s", store.ErrInvalidPhotoKey, key)
	}
	if _, err := s.Get(ctx, key.ID); err != nil {
		return err
	}

	if err := s.photos.SavePhoto(ctx, key, data); err != nil {
		return fmt.Errorf("set photo %s: %w", key, err)
	}
	if err := s.founders.MarkDirty(ctx, key.ID); err != nil {
		return fmt.Errorf("set photo %s: %w", key, err)
	}
	return nil
}

func (s *clientDirectoryService) Get(ctx context.Context, id string) (models.Founder, error) {
	f, err := s.founders.GetFounder(ctx, id)
	if err != nil {
		return models.Founder{}, fmt.Errorf("get founder %s: %w", id, err)
	}
	if f.Deleted {
		return models.Founder{}, fmt.Errorf("get founder %s: %w", id, ErrFounderDeleted)
	}
	return f, nil
}

func (s *clientDirectoryService) List(ctx context.Context) ([]models.Founder, error) {
	founders, err := s.founders.GetAllFounders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list founders: %w", err)
	}
	return founders, nil
}

// validate checks the values of the fields that were just edited.
func (s *clientDirectoryService) validate(ctx context.Context, f models.Founder, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	if err := s.validator.Validate(ctx, f, names...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// applyFields copies fields onto f, normalizing null markers. Every name must
// be a content field.
func applyFields(f *models.Founder, fields map[string]string) error {
	var errs []error
	for name := range fields {
		if !models.IsContentField(name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownField, name))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	for name, value := range fields {
		f.SetField(name, models.NormalizeValue(value))
	}
	return nil
}
