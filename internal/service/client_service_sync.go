// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/founder-directory/internal/adapter"
	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/store"
	"github.com/MKhiriev/founder-directory/models"
)

type clientSyncService struct {
	founders store.FounderRepository
	photos   ClientPhotoService
	adapter  adapter.ServerAdapter

	logger *logger.Logger
}

// NewClientSyncService creates the reconciliation engine over the local
// record store, the photo side-channel and the server adapter.
func NewClientSyncService(founders store.FounderRepository, photos ClientPhotoService, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		founders: founders,
		photos:   photos,
		adapter:  serverAdapter,
		logger:   logger,
	}
}

// RunSyncPass implements ClientSyncService. The steps run in a fixed order:
// deletions, creations, updates, then the delta pull bounded by the local
// max captured before anything was pushed and the highest server max
// learned while pushing.
func (s *clientSyncService) RunSyncPass(ctx context.Context, token string) models.SyncReport {
	localMax, err := s.founders.MaxVersion(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientSyncService.RunSyncPass").
			Msg("failed to read local max version, pass abandoned")
		return models.SyncReport{}
	}

	session := &models.SyncSession{Token: token, LocalMax: localMax}
	report := models.SyncReport{LocalMax: localMax}

	s.pushDeleted(ctx, session, &report)
	s.pushNew(ctx, session, &report)
	s.pushDirty(ctx, session, &report)
	s.pullUpdates(ctx, session, &report)

	report.ServerMax = session.ServerMax
	report.Changed = report.Pulled > 0

	s.logger.Info().
		Str("func", "clientSyncService.RunSyncPass").
		Int64("local_max", report.LocalMax).
		Int64("server_max", report.ServerMax).
		Int("deleted", report.Deleted).
		Int("created", report.Created).
		Int("updated", report.Updated).
		Int("pulled", report.Pulled).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Int("photo_failures", report.PhotoFailures).
		Msg("sync pass finished")

	return report
}

func (s *clientSyncService) pushDeleted(ctx context.Context, session *models.SyncSession, report *models.SyncReport) {
	deleted, err := s.founders.ListDeleted(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientSyncService.pushDeleted").
			Msg("failed to list deleted records")
		return
	}

	for _, f := range deleted {
		// a placeholder id was never sent to the server
		if f.New || f.IsLocal() {
			s.removeLocal(ctx, f.ID)
			report.Deleted++
			continue
		}

		maxVersion, err := s.adapter.DeleteFounder(ctx, session.Token, f.ID)
		if err != nil {
			s.logger.Warn().Err(err).
				Str("func", "clientSyncService.pushDeleted").
				Str("id", f.ID).
				Msg("server delete failed, record stays flagged")
			report.Failed++
			continue
		}

		session.Raise(maxVersion)
		s.removeLocal(ctx, f.ID)
		report.Deleted++
	}
}

func (s *clientSyncService) pushNew(ctx context.Context, session *models.SyncSession, report *models.SyncReport) {
	created, err := s.founders.ListNew(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientSyncService.pushNew").
			Msg("failed to list new records")
		return
	}

	for _, f := range created {
		ack, err := s.adapter.CreateFounder(ctx, session.Token, f)
		if err != nil {
			s.logger.Warn().Err(err).
				Str("func", "clientSyncService.pushNew").
				Str("id", f.ID).
				Msg("server create failed, record stays new")
			report.Failed++
			continue
		}

		if err = s.founders.AcknowledgeFounder(ctx, f.ID, ack); err != nil {
			s.logger.Err(err).
				Str("func", "clientSyncService.pushNew").
				Str("id", f.ID).
				Str("server_id", ack.ID).
				Msg("failed to store create acknowledgement")
			report.Failed++
			continue
		}

		session.Raise(ack.Version)
		report.Created++

		if err = s.photos.MovePhotos(ctx, f.ID, ack.ID); err != nil {
			s.logger.Err(err).
				Str("func", "clientSyncService.pushNew").
				Str("id", f.ID).
				Str("server_id", ack.ID).
				Msg("failed to move cached photos to server id")
			report.PhotoFailures++
		}
		s.uploadPhotos(ctx, session, report, ack.ID)
	}
}

func (s *clientSyncService) pushDirty(ctx context.Context, session *models.SyncSession, report *models.SyncReport) {
	dirty, err := s.founders.ListDirty(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientSyncService.pushDirty").
			Msg("failed to list dirty records")
		return
	}

	for _, f := range dirty {
		ack, err := s.adapter.UpdateFounder(ctx, session.Token, f)
		if err != nil {
			s.logger.Warn().Err(err).
				Str("func", "clientSyncService.pushDirty").
				Str("id", f.ID).
				Msg("server update failed, record stays dirty")
			report.Failed++
			continue
		}

		// the server may not echo the id back under the same spelling
		ack.ID = f.ID
		if err = s.founders.AcknowledgeFounder(ctx, f.ID, ack); err != nil {
			s.logger.Err(err).
				Str("func", "clientSyncService.pushDirty").
				Str("id", f.ID).
				Msg("failed to store update acknowledgement")
			report.Failed++
			continue
		}

		session.Raise(ack.Version)
		report.Updated++

		s.uploadPhotos(ctx, session, report, f.ID)
	}
}

func (s *clientSyncService) pullUpdates(ctx context.Context, session *models.SyncSession, report *models.SyncReport) {
	batch, err := s.adapter.GetUpdatesSince(ctx, session.Token, session.LocalMax, session.ServerMax)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientSyncService.pullUpdates").
			Int64("local_max", session.LocalMax).
			Int64("server_max", session.ServerMax).
			Msg("delta pull failed")
		return
	}
	report.Skipped += batch.Skipped

	for _, delta := range batch.Entries {
		f := delta.Founder

		if delta.Deleted {
			if _, err := s.founders.DeleteFounder(ctx, f.ID); err != nil {
				s.logger.Err(err).
					Str("func", "clientSyncService.pullUpdates").
					Str("id", f.ID).
					Msg("failed to apply server deletion")
				report.Skipped++
				continue
			}
			s.deletePhotos(ctx, f.ID)
			session.Raise(f.Version)
			report.Pulled++
			continue
		}

		if err := s.upsert(ctx, f); err != nil {
			s.logger.Err(err).
				Str("func", "clientSyncService.pullUpdates").
				Str("id", f.ID).
				Msg("failed to apply server record")
			report.Skipped++
			continue
		}
		session.Raise(f.Version)
		report.Pulled++

		if err := s.photos.DownloadPhotos(ctx, session.Token, f.ID); err != nil {
			report.PhotoFailures += countErrors(err)
		}
	}
}

// upsert stores a server snapshot: update by id first, insert when no row
// was touched.
func (s *clientSyncService) upsert(ctx context.Context, f models.Founder) error {
	affected, err := s.founders.UpdateFounder(ctx, f)
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	f.New, f.Dirty, f.Deleted = false, false, false
	return s.founders.InsertFounder(ctx, f)
}

// uploadPhotos sends the photos of an acknowledged record. A failure flags
// the record dirty again so the next pass retries it.
func (s *clientSyncService) uploadPhotos(ctx context.Context, session *models.SyncSession, report *models.SyncReport, id string) {
	err := s.photos.UploadPhotos(ctx, session.Token, id)
	if err == nil {
		return
	}

	report.PhotoFailures += countErrors(err)
	if err = s.founders.MarkDirty(ctx, id); err != nil {
		s.logger.Err(err).
			Str("func", "clientSyncService.uploadPhotos").
			Str("id", id).
			Msg("failed to re-flag record after photo upload failure")
	}
}

func (s *clientSyncService) removeLocal(ctx context.Context, id string) {
	if _, err := s.founders.DeleteFounder(ctx, id); err != nil {
		s.logger.Err(err).
			Str("func", "clientSyncService.removeLocal").
			Str("id", id).
			Msg("failed to remove deleted record locally")
		return
	}
	s.deletePhotos(ctx, id)
}

func (s *clientSyncService) deletePhotos(ctx context.Context, id string) {
	if err := s.photos.DeletePhotos(ctx, id); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientSyncService.deletePhotos").
			Str("id", id).
			Msg("failed to drop cached photos")
	}
}
