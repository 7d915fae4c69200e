package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/founder-directory/internal/config"
	"github.com/MKhiriev/founder-directory/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// FounderRepository is the SQLite-backed record store.
	FounderRepository FounderRepository
	// PhotoStorage is the flat directory of cached photos.
	PhotoStorage PhotoStorage

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Opens the photo cache directory cfg.Files.PhotoDir.
//
// Returns an error if the database connection cannot be established, if
// migration fails or if the photo directory cannot be created.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	photos, err := NewPhotoFileStorage(cfg.Files.PhotoDir, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ClientStorages{
		FounderRepository: NewFounderRepository(db, logger),
		PhotoStorage:      photos,
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
