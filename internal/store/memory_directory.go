// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/MKhiriev/founder-directory/models"
)

// memoryDirectoryStorage keeps the server record set in memory. Deleted
// records stay as tombstones so that later pulls learn about the deletion.
type memoryDirectoryStorage struct {
	mu      sync.RWMutex
	version int64
	nextID  int64
	records map[string]models.Founder
	photos  map[models.PhotoKey][]byte
}

// NewMemoryDirectoryStorage returns an empty [DirectoryStorage].
func NewMemoryDirectoryStorage() DirectoryStorage {
	return &memoryDirectoryStorage{
		records: make(map[string]models.Founder),
		photos:  make(map[models.PhotoKey][]byte),
	}
}

func (m *memoryDirectoryStorage) Create(ctx context.Context, fields map[string]string) (models.Founder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.version++
	founder := models.Founder{
		ID:      strconv.FormatInt(m.nextID, 10),
		Version: m.version,
		Fields:  copyContentFields(fields),
	}
	m.records[founder.ID] = founder

	return founder.Clone(), nil
}

func (m *memoryDirectoryStorage) Update(ctx context.Context, id string, fields map[string]string) (models.Founder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	founder, ok := m.records[id]
	if !ok || founder.Deleted {
		return models.Founder{}, fmt.Errorf("%w: id=%s", ErrFounderNotFound, id)
	}

	m.version++
	founder.Version = m.version
	founder.Fields = copyContentFields(fields)
	m.records[id] = founder

	return founder.Clone(), nil
}

func (m *memoryDirectoryStorage) Delete(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	founder, ok := m.records[id]
	if !ok || founder.Deleted {
		return 0, fmt.Errorf("%w: id=%s", ErrFounderNotFound, id)
	}

	m.version++
	founder.Version = m.version
	founder.Deleted = true
	m.records[id] = founder
	for _, role := range models.PhotoRoles {
		delete(m.photos, models.PhotoKey{Role: role, ID: id})
	}

	return m.version, nil
}

func (m *memoryDirectoryStorage) Since(ctx context.Context, lower, upper int64) ([]models.Founder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Founder, 0)
	for _, founder := range m.records {
		if founder.Version <= lower {
			continue
		}
		if upper > 0 && founder.Version > upper {
			continue
		}
		result = append(result, founder.Clone())
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Version < result[j].Version
	})

	return result, nil
}

func (m *memoryDirectoryStorage) MaxVersion(ctx context.Context) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

func (m *memoryDirectoryStorage) SavePhoto(ctx context.Context, key models.PhotoKey, data []byte) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPhotoKey, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	founder, ok := m.records[key.ID]
	if !ok || founder.Deleted {
		return fmt.Errorf("%w: id=%s", ErrFounderNotFound, key.ID)
	}

	m.photos[key] = append([]byte(nil), data...)
	return nil
}

func (m *memoryDirectoryStorage) LoadPhoto(ctx context.Context, key models.PhotoKey) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.photos[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPhotoNotFound, key)
	}

	return append([]byte(nil), data...), nil
}

func copyContentFields(fields map[string]string) map[string]string {
	out := make(map[string]string, len(models.FounderFields))
	for _, name := range models.FounderFields {
		out[name] = models.NormalizeValue(fields[name])
	}
	return out
}
