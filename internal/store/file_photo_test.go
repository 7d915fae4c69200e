package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/models"
)

func newTestPhotoStorage(t *testing.T) (PhotoStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "photos")
	s, err := NewPhotoFileStorage(dir, logger.Nop())
	require.NoError(t, err)
	return s, dir
}

func TestNewPhotoFileStorage_CreatesDir(t *testing.T) {
	_, dir := newTestPhotoStorage(t)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPhotoFileStorage_SaveAndLoad(t *testing.T) {
	s, dir := newTestPhotoStorage(t)
	ctx := context.Background()
	key := models.PhotoKey{Role: models.RoleFounder, ID: "77"}

	require.NoError(t, s.SavePhoto(ctx, key, []byte("jpeg-1")))
	require.NoError(t, s.SavePhoto(ctx, key, []byte("jpeg-2")))

	data, err := s.LoadPhoto(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-2"), data)

	// stored under the flat cache name, no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "founder77", entries[0].Name())
}

func TestPhotoFileStorage_LoadMissing(t *testing.T) {
	s, _ := newTestPhotoStorage(t)

	_, err := s.LoadPhoto(context.Background(), models.PhotoKey{Role: models.RoleSpouse, ID: "1"})
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestPhotoFileStorage_InvalidKey(t *testing.T) {
	s, _ := newTestPhotoStorage(t)
	ctx := context.Background()

	_, err := s.LoadPhoto(ctx, models.PhotoKey{Role: "pet", ID: "1"})
	assert.ErrorIs(t, err, ErrInvalidPhotoKey)

	err = s.SavePhoto(ctx, models.PhotoKey{Role: models.RoleFounder}, []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidPhotoKey)
}

func TestPhotoFileStorage_RenamePhotos(t *testing.T) {
	s, _ := newTestPhotoStorage(t)
	ctx := context.Background()

	oldFounder := models.PhotoKey{Role: models.RoleFounder, ID: "new-abc"}
	require.NoError(t, s.SavePhoto(ctx, oldFounder, []byte("face")))

	// spouse photo absent: skipped without error
	require.NoError(t, s.RenamePhotos(ctx, "new-abc", "77"))

	_, err := s.LoadPhoto(ctx, oldFounder)
	assert.ErrorIs(t, err, ErrPhotoNotFound)

	data, err := s.LoadPhoto(ctx, models.PhotoKey{Role: models.RoleFounder, ID: "77"})
	require.NoError(t, err)
	assert.Equal(t, []byte("face"), data)
}

func TestPhotoFileStorage_DeletePhotos(t *testing.T) {
	s, _ := newTestPhotoStorage(t)
	ctx := context.Background()

	for _, role := range models.PhotoRoles {
		require.NoError(t, s.SavePhoto(ctx, models.PhotoKey{Role: role, ID: "5"}, []byte("x")))
	}

	require.NoError(t, s.DeletePhotos(ctx, "5"))
	require.NoError(t, s.DeletePhotos(ctx, "5"))

	for _, role := range models.PhotoRoles {
		_, err := s.LoadPhoto(ctx, models.PhotoKey{Role: role, ID: "5"})
		assert.ErrorIs(t, err, ErrPhotoNotFound)
	}
}
