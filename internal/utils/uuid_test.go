package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_LocalID(t *testing.T) {
	id := NewUUIDGenerator().LocalID()
	assert.True(t, strings.HasPrefix(id, "new-"))
}

func TestDeviceIdentity_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "device_id")

	first, err := NewDeviceIdentity(path).ID()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := NewDeviceIdentity(path).ID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDeviceIdentity_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device_id")
	require.NoError(t, os.WriteFile(path, []byte("  fixed-id\n"), 0o600))

	id, err := NewDeviceIdentity(path).ID()
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)
}

func TestDeviceIdentity_ReadErrorEmptyID(t *testing.T) {
	// a directory cannot be read as a file
	id, err := NewDeviceIdentity(t.TempDir()).ID()
	assert.Error(t, err)
	assert.Empty(t, id)
}
