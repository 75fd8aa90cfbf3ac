package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMission_InitialState(t *testing.T) {
	created := time.UnixMilli(1700000000000)
	m := NewMission("42", "Tower", "old tower", 35.0, 139.0, created)

	assert.False(t, m.IsCompleted)
	assert.Empty(t, m.Photos)
	assert.NotNil(t, m.Photos)
	assert.Equal(t, int64(1700000000000), m.CreatedAt)
	assert.Empty(t, m.PhotoURI)
}

func TestMission_AddPhoto_MirrorsLegacyFields(t *testing.T) {
	m := NewMission("1", "Tower", "", 35.0, 139.0, time.Now())

	ok := m.AddPhoto(Photo{URI: "file:///a.jpg", AssetID: "asset-1", CreatedAt: 100})
	require.True(t, ok)

	assert.True(t, m.IsCompleted)
	assert.Equal(t, "file:///a.jpg", m.PhotoURI)
	assert.Equal(t, "asset-1", m.AssetID)

	// A second photo does not move the mirror off the first one.
	require.True(t, m.AddPhoto(Photo{URI: "file:///b.jpg"}))
	assert.Equal(t, "file:///a.jpg", m.PhotoURI)
	assert.Equal(t, "asset-1", m.AssetID)
}

func TestMission_AddPhoto_CapacityBound(t *testing.T) {
	m := NewMission("1", "Tower", "", 35.0, 139.0, time.Now())
	for i := 0; i < MaxPhotos; i++ {
		require.True(t, m.AddPhoto(Photo{URI: "file:///" + string(rune('a'+i)) + ".jpg"}))
	}

	ok := m.AddPhoto(Photo{URI: "file:///overflow.jpg"})

	assert.False(t, ok)
	assert.Len(t, m.Photos, MaxPhotos)
}

func TestMission_RemovePhoto_LastUncompletes(t *testing.T) {
	m := NewMission("1", "Tower", "", 35.0, 139.0, time.Now())
	require.True(t, m.AddPhoto(Photo{URI: "file:///only.jpg", AssetID: "asset-9"}))

	ok := m.RemovePhoto("file:///only.jpg")
	require.True(t, ok)

	assert.False(t, m.IsCompleted)
	assert.Empty(t, m.Photos)
	assert.Empty(t, m.PhotoURI)
	assert.Empty(t, m.AssetID)
}

func TestMission_RemovePhoto_ReMirrorsToNewFirst(t *testing.T) {
	m := NewMission("1", "Tower", "", 35.0, 139.0, time.Now())
	require.True(t, m.AddPhoto(Photo{URI: "file:///a.jpg", AssetID: "asset-a"}))
	require.True(t, m.AddPhoto(Photo{URI: "file:///b.jpg", AssetID: "asset-b"}))

	require.True(t, m.RemovePhoto("file:///a.jpg"))

	assert.True(t, m.IsCompleted)
	assert.Equal(t, "file:///b.jpg", m.PhotoURI)
	assert.Equal(t, "asset-b", m.AssetID)
}

func TestMission_RemovePhoto_NoMatch(t *testing.T) {
	m := NewMission("1", "Tower", "", 35.0, 139.0, time.Now())
	require.True(t, m.AddPhoto(Photo{URI: "file:///a.jpg"}))

	assert.False(t, m.RemovePhoto("file:///missing.jpg"))
	assert.Len(t, m.Photos, 1)
	assert.True(t, m.IsCompleted)
}

func TestMission_RemovePhoto_DoesNotTouchStructCopies(t *testing.T) {
	m := NewMission("42", "Tower", "", 35.0, 139.0, time.UnixMilli(100))
	require.True(t, m.AddPhoto(Photo{URI: "file:///a.jpg"}))
	require.True(t, m.AddPhoto(Photo{URI: "file:///b.jpg"}))

	// Struct copies share the Photos backing array; removal on one copy must
	// not clobber the other's elements.
	copied := m
	require.True(t, copied.RemovePhoto("file:///a.jpg"))

	require.Len(t, m.Photos, 2)
	assert.Equal(t, "file:///a.jpg", m.Photos[0].URI)
	assert.Equal(t, "file:///b.jpg", m.Photos[1].URI)
	require.Len(t, copied.Photos, 1)
	assert.Equal(t, "file:///b.jpg", copied.Photos[0].URI)
}

func TestValidateStruct_Mission(t *testing.T) {
	valid := NewMission("1", "Tower", "", 35.0, 139.0, time.Now())
	assert.NoError(t, ValidateStruct(valid))

	missingName := NewMission("1", "", "", 35.0, 139.0, time.Now())
	assert.Error(t, ValidateStruct(missingName))

	badLatitude := NewMission("1", "Tower", "", 123.0, 139.0, time.Now())
	assert.Error(t, ValidateStruct(badLatitude))
}
