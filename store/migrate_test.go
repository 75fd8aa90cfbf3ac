package store

import (
	"reflect"
	"testing"

	"waymark/models"
)

func TestMigrate_LegacySinglePhoto(t *testing.T) {
	in := []models.Mission{{
		ID:          "1",
		Name:        "X",
		IsCompleted: true,
		PhotoURI:    "file:///old.jpg",
		AssetID:     "asset-1",
		CreatedAt:   100,
	}}

	out := Migrate(in)

	m := out[0]
	want := []models.Photo{{URI: "file:///old.jpg", AssetID: "asset-1", CreatedAt: 100}}
	if !reflect.DeepEqual(m.Photos, want) {
		t.Errorf("Photos = %+v, want %+v", m.Photos, want)
	}
	if !m.IsCompleted || m.PhotoURI != "file:///old.jpg" || m.AssetID != "asset-1" {
		t.Errorf("Mirror broken after migration: %+v", m)
	}
}

func TestMigrate_NoPhotosNoLegacy(t *testing.T) {
	in := []models.Mission{{ID: "1", Name: "X", CreatedAt: 100}}

	out := Migrate(in)

	if out[0].Photos == nil || len(out[0].Photos) != 0 {
		t.Errorf("Photos should be empty non-nil, got %#v", out[0].Photos)
	}
	if out[0].IsCompleted {
		t.Error("Mission with no photos must not be completed")
	}
}

func TestMigrate_CanonicalRecordPassesThrough(t *testing.T) {
	m := models.Mission{
		ID:          "1",
		Name:        "X",
		IsCompleted: true,
		PhotoURI:    "file:///a.jpg",
		Photos:      []models.Photo{{URI: "file:///a.jpg"}, {URI: "file:///b.jpg"}},
		CreatedAt:   100,
	}

	out := Migrate([]models.Mission{m})

	if !reflect.DeepEqual(out[0], m) {
		t.Errorf("Canonical record changed: got %+v, want %+v", out[0], m)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	in := []models.Mission{
		{ID: "1", Name: "legacy", IsCompleted: true, PhotoURI: "file:///old.jpg", CreatedAt: 100},
		{ID: "2", Name: "bare", CreatedAt: 200},
		{ID: "3", Name: "canonical", IsCompleted: true, PhotoURI: "file:///c.jpg",
			Photos: []models.Photo{{URI: "file:///c.jpg", CreatedAt: 300}}, CreatedAt: 300},
	}

	once := Migrate(in)
	twice := Migrate(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Migration not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}
