package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// MaxPhotos caps how many photos a single mission can hold.
const MaxPhotos = 5

// Photo is one captured image attached to a mission. URI is either a direct
// file reference or an opaque platform asset reference; AssetID is set only
// for the latter so the display layer can resolve a usable path.
type Photo struct {
	URI       string `json:"uri" validate:"required"`
	AssetID   string `json:"assetId,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// Mission is a named, geolocated checklist item completed by on-site photo
// capture. PhotoURI and AssetID are the single-photo era fields: they mirror
// Photos[0] whenever Photos is non-empty and stay absent otherwise, so data
// written by old builds keeps loading and old builds can still read ours.
type Mission struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Caption     string  `json:"caption,omitempty"`
	Note        string  `json:"note,omitempty"`
	Latitude    float64 `json:"latitude" validate:"latitude"`
	Longitude   float64 `json:"longitude" validate:"longitude"`
	IsCompleted bool    `json:"isCompleted"`
	PhotoURI    string  `json:"photoUri,omitempty"`
	AssetID     string  `json:"assetId,omitempty"`
	Photos      []Photo `json:"photos"`
	CreatedAt   int64   `json:"createdAt" validate:"required"`
}

// NewMission creates a mission in its initial state: no photos, not
// completed. Coordinates are fixed for the life of the mission.
func NewMission(id, name, caption string, latitude, longitude float64, createdAt time.Time) Mission {
	return Mission{
		ID:        id,
		Name:      name,
		Caption:   caption,
		Latitude:  latitude,
		Longitude: longitude,
		Photos:    []Photo{},
		CreatedAt: createdAt.UnixMilli(),
	}
}

// Normalize recomputes the derived fields: IsCompleted follows the photo
// count, and the legacy single-photo fields mirror Photos[0] or clear.
func (m *Mission) Normalize() {
	m.IsCompleted = len(m.Photos) > 0
	if len(m.Photos) > 0 {
		m.PhotoURI = m.Photos[0].URI
		m.AssetID = m.Photos[0].AssetID
	} else {
		m.PhotoURI = ""
		m.AssetID = ""
	}
}

// AddPhoto appends a photo and re-normalizes. A mission already holding
// MaxPhotos photos is left untouched and false is returned.
func (m *Mission) AddPhoto(p Photo) bool {
	if len(m.Photos) >= MaxPhotos {
		return false
	}
	m.Photos = append(m.Photos, p)
	m.Normalize()
	return true
}

// RemovePhoto removes the first photo whose URI matches and re-normalizes.
// Removing the last photo un-completes the mission and clears the legacy
// fields. Returns false when no photo matched. The remaining photos go into
// a fresh slice: mission values are copied around with their Photos backing
// array shared, so removal must never shift elements in place.
func (m *Mission) RemovePhoto(uri string) bool {
	for i, p := range m.Photos {
		if p.URI == uri {
			photos := make([]Photo, 0, len(m.Photos)-1)
			photos = append(photos, m.Photos[:i]...)
			photos = append(photos, m.Photos[i+1:]...)
			m.Photos = photos
			m.Normalize()
			return true
		}
	}
	return false
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
