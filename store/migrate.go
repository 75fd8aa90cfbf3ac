package store

import "waymark/models"

// Migrate brings every record to the canonical multi-photo form. Applied on
// every load; applying it twice yields the same result as once.
func Migrate(missions []models.Mission) []models.Mission {
	out := make([]models.Mission, len(missions))
	for i, m := range missions {
		out[i] = migrateRecord(m)
	}
	return out
}

// migrateRecord upgrades a single record written before the photos field
// existed. A nil Photos slice means the persisted record had no photos key
// at all: a non-empty legacy PhotoURI becomes the sole entry of Photos,
// carrying the record's asset id and creation time; otherwise Photos becomes
// empty. Records that already carry photos pass through unchanged.
func migrateRecord(m models.Mission) models.Mission {
	if m.Photos != nil {
		return m
	}
	if m.PhotoURI != "" {
		m.Photos = []models.Photo{{
			URI:       m.PhotoURI,
			AssetID:   m.AssetID,
			CreatedAt: m.CreatedAt,
		}}
	} else {
		m.Photos = []models.Photo{}
	}
	m.Normalize()
	return m
}
