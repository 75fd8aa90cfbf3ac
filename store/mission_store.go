package store

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"waymark/models"
)

// MissionsKey is the durable key holding the whole mission collection. The
// value is a JSON array of mission records, legacy fields included, so data
// written by earlier single-photo builds loads unchanged.
const MissionsKey = "@missions_data_v1"

// MissionStore is the sole authority for durable mission data. Every
// mutation is a full load-mutate-save cycle over the entire collection:
// there is no per-record addressing in the backend and no version check, so
// concurrent writers race last-write-wins. Fine for a personal list of tens
// to low hundreds of missions.
type MissionStore struct {
	kv  KeyValue
	log zerolog.Logger
}

// NewMissionStore wraps a durable key-value backend.
func NewMissionStore(kv KeyValue, log zerolog.Logger) *MissionStore {
	return &MissionStore{kv: kv, log: log}
}

// Load reads the persisted collection, applying migration to every record.
// An absent key yields an empty collection. A corrupt blob also yields an
// empty collection with only a logged warning: a broken store must not take
// the app down, at the documented cost of silently losing the old data on
// the next save.
func (s *MissionStore) Load() ([]models.Mission, error) {
	raw, ok, err := s.kv.Get(MissionsKey)
	if err != nil {
		return []models.Mission{}, fmt.Errorf("failed to load missions: %w", err)
	}
	if !ok {
		return []models.Mission{}, nil
	}

	var missions []models.Mission
	if err := json.Unmarshal([]byte(raw), &missions); err != nil {
		s.log.Warn().Err(err).Msg("discarding unreadable mission data")
		return []models.Mission{}, nil
	}
	return Migrate(missions), nil
}

// Save serializes the full collection and overwrites the durable key.
func (s *MissionStore) Save(missions []models.Mission) error {
	data, err := json.Marshal(missions)
	if err != nil {
		return fmt.Errorf("failed to marshal missions: %w", err)
	}
	if err := s.kv.Set(MissionsKey, string(data)); err != nil {
		s.log.Error().Err(err).Msg("failed to save missions")
		return fmt.Errorf("failed to save missions: %w", err)
	}
	return nil
}

// Add appends a mission at the end of the collection and returns the new
// collection.
func (s *MissionStore) Add(mission models.Mission) ([]models.Mission, error) {
	missions, err := s.Load()
	if err != nil {
		return missions, err
	}
	missions = append(missions, mission)
	if err := s.Save(missions); err != nil {
		return missions, err
	}
	return missions, nil
}

// Update replaces the mission whose ID matches. An unknown ID is a silent
// no-op: the unchanged collection is returned with no error.
func (s *MissionStore) Update(mission models.Mission) ([]models.Mission, error) {
	missions, err := s.Load()
	if err != nil {
		return missions, err
	}
	replaced := false
	for i := range missions {
		if missions[i].ID == mission.ID {
			missions[i] = mission
			replaced = true
			break
		}
	}
	if !replaced {
		return missions, nil
	}
	if err := s.Save(missions); err != nil {
		return missions, err
	}
	return missions, nil
}

// Delete removes the mission with the given ID, preserving the relative
// order of the rest. An unknown ID is a silent no-op.
func (s *MissionStore) Delete(id string) ([]models.Mission, error) {
	missions, err := s.Load()
	if err != nil {
		return missions, err
	}
	kept := make([]models.Mission, 0, len(missions))
	removed := false
	for _, m := range missions {
		if m.ID == id {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	if !removed {
		return missions, nil
	}
	if err := s.Save(kept); err != nil {
		return kept, err
	}
	return kept, nil
}

// Close releases the underlying backend.
func (s *MissionStore) Close() error {
	return s.kv.Close()
}
