// Package tracker keeps an in-memory mirror of the mission store and offers
// the mutation operations the command layer works through. The store stays
// the source of truth; the mirror must be refreshed before use and replaced
// from each operation's result.
package tracker

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"waymark/models"
	"waymark/store"
)

// Tracker mirrors the store's collection in memory. Mutations locate
// missions in the current mirror rather than re-reading the store, so two
// overlapping mutations race last-write-wins on the durable collection; the
// command layer serializes user actions, and Refresh reconciles the mirror
// with durable truth.
type Tracker struct {
	store    *store.MissionStore
	missions []models.Mission
	loading  bool
	log      zerolog.Logger
	now      func() time.Time
}

// New creates a tracker over the given store. Call Refresh before reading
// Missions.
func New(st *store.MissionStore, log zerolog.Logger) *Tracker {
	return &Tracker{
		store:    st,
		missions: []models.Mission{},
		log:      log,
		now:      time.Now,
	}
}

// Missions returns a copy of the cached collection in stored order.
func (t *Tracker) Missions() []models.Mission {
	out := make([]models.Mission, len(t.missions))
	copy(out, t.missions)
	return out
}

// Loading reports whether a Refresh is in flight.
func (t *Tracker) Loading() bool {
	return t.loading
}

// Refresh replaces the mirror with the store's current collection.
func (t *Tracker) Refresh() error {
	t.loading = true
	defer func() { t.loading = false }()

	missions, err := t.store.Load()
	if err != nil {
		return err
	}
	t.missions = missions
	return nil
}

// AddMission creates a mission with a generated ID and the current time,
// appends it to the store, and returns it. No validation happens here; the
// calling layer rejects empty names before reaching the tracker.
func (t *Tracker) AddMission(name, caption string, latitude, longitude float64) (models.Mission, error) {
	mission := models.NewMission(uuid.NewString(), name, caption, latitude, longitude, t.now())
	missions, err := t.store.Add(mission)
	if err != nil {
		t.log.Error().Err(err).Str("name", name).Msg("failed to add mission")
		return models.Mission{}, err
	}
	t.missions = missions
	return mission, nil
}

// CompleteMission appends a captured photo to the mission and marks it
// completed. Unknown IDs are a silent no-op, as is a mission already holding
// the maximum number of photos.
func (t *Tracker) CompleteMission(id, photoURI, assetID string) error {
	mission, ok := t.find(id)
	if !ok {
		return nil
	}
	if !mission.AddPhoto(models.Photo{URI: photoURI, AssetID: assetID, CreatedAt: t.now().UnixMilli()}) {
		t.log.Debug().Str("id", id).Msg("mission already at photo capacity")
		return nil
	}

	missions, err := t.store.Update(mission)
	if err != nil {
		t.log.Error().Err(err).Str("id", id).Msg("failed to complete mission")
		return err
	}
	t.missions = missions
	return nil
}

// DeletePhoto removes the photo with the given URI from the mission. The
// mission un-completes when its last photo is removed. Unknown mission IDs
// and unknown URIs are silent no-ops.
func (t *Tracker) DeletePhoto(missionID, photoURI string) error {
	mission, ok := t.find(missionID)
	if !ok {
		return nil
	}
	if !mission.RemovePhoto(photoURI) {
		return nil
	}

	missions, err := t.store.Update(mission)
	if err != nil {
		t.log.Error().Err(err).Str("id", missionID).Msg("failed to delete photo")
		return err
	}
	t.missions = missions
	return nil
}

// SaveNote sets the mission's note. An empty note clears it.
func (t *Tracker) SaveNote(id, note string) error {
	mission, ok := t.find(id)
	if !ok {
		return nil
	}
	mission.Note = note

	missions, err := t.store.Update(mission)
	if err != nil {
		t.log.Error().Err(err).Str("id", id).Msg("failed to save note")
		return err
	}
	t.missions = missions
	return nil
}

// DeleteMission removes the mission from the store and replaces the mirror
// with the result unconditionally.
func (t *Tracker) DeleteMission(id string) error {
	missions, err := t.store.Delete(id)
	if err != nil {
		t.log.Error().Err(err).Str("id", id).Msg("failed to delete mission")
		return err
	}
	t.missions = missions
	return nil
}

// Import replaces the entire collection with the given missions, verbatim.
// The caller validates shape before calling; the tracker trusts its input
// and does not load back from the store.
func (t *Tracker) Import(missions []models.Mission) error {
	if err := t.store.Save(missions); err != nil {
		t.log.Error().Err(err).Msg("failed to import missions")
		return err
	}
	t.missions = missions
	return nil
}

// Reorder applies the new order to the mirror first, then persists it. If
// the save fails, a forced Refresh resynchronizes the mirror with durable
// truth instead of leaving them diverged.
func (t *Tracker) Reorder(missions []models.Mission) error {
	t.missions = missions
	if err := t.store.Save(missions); err != nil {
		t.log.Error().Err(err).Msg("failed to persist new order, reloading")
		if refreshErr := t.Refresh(); refreshErr != nil {
			t.log.Error().Err(refreshErr).Msg("failed to reload after reorder failure")
		}
		return err
	}
	return nil
}

// find returns a copy of the cached mission with the given ID.
func (t *Tracker) find(id string) (models.Mission, bool) {
	for _, m := range t.missions {
		if m.ID == id {
			return m, true
		}
	}
	return models.Mission{}, false
}
