package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"waymark/geo"
	"waymark/internal/ui"
	"waymark/models"
)

// parsePosition turns a "lat,lon" flag value into a position. An empty value
// means no position was supplied.
func parsePosition(at string) (*ui.Position, error) {
	if strings.TrimSpace(at) == "" {
		return nil, nil
	}
	lat, lon, err := geo.ParseCoord(at)
	if err != nil {
		return nil, err
	}
	return &ui.Position{Lat: lat, Lon: lon}, nil
}

// validateNewMission checks the mission the add command is about to hand to
// the tracker, which performs no validation of its own. Out-of-range
// coordinates are rejected here.
func validateNewMission(name, caption string, lat, lon float64) error {
	candidate := models.NewMission(uuid.NewString(), name, caption, lat, lon, time.Now())
	return models.ValidateStruct(candidate)
}

// resolveMission finds a mission by exact ID or unique ID prefix.
func resolveMission(missions []models.Mission, idArg string) (models.Mission, error) {
	for _, m := range missions {
		if m.ID == idArg {
			return m, nil
		}
	}

	var matches []models.Mission
	for _, m := range missions {
		if strings.HasPrefix(m.ID, idArg) {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Mission{}, fmt.Errorf("no mission found with ID %q", idArg)
	default:
		return models.Mission{}, fmt.Errorf("ID prefix %q is ambiguous (%d matches)", idArg, len(matches))
	}
}
