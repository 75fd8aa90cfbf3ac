// Package transfer reads and writes the shareable mission file: a
// pretty-printed JSON array with the same schema as the persisted
// collection.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"waymark/models"
)

// ErrNoMissions is returned when there is nothing to export.
var ErrNoMissions = errors.New("no missions to export")

// Export writes the collection as pretty-printed JSON.
func Export(fs afero.Fs, path string, missions []models.Mission) error {
	if len(missions) == 0 {
		return ErrNoMissions
	}
	data, err := json.MarshalIndent(missions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal missions: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file %s: %w", path, err)
	}
	return nil
}

// ReadImport parses a user-picked import file. The payload must be a JSON
// array and every element must carry at minimum a string id, a string name
// and numeric coordinates; fields beyond these are not checked. A
// well-formed empty array is valid and means "replace with nothing". On any
// validation failure an error is returned and nothing is touched.
func ReadImport(fs afero.Fs, path string) ([]models.Mission, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file %s: %w", path, err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("invalid import data, expected a JSON array of missions: %w", err)
	}
	for i, row := range rows {
		if _, ok := row["id"].(string); !ok {
			return nil, fmt.Errorf("invalid mission at index %d: missing string id", i)
		}
		if _, ok := row["name"].(string); !ok {
			return nil, fmt.Errorf("invalid mission at index %d: missing string name", i)
		}
		if _, ok := row["latitude"].(float64); !ok {
			return nil, fmt.Errorf("invalid mission at index %d: missing numeric latitude", i)
		}
		if _, ok := row["longitude"].(float64); !ok {
			return nil, fmt.Errorf("invalid mission at index %d: missing numeric longitude", i)
		}
	}

	missions := []models.Mission{}
	if err := json.Unmarshal(data, &missions); err != nil {
		return nil, fmt.Errorf("invalid mission data structure: %w", err)
	}
	return missions, nil
}
