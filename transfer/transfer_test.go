package transfer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waymark/models"
)

func TestExport_PrettyPrintedArray(t *testing.T) {
	fs := afero.NewMemMapFs()
	missions := []models.Mission{
		models.NewMission("1", "Tower", "old tower", 35.0, 139.0, time.UnixMilli(100)),
	}

	require.NoError(t, Export(fs, "missions_export.json", missions))

	data, err := afero.ReadFile(fs, "missions_export.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ") // indented

	var parsed []models.Mission
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "Tower", parsed[0].Name)
}

func TestExport_EmptyCollection(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := Export(fs, "missions_export.json", nil)

	assert.ErrorIs(t, err, ErrNoMissions)
	exists, _ := afero.Exists(fs, "missions_export.json")
	assert.False(t, exists)
}

func TestReadImport_Valid(t *testing.T) {
	fs := afero.NewMemMapFs()
	payload := `[
	  {"id":"1","name":"Tower","latitude":35.0,"longitude":139.0,"isCompleted":false,"createdAt":100,"photos":[]},
	  {"id":"2","name":"Bridge","latitude":36.0,"longitude":140.0,"isCompleted":true,"createdAt":200,
	   "photoUri":"file:///b.jpg","photos":[{"uri":"file:///b.jpg"}],"extraField":"ignored"}
	]`
	require.NoError(t, afero.WriteFile(fs, "import.json", []byte(payload), 0o644))

	missions, err := ReadImport(fs, "import.json")

	require.NoError(t, err)
	require.Len(t, missions, 2)
	assert.Equal(t, "Bridge", missions[1].Name)
	assert.Equal(t, "file:///b.jpg", missions[1].PhotoURI)
}

func TestReadImport_EmptyArrayIsValid(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "import.json", []byte("[]"), 0o644))

	missions, err := ReadImport(fs, "import.json")

	require.NoError(t, err)
	assert.NotNil(t, missions)
	assert.Empty(t, missions)
}

func TestReadImport_Rejections(t *testing.T) {
	cases := map[string]string{
		"not json":         `{not json`,
		"not an array":     `{"id":"1"}`,
		"missing id":       `[{"name":"X","latitude":0,"longitude":0}]`,
		"missing name":     `[{"id":"1","latitude":0,"longitude":0}]`,
		"string latitude":  `[{"id":"1","name":"X","latitude":"0","longitude":0}]`,
		"missing longitude": `[{"id":"1","name":"X","latitude":0}]`,
	}

	for label, payload := range cases {
		t.Run(label, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "import.json", []byte(payload), 0o644))

			_, err := ReadImport(fs, "import.json")
			assert.Error(t, err)
		})
	}
}

func TestReadImport_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := ReadImport(fs, "nope.json")
	assert.Error(t, err)
}
