package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waymark/models"
)

func TestParsePosition(t *testing.T) {
	pos, err := parsePosition("52.3702,4.8952")
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.InDelta(t, 52.3702, pos.Lat, 1e-9)
	assert.InDelta(t, 4.8952, pos.Lon, 1e-9)

	pos, err = parsePosition("")
	require.NoError(t, err)
	assert.Nil(t, pos)

	_, err = parsePosition("not-a-coordinate")
	assert.Error(t, err)
}

func TestValidateNewMission(t *testing.T) {
	assert.NoError(t, validateNewMission("Tower", "", 35.0, 139.0))

	// Coordinates outside the valid degree ranges never reach the store.
	assert.Error(t, validateNewMission("Tower", "", 123.0, 500.0))
	assert.Error(t, validateNewMission("Tower", "", -91.0, 0.0))
	assert.Error(t, validateNewMission("Tower", "", 0.0, 181.0))
}

func TestResolveMission(t *testing.T) {
	missions := []models.Mission{
		{ID: "aaaa1111", Name: "Lighthouse"},
		{ID: "aaab2222", Name: "Windmill"},
		{ID: "bbbb3333", Name: "Bridge"},
	}

	m, err := resolveMission(missions, "aaaa1111")
	require.NoError(t, err)
	assert.Equal(t, "Lighthouse", m.Name)

	m, err = resolveMission(missions, "bb")
	require.NoError(t, err)
	assert.Equal(t, "Bridge", m.Name)

	_, err = resolveMission(missions, "aa")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = resolveMission(missions, "zz")
	assert.ErrorContains(t, err, "no mission found")
}
