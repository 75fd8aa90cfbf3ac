// Package geo computes great-circle distances between mission coordinates
// and classifies whether the user is close enough to a mission site to
// capture photos for it.
package geo

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"waymark/models"
)

// EarthRadius is the mean Earth radius in meters used by the haversine
// formula.
const EarthRadius = 6371000.0

// CameraRange is the maximum distance in meters at which a mission's camera
// is available.
const CameraRange = 50.0

// ErrInvalidCoordinates is returned when a coordinate string cannot be
// parsed.
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// Distance returns the great-circle distance in meters between two points
// given in decimal degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	const rad = math.Pi / 180
	phi1 := lat1 * rad
	phi2 := lat2 * rad
	dPhi := (lat2 - lat1) * rad
	dLambda := (lon2 - lon1) * rad

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadius * c
}

// WithinRange reports whether a distance in meters is inside camera range.
func WithinRange(distance float64) bool {
	return distance <= CameraRange
}

// ParseCoord parses a "lat,lon" string in decimal degrees. ParseFloat
// accepts "NaN" and "Inf" spellings, so both components are also checked
// for finiteness.
func ParseCoord(coords string) (lat, lon float64, err error) {
	parts := strings.Split(coords, ",")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidCoordinates
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, ErrInvalidCoordinates
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return 0, 0, ErrInvalidCoordinates
	}
	return lat, lon, nil
}

// SortByDistance returns a copy of missions ordered by distance from the
// given position, nearest first, or farthest first when farthest is set.
// The sort is stable: missions at equal distance keep their stored order.
func SortByDistance(missions []models.Mission, lat, lon float64, farthest bool) []models.Mission {
	sorted := make([]models.Mission, len(missions))
	copy(sorted, missions)
	sort.SliceStable(sorted, func(i, j int) bool {
		di := Distance(lat, lon, sorted[i].Latitude, sorted[i].Longitude)
		dj := Distance(lat, lon, sorted[j].Latitude, sorted[j].Longitude)
		if farthest {
			return di > dj
		}
		return di < dj
	})
	return sorted
}
