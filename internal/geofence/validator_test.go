package geofence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davomat/attendance-backend-go/internal/models"
)

func circleZone(lat, lon, radius float64) models.WorkZone {
	return models.WorkZone{
		Mode:   models.ZoneModeCircle,
		Circle: &models.CircleZone{Latitude: lat, Longitude: lon, Radius: radius},
	}
}

func areaZone(p1Lat, p1Lng, p2Lat, p2Lng float64) models.WorkZone {
	return models.WorkZone{
		Mode: models.ZoneModeArea,
		Area: &models.AreaZone{Point1Lat: p1Lat, Point1Lng: p1Lng, Point2Lat: p2Lat, Point2Lng: p2Lng},
	}
}

func TestClassifyCircle(t *testing.T) {
	zone := circleZone(41.2995, 69.2401, 100)

	t.Run("point at center", func(t *testing.T) {
		inZone, distance := Classify(41.2995, 69.2401, zone)
		assert.True(t, inZone)
		assert.InDelta(t, 0, distance, 0.01)
	})

	t.Run("point 150m away", func(t *testing.T) {
		// ~150m due north of the center
		inZone, distance := Classify(41.2995+150.0/111195.0, 69.2401, zone)
		assert.False(t, inZone)
		assert.InDelta(t, 150, distance, 5)
	})

	t.Run("point just inside radius", func(t *testing.T) {
		inZone, distance := Classify(41.2995+90.0/111195.0, 69.2401, zone)
		assert.True(t, inZone)
		assert.Less(t, distance, 100.0)
	})
}

func TestClassifyAreaCornerOrderIndependence(t *testing.T) {
	forward := areaZone(41.2995, 69.2401, 41.3005, 69.2411)
	reversed := areaZone(41.3005, 69.2411, 41.2995, 69.2401)

	points := []struct {
		lat, lon float64
	}{
		{41.3000, 69.2406}, // inside
		{41.2995, 69.2401}, // on a corner
		{41.4000, 69.3000}, // far outside
		{41.3005, 69.2406}, // on the boundary
	}

	for _, p := range points {
		in1, d1 := Classify(p.lat, p.lon, forward)
		in2, d2 := Classify(p.lat, p.lon, reversed)
		assert.Equal(t, in1, in2, "in_zone differs for (%v, %v)", p.lat, p.lon)
		assert.InDelta(t, d1, d2, 0.001, "distance differs for (%v, %v)", p.lat, p.lon)
	}
}

func TestClassifyAreaBounds(t *testing.T) {
	zone := areaZone(41.2995, 69.2401, 41.3005, 69.2411)

	inZone, _ := Classify(41.3000, 69.2406, zone)
	assert.True(t, inZone)

	// Boundary is inclusive on all four edges
	inZone, _ = Classify(41.2995, 69.2406, zone)
	assert.True(t, inZone)
	inZone, _ = Classify(41.3005, 69.2411, zone)
	assert.True(t, inZone)

	inZone, _ = Classify(41.3006, 69.2406, zone)
	assert.False(t, inZone)
}

// A point just past the box edge is still close to the midpoint, so it
// reports a small distance while classifying outside. The inside test and
// the distance are separate readings.
func TestClassifyAreaDistanceFromMidpoint(t *testing.T) {
	zone := areaZone(41.2995, 69.2401, 41.3005, 69.2411)

	inZone, distance := Classify(41.3006, 69.2406, zone)
	assert.False(t, inZone)
	assert.Less(t, distance, 100.0)

	// Distance is measured from the corner midpoint
	midLat, midLng := 41.3000, 69.2406
	expected := Distance(41.3006, 69.2406, midLat, midLng)
	assert.InDelta(t, expected, distance, 0.001)
}

func TestDistance(t *testing.T) {
	// One degree of latitude is ~111.2km
	d := Distance(41.0, 69.0, 42.0, 69.0)
	assert.InDelta(t, 111195, d, 500)

	assert.InDelta(t, 0, Distance(41.2995, 69.2401, 41.2995, 69.2401), 0.001)
}
