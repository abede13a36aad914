// Package geofence classifies location samples against the configured
// work zone.
package geofence

import (
	"github.com/golang/geo/s2"

	"github.com/davomat/attendance-backend-go/internal/models"
)

// EarthRadiusMeters is the Earth's mean radius
const EarthRadiusMeters = 6371000.0

// Distance calculates the great-circle distance between two points in meters
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Classify reports whether the point lies inside the work zone and its
// distance in meters to the zone's reference point: the center in circle
// mode, the corner midpoint in area mode.
//
// In area mode the two results are independent: the inside test uses the
// normalized bounding box, while the distance is always measured from the
// midpoint. A point just outside the box can therefore report a small
// distance; operators read the distance as "how far from the office", not
// as "how far past the boundary".
func Classify(lat, lon float64, zone models.WorkZone) (bool, float64) {
	if zone.Mode == models.ZoneModeArea && zone.Area != nil {
		return classifyArea(lat, lon, zone.Area)
	}
	return classifyCircle(lat, lon, zone.Circle)
}

func classifyCircle(lat, lon float64, c *models.CircleZone) (bool, float64) {
	if c == nil {
		return false, 0
	}
	distance := Distance(lat, lon, c.Latitude, c.Longitude)
	return distance <= c.Radius, distance
}

func classifyArea(lat, lon float64, a *models.AreaZone) (bool, float64) {
	minLat := min(a.Point1Lat, a.Point2Lat)
	maxLat := max(a.Point1Lat, a.Point2Lat)
	minLng := min(a.Point1Lng, a.Point2Lng)
	maxLng := max(a.Point1Lng, a.Point2Lng)

	inside := minLat <= lat && lat <= maxLat && minLng <= lon && lon <= maxLng

	centerLat := (minLat + maxLat) / 2
	centerLng := (minLng + maxLng) / 2
	distance := Distance(lat, lon, centerLat, centerLng)

	return inside, distance
}
