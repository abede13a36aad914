package models

// ZoneMode selects which work-zone shape is active
type ZoneMode string

const (
	ZoneModeCircle ZoneMode = "circle"
	ZoneModeArea   ZoneMode = "area"
)

// CircleZone is a circular work zone around an office point
type CircleZone struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"` // meters
}

// AreaZone is an axis-aligned rectangular work zone given by two opposite
// corners. Corner order is not significant; classification normalizes them.
type AreaZone struct {
	Point1Lat float64 `json:"point1_lat"`
	Point1Lng float64 `json:"point1_lng"`
	Point2Lat float64 `json:"point2_lat"`
	Point2Lng float64 `json:"point2_lng"`
}

// WorkZone is a tagged union of the two zone shapes. Exactly one of Circle
// and Area is set, selected by Mode.
type WorkZone struct {
	Mode   ZoneMode    `json:"mode"`
	Circle *CircleZone `json:"circle,omitempty"`
	Area   *AreaZone   `json:"area,omitempty"`
}

// IntervalPolicy defines the expected location reporting cadence
type IntervalPolicy struct {
	Minutes     int `json:"minutes"`      // expected interval between samples, 5..120
	GracePeriod int `json:"grace_period"` // tolerated extra minutes per gap
}

// MaxGapMinutes returns the largest gap between consecutive samples that
// does not count as absence
func (p IntervalPolicy) MaxGapMinutes() float64 {
	return float64(p.Minutes + p.GracePeriod)
}

// WorkHoursPolicy is an employee's nominal working window, whole hours [0,24)
type WorkHoursPolicy struct {
	StartHour int `json:"work_start_hour"`
	EndHour   int `json:"work_end_hour"`
}
