package models

import "time"

// LocationSample is one GPS report from an employee. Samples are append-only:
// once stored they are never updated, and aggregation reads them back in
// whatever order the store returns.
type LocationSample struct {
	ID         int64   `json:"id" db:"id"`
	EmployeeID string  `json:"employee_id" db:"employee_id"`
	TelegramID int64   `json:"telegram_id" db:"telegram_id"`
	Latitude   float64 `json:"latitude" db:"latitude"`
	Longitude  float64 `json:"longitude" db:"longitude"`

	// Computed at validation time against the zone snapshot in effect
	DistanceMeters float64 `json:"distance" db:"distance"`
	InZone         bool    `json:"in_zone" db:"in_zone"`

	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// SubmitLocationRequest is the payload for POST /locations/send.
// Coordinates are pointers so a reading on the equator or prime meridian
// (a literal 0) still counts as present. Timestamp is optional; the server
// clock is used when it is zero.
type SubmitLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Timestamp int64    `json:"timestamp,omitempty"` // unix seconds
}

// TodayStatus summarizes the current day for one employee
type TodayStatus struct {
	Date                string     `json:"date"`
	LocationsCount      int        `json:"locations_count"`
	ValidLocations      int        `json:"valid_locations"`
	IsCurrentlyInOffice bool       `json:"is_currently_in_office"`
	FirstLocationTime   *time.Time `json:"first_location_time,omitempty"`
	LastLocationTime    *time.Time `json:"last_location_time,omitempty"`
	WorkStartHour       int        `json:"work_start_hour"`
	WorkEndHour         int        `json:"work_end_hour"`
}
