package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/davomat/attendance-backend-go/internal/models"
)

// LocationRepository handles database operations for location samples.
// Samples are append-only; there is no update path.
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Insert appends a location sample and fills in its assigned ID
func (r *LocationRepository) Insert(s *models.LocationSample) error {
	query := `INSERT INTO location_samples
		(employee_id, telegram_id, latitude, longitude, distance, in_zone, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.Exec(query,
		s.EmployeeID, s.TelegramID, s.Latitude, s.Longitude,
		s.DistanceMeters, s.InZone, s.Timestamp.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert location sample: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read sample id: %w", err)
	}
	s.ID = id
	return nil
}

// ListByDay retrieves all samples for one employee on one calendar date
// (YYYY-MM-DD, server timezone)
func (r *LocationRepository) ListByDay(employeeID, date string) ([]models.LocationSample, error) {
	dayStart, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `SELECT id, employee_id, telegram_id, latitude, longitude, distance, in_zone, timestamp
		FROM location_samples
		WHERE employee_id = ? AND timestamp >= ? AND timestamp < ?
		ORDER BY timestamp`
	rows, err := r.db.Query(query, employeeID, dayStart.Unix(), dayEnd.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to query location samples: %w", err)
	}
	defer rows.Close()

	var samples []models.LocationSample
	for rows.Next() {
		var s models.LocationSample
		var ts int64
		err := rows.Scan(&s.ID, &s.EmployeeID, &s.TelegramID,
			&s.Latitude, &s.Longitude, &s.DistanceMeters, &s.InZone, &ts)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location sample: %w", err)
		}
		s.Timestamp = time.Unix(ts, 0)
		samples = append(samples, s)
	}

	return samples, rows.Err()
}
