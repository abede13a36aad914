package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/davomat/attendance-backend-go/internal/attendance"
	"github.com/davomat/attendance-backend-go/internal/geofence"
	"github.com/davomat/attendance-backend-go/internal/models"
	"github.com/davomat/attendance-backend-go/internal/repository"
	"github.com/davomat/attendance-backend-go/internal/settings"
)

// ErrOutsideWorkHours rejects samples submitted outside the employee's
// nominal work window
var ErrOutsideWorkHours = errors.New("location reported outside work hours")

// DateFormat is the calendar-date key format shared with the record store.
// Lexicographic order of these strings is chronological order.
const DateFormat = "2006-01-02"

// LocationService handles the ingestion path: classify a sample against the
// current zone snapshot, append it, and recompute the day's record.
type LocationService struct {
	locations *repository.LocationRepository
	records   *repository.RecordRepository
	settings  *settings.Provider

	// Serializes the read-aggregate-write cycle per employee-day so two
	// concurrent samples cannot lose an update. Different employees and
	// different days proceed in parallel.
	dayLocks *attendance.KeyedMutex
}

// NewLocationService creates a new location service
func NewLocationService(locations *repository.LocationRepository, records *repository.RecordRepository, provider *settings.Provider) *LocationService {
	return &LocationService{
		locations: locations,
		records:   records,
		settings:  provider,
		dayLocks:  attendance.NewKeyedMutex(),
	}
}

// Submit ingests one location report for an approved employee. The sample
// is classified against the zone snapshot in effect right now, appended,
// and the employee's record for that calendar date is recomputed from the
// full day's samples.
func (s *LocationService) Submit(e *models.Employee, lat, lon float64, at time.Time) (*models.LocationSample, error) {
	if at.IsZero() {
		at = time.Now()
	}

	if at.Hour() < e.WorkStartHour || at.Hour() >= e.WorkEndHour {
		return nil, fmt.Errorf("%w: window is %d:00-%d:00", ErrOutsideWorkHours, e.WorkStartHour, e.WorkEndHour)
	}

	inZone, distance := geofence.Classify(lat, lon, s.settings.CurrentZone())

	sample := &models.LocationSample{
		EmployeeID:     e.ID,
		TelegramID:     e.TelegramID,
		Latitude:       lat,
		Longitude:      lon,
		DistanceMeters: distance,
		InZone:         inZone,
		Timestamp:      at,
	}

	date := at.Format(DateFormat)
	key := e.ID + ":" + date
	s.dayLocks.Lock(key)
	defer s.dayLocks.Unlock(key)

	if err := s.locations.Insert(sample); err != nil {
		return nil, err
	}
	if err := s.recomputeDay(e, date); err != nil {
		return nil, err
	}

	return sample, nil
}

// recomputeDay rebuilds the daily record from every sample stored for the
// day. Caller must hold the day lock.
func (s *LocationService) recomputeDay(e *models.Employee, date string) error {
	samples, err := s.locations.ListByDay(e.ID, date)
	if err != nil {
		return err
	}

	record, err := attendance.AggregateDay(e.ID, date, samples, e.WorkHours(), s.settings.CurrentIntervalPolicy())
	if err != nil {
		return fmt.Errorf("failed to aggregate day %s: %w", date, err)
	}
	if record == nil {
		return nil
	}

	return s.records.Upsert(record)
}

// History retrieves an employee's samples for one calendar date
func (s *LocationService) History(employeeID, date string) ([]models.LocationSample, error) {
	if _, err := time.ParseInLocation(DateFormat, date, time.Local); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return s.locations.ListByDay(employeeID, date)
}

// Today retrieves an employee's samples for the current date
func (s *LocationService) Today(employeeID string) ([]models.LocationSample, error) {
	return s.locations.ListByDay(employeeID, time.Now().Format(DateFormat))
}

// Status summarizes the current day: counts, first/last report times and
// whether the most recent sample was inside the zone
func (s *LocationService) Status(e *models.Employee) (*models.TodayStatus, error) {
	date := time.Now().Format(DateFormat)
	samples, err := s.locations.ListByDay(e.ID, date)
	if err != nil {
		return nil, err
	}

	status := &models.TodayStatus{
		Date:           date,
		LocationsCount: len(samples),
		WorkStartHour:  e.WorkStartHour,
		WorkEndHour:    e.WorkEndHour,
	}

	for _, sample := range samples {
		if sample.InZone {
			status.ValidLocations++
		}
	}

	if len(samples) > 0 {
		first := samples[0].Timestamp
		last := samples[len(samples)-1].Timestamp
		status.FirstLocationTime = &first
		status.LastLocationTime = &last
		status.IsCurrentlyInOffice = samples[len(samples)-1].InZone
	}

	return status, nil
}
