package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/davomat/attendance-backend-go/internal/models"
)

// RecordRepository handles database operations for daily attendance records.
// Records are keyed by (employee_id, date); Upsert replaces the whole row so
// a recompute always wins over stale values.
type RecordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Upsert inserts or fully replaces the record for its employee-day
func (r *RecordRepository) Upsert(rec *models.DailyRecord) error {
	now := time.Now()
	query := `INSERT INTO daily_records
		(employee_id, date, work_start_time, work_end_time,
		 total_work_hours, present_hours, absent_hours,
		 total_locations, valid_locations, late_minutes,
		 created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(employee_id, date) DO UPDATE SET
			work_start_time = excluded.work_start_time,
			work_end_time = excluded.work_end_time,
			total_work_hours = excluded.total_work_hours,
			present_hours = excluded.present_hours,
			absent_hours = excluded.absent_hours,
			total_locations = excluded.total_locations,
			valid_locations = excluded.valid_locations,
			late_minutes = excluded.late_minutes,
			updated_at = excluded.updated_at`
	_, err := r.db.Exec(query,
		rec.EmployeeID, rec.Date,
		rec.WorkStartTime.Unix(), rec.WorkEndTime.Unix(),
		rec.TotalWorkHours, rec.PresentHours, rec.AbsentHours,
		rec.TotalLocations, rec.ValidLocations, rec.LateMinutes,
		now.Unix(), now.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily record: %w", err)
	}
	return nil
}

const recordColumns = `id, employee_id, date, work_start_time, work_end_time,
	total_work_hours, present_hours, absent_hours,
	total_locations, valid_locations, late_minutes, created_at, updated_at`

// Get retrieves the record for one employee-day, returning nil when the day
// has no record
func (r *RecordRepository) Get(employeeID, date string) (*models.DailyRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM daily_records
		WHERE employee_id = ? AND date = ?`
	rec, err := scanRecord(r.db.QueryRow(query, employeeID, date))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

// ListRange retrieves records for a date span, both bounds inclusive,
// ordered by date. Date strings are YYYY-MM-DD so lexicographic order is
// chronological order.
func (r *RecordRepository) ListRange(employeeID, startDate, endDate string) ([]models.DailyRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM daily_records
		WHERE employee_id = ? AND date >= ? AND date <= ?
		ORDER BY date`
	rows, err := r.db.Query(query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily records: %w", err)
	}
	defer rows.Close()

	var records []models.DailyRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

func scanRecord(row rowScanner) (*models.DailyRecord, error) {
	var rec models.DailyRecord
	var startTime, endTime, createdAt, updatedAt int64
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &startTime, &endTime,
		&rec.TotalWorkHours, &rec.PresentHours, &rec.AbsentHours,
		&rec.TotalLocations, &rec.ValidLocations, &rec.LateMinutes,
		&createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily record: %w", err)
	}
	rec.WorkStartTime = time.Unix(startTime, 0)
	rec.WorkEndTime = time.Unix(endTime, 0)
	rec.CreatedAt = time.Unix(createdAt, 0)
	rec.UpdatedAt = time.Unix(updatedAt, 0)
	return &rec, nil
}
