package models

import "time"

// DailyRecord is one employee's attendance summary for one calendar date.
// It is recomputed in full from that day's samples every time a new sample
// arrives, so re-running the aggregation is always safe.
type DailyRecord struct {
	ID         int64  `json:"id" db:"id"`
	EmployeeID string `json:"employee_id" db:"employee_id"`
	Date       string `json:"date" db:"date"` // YYYY-MM-DD

	WorkStartTime time.Time `json:"work_start_time" db:"work_start_time"`
	WorkEndTime   time.Time `json:"work_end_time" db:"work_end_time"`

	TotalWorkHours float64 `json:"total_work_hours" db:"total_work_hours"`
	PresentHours   float64 `json:"present_hours" db:"present_hours"`
	AbsentHours    float64 `json:"absent_hours" db:"absent_hours"`

	TotalLocations int `json:"total_locations" db:"total_locations"`
	ValidLocations int `json:"valid_locations" db:"valid_locations"`
	LateMinutes    int `json:"late_minutes" db:"late_minutes"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RangeSummary is the reduction of a span of daily records. Days without a
// record (no samples) are simply absent from the span and do not count.
type RangeSummary struct {
	TotalDays         int     `json:"total_days"`
	TotalWorkHours    float64 `json:"total_work_hours"`
	TotalPresentHours float64 `json:"total_present_hours"`
	TotalAbsentHours  float64 `json:"total_absent_hours"`
	EfficiencyPercent float64 `json:"efficiency_percent"`
}

// RangeReport is the API payload for range and monthly reports
type RangeReport struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	RangeSummary
	DailyDetails []DailyRecord `json:"daily_details"`
}

// EmployeeDaySummary is one row of the admin today overview. Employees
// without a record for the day appear zero-filled with HasData false.
type EmployeeDaySummary struct {
	EmployeeID     string  `json:"employee_id"`
	FullName       string  `json:"full_name"`
	Username       string  `json:"username,omitempty"`
	WorkHours      string  `json:"work_hours"`
	TotalLocations int     `json:"locations_count"`
	ValidLocations int     `json:"valid_locations"`
	PresentHours   float64 `json:"present_hours"`
	LateMinutes    int     `json:"late_minutes"`
	HasData        bool    `json:"has_data"`
}

// TodaySummary is the admin rollup of every approved employee for one date
type TodaySummary struct {
	Date              string               `json:"date"`
	TotalEmployees    int                  `json:"total_employees"`
	EmployeesWithData int                  `json:"employees_with_data"`
	Employees         []EmployeeDaySummary `json:"employees"`
}
