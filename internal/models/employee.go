package models

import "time"

// Employee represents a tracked employee account. Accounts are created in
// pending state on first Telegram sign-in and must be approved by an admin
// before they can report locations.
type Employee struct {
	ID         string `json:"id" db:"id"`
	TelegramID int64  `json:"telegram_id" db:"telegram_id"`
	Username   string `json:"username,omitempty" db:"username"`
	FullName   string `json:"full_name,omitempty" db:"full_name"`

	IsApproved bool `json:"is_approved" db:"is_approved"`
	IsActive   bool `json:"is_active" db:"is_active"`
	IsAdmin    bool `json:"is_admin" db:"is_admin"`

	WorkStartHour int `json:"work_start_hour" db:"work_start_hour"`
	WorkEndHour   int `json:"work_end_hour" db:"work_end_hour"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// WorkHours returns the employee's work-hour policy
func (e *Employee) WorkHours() WorkHoursPolicy {
	return WorkHoursPolicy{StartHour: e.WorkStartHour, EndHour: e.WorkEndHour}
}
