package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/davomat/attendance-backend-go/internal/models"
)

// EmployeeRepository handles database operations for employee accounts
type EmployeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

const employeeColumns = `id, telegram_id, username, full_name,
	is_approved, is_active, is_admin, work_start_hour, work_end_hour,
	created_at, updated_at`

// Create inserts a new employee
func (r *EmployeeRepository) Create(e *models.Employee) error {
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	query := `INSERT INTO employees (` + employeeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query,
		e.ID, e.TelegramID, e.Username, e.FullName,
		e.IsApproved, e.IsActive, e.IsAdmin, e.WorkStartHour, e.WorkEndHour,
		now.Unix(), now.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

// GetByID retrieves an employee by ID, returning nil when not found
func (r *EmployeeRepository) GetByID(id string) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`
	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByTelegramID retrieves an employee by Telegram ID, returning nil when
// not found
func (r *EmployeeRepository) GetByTelegramID(telegramID int64) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE telegram_id = ?`
	return r.scanOne(r.db.QueryRow(query, telegramID))
}

// EmployeeFilter selects which accounts List returns
type EmployeeFilter int

const (
	// FilterAll returns every non-admin account
	FilterAll EmployeeFilter = iota
	// FilterPending returns active accounts awaiting approval
	FilterPending
	// FilterApproved returns active approved non-admin accounts
	FilterApproved
)

// List retrieves employees matching the filter, newest first
func (r *EmployeeRepository) List(filter EmployeeFilter) ([]models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	switch filter {
	case FilterPending:
		query += ` WHERE is_approved = 0 AND is_active = 1`
	case FilterApproved:
		query += ` WHERE is_approved = 1 AND is_active = 1 AND is_admin = 0`
	default:
		query += ` WHERE is_admin = 0`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}

	return employees, rows.Err()
}

// Update persists mutable employee fields
func (r *EmployeeRepository) Update(e *models.Employee) error {
	e.UpdatedAt = time.Now()

	query := `UPDATE employees SET
		username = ?, full_name = ?,
		is_approved = ?, is_active = ?,
		work_start_hour = ?, work_end_hour = ?,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.Exec(query,
		e.Username, e.FullName,
		e.IsApproved, e.IsActive,
		e.WorkStartHour, e.WorkEndHour,
		e.UpdatedAt.Unix(), e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("employee %s not found", e.ID)
	}
	return nil
}

// Delete removes an employee account
func (r *EmployeeRepository) Delete(id string) error {
	res, err := r.db.Exec("DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("employee %s not found", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *EmployeeRepository) scanOne(row *sql.Row) (*models.Employee, error) {
	e, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

func scanEmployee(row rowScanner) (*models.Employee, error) {
	var e models.Employee
	var createdAt, updatedAt int64
	err := row.Scan(
		&e.ID, &e.TelegramID, &e.Username, &e.FullName,
		&e.IsApproved, &e.IsActive, &e.IsAdmin, &e.WorkStartHour, &e.WorkEndHour,
		&createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan employee: %w", err)
	}
	e.CreatedAt = time.Unix(createdAt, 0)
	e.UpdatedAt = time.Unix(updatedAt, 0)
	return &e, nil
}
