package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/davomat/attendance-backend-go/internal/models"
	"github.com/davomat/attendance-backend-go/internal/repository"
)

// Account state errors mapped to 4xx responses by the handlers
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrAlreadyApproved   = errors.New("employee is already approved")
	ErrAdminImmutable    = errors.New("admin accounts cannot be modified this way")
	ErrInvalidWorkWindow = errors.New("work start hour must be before work end hour")
)

// Default work window for newly approved accounts
const (
	defaultWorkStartHour = 9
	defaultWorkEndHour   = 18
)

// EmployeeService handles account lifecycle: sign-in upsert, approval,
// revocation and work-hour administration
type EmployeeService struct {
	repo     *repository.EmployeeRepository
	adminIDs map[int64]bool
}

// NewEmployeeService creates a new employee service. adminIDs are the
// Telegram IDs that sign in as auto-approved admins.
func NewEmployeeService(repo *repository.EmployeeRepository, adminIDs []int64) *EmployeeService {
	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}
	return &EmployeeService{repo: repo, adminIDs: admins}
}

// Authenticate upserts the account for a Telegram sign-in. Unknown IDs get
// a fresh pending account (admins are auto-approved); known accounts pick
// up changed profile fields.
func (s *EmployeeService) Authenticate(telegramID int64, username, fullName string) (*models.Employee, error) {
	e, err := s.repo.GetByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}

	if e == nil {
		isAdmin := s.adminIDs[telegramID]
		e = &models.Employee{
			ID:            uuid.NewString(),
			TelegramID:    telegramID,
			Username:      username,
			FullName:      fullName,
			IsAdmin:       isAdmin,
			IsApproved:    isAdmin,
			IsActive:      true,
			WorkStartHour: defaultWorkStartHour,
			WorkEndHour:   defaultWorkEndHour,
		}
		if err := s.repo.Create(e); err != nil {
			return nil, err
		}
		return e, nil
	}

	changed := false
	if username != "" && e.Username != username {
		e.Username = username
		changed = true
	}
	if fullName != "" && e.FullName != fullName {
		e.FullName = fullName
		changed = true
	}
	if changed {
		if err := s.repo.Update(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// GetByID retrieves an employee, failing when the ID is unknown
func (s *EmployeeService) GetByID(id string) (*models.Employee, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEmployeeNotFound
	}
	return e, nil
}

// GetByTelegramID retrieves an employee by Telegram ID, returning nil when
// there is no such account
func (s *EmployeeService) GetByTelegramID(telegramID int64) (*models.Employee, error) {
	return s.repo.GetByTelegramID(telegramID)
}

// Pending lists active accounts awaiting approval
func (s *EmployeeService) Pending() ([]models.Employee, error) {
	return s.repo.List(repository.FilterPending)
}

// Approved lists active approved non-admin accounts
func (s *EmployeeService) Approved() ([]models.Employee, error) {
	return s.repo.List(repository.FilterApproved)
}

// All lists every non-admin account
func (s *EmployeeService) All() ([]models.Employee, error) {
	return s.repo.List(repository.FilterAll)
}

// Approve marks a pending account approved and sets its work window
func (s *EmployeeService) Approve(id string, startHour, endHour int) (*models.Employee, error) {
	if err := validateWorkWindow(startHour, endHour); err != nil {
		return nil, err
	}

	e, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e.IsApproved {
		return nil, ErrAlreadyApproved
	}

	e.IsApproved = true
	e.WorkStartHour = startHour
	e.WorkEndHour = endHour
	if err := s.repo.Update(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Reject deletes a pending account
func (s *EmployeeService) Reject(id string) error {
	e, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if e.IsAdmin {
		return ErrAdminImmutable
	}
	return s.repo.Delete(id)
}

// Revoke withdraws approval from an account without deleting it
func (s *EmployeeService) Revoke(id string) error {
	e, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if e.IsAdmin {
		return ErrAdminImmutable
	}

	e.IsApproved = false
	return s.repo.Update(e)
}

// UpdateWorkHours changes an employee's nominal work window
func (s *EmployeeService) UpdateWorkHours(id string, startHour, endHour int) (*models.Employee, error) {
	if err := validateWorkWindow(startHour, endHour); err != nil {
		return nil, err
	}

	e, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	e.WorkStartHour = startHour
	e.WorkEndHour = endHour
	if err := s.repo.Update(e); err != nil {
		return nil, err
	}
	return e, nil
}

// validateWorkWindow checks whole-hour bounds within a single day
func validateWorkWindow(startHour, endHour int) error {
	if startHour < 0 || endHour > 23 {
		return fmt.Errorf("%w: hours must be within 0..23", ErrInvalidWorkWindow)
	}
	if startHour >= endHour {
		return ErrInvalidWorkWindow
	}
	return nil
}
