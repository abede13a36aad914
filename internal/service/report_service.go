package service

import (
	"fmt"
	"time"

	"github.com/davomat/attendance-backend-go/internal/attendance"
	"github.com/davomat/attendance-backend-go/internal/models"
	"github.com/davomat/attendance-backend-go/internal/repository"
)

// ReportService reads stored daily records and reduces spans of them into
// range summaries. It never mutates storage.
type ReportService struct {
	records   *repository.RecordRepository
	employees *repository.EmployeeRepository
}

// NewReportService creates a new report service
func NewReportService(records *repository.RecordRepository, employees *repository.EmployeeRepository) *ReportService {
	return &ReportService{records: records, employees: employees}
}

// Daily returns the record for one employee-day, nil when the day has no
// samples
func (s *ReportService) Daily(employeeID, date string) (*models.DailyRecord, error) {
	if _, err := time.ParseInLocation(DateFormat, date, time.Local); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return s.records.Get(employeeID, date)
}

// Range summarizes an inclusive date span. Days without a record are
// excluded from the totals; an empty span yields a zero summary.
func (s *ReportService) Range(employeeID, startDate, endDate string) (*models.RangeReport, error) {
	for _, d := range []string{startDate, endDate} {
		if _, err := time.ParseInLocation(DateFormat, d, time.Local); err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", d)
		}
	}

	records, err := s.records.ListRange(employeeID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	report := &models.RangeReport{
		StartDate:    startDate,
		EndDate:      endDate,
		RangeSummary: attendance.Summarize(records),
		DailyDetails: records,
	}
	return report, nil
}

// TodaySummary builds the admin overview for one date: every approved
// employee with their record for that day, zero-filled when no samples
// arrived yet.
func (s *ReportService) TodaySummary(date string) (*models.TodaySummary, error) {
	if _, err := time.ParseInLocation(DateFormat, date, time.Local); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	list, err := s.employees.List(repository.FilterApproved)
	if err != nil {
		return nil, err
	}

	summary := &models.TodaySummary{
		Date:           date,
		TotalEmployees: len(list),
		Employees:      make([]models.EmployeeDaySummary, 0, len(list)),
	}
	for _, e := range list {
		entry := models.EmployeeDaySummary{
			EmployeeID: e.ID,
			FullName:   e.FullName,
			Username:   e.Username,
			WorkHours:  fmt.Sprintf("%d:00 - %d:00", e.WorkStartHour, e.WorkEndHour),
		}

		record, err := s.records.Get(e.ID, date)
		if err != nil {
			return nil, err
		}
		if record != nil {
			entry.TotalLocations = record.TotalLocations
			entry.ValidLocations = record.ValidLocations
			entry.PresentHours = record.PresentHours
			entry.LateMinutes = record.LateMinutes
			entry.HasData = true
			summary.EmployeesWithData++
		}
		summary.Employees = append(summary.Employees, entry)
	}
	return summary, nil
}

// Monthly summarizes one calendar month
func (s *ReportService) Monthly(employeeID string, year, month int) (*models.RangeReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	lastDay := firstDay.AddDate(0, 1, -1)

	return s.Range(employeeID, firstDay.Format(DateFormat), lastDay.Format(DateFormat))
}
