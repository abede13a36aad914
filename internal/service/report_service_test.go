package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davomat/attendance-backend-go/internal/models"
)

func TestTodaySummaryRollsUpApprovedEmployees(t *testing.T) {
	f := newFixture(t)

	active := f.approvedEmployee(t, 8, 18)
	idle, err := f.employees.Authenticate(5002, "idle", "Idle Employee")
	require.NoError(t, err)
	idle, err = f.employees.Approve(idle.ID, 9, 18)
	require.NoError(t, err)

	for _, at := range []time.Time{localTime(8, 55), localTime(10, 0)} {
		_, err := f.locations.Submit(active, 41.2995, 69.2401, at)
		require.NoError(t, err)
	}

	summary, err := f.reports.TodaySummary("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", summary.Date)
	assert.Equal(t, 2, summary.TotalEmployees)
	assert.Equal(t, 1, summary.EmployeesWithData)
	require.Len(t, summary.Employees, 2)

	byID := make(map[string]models.EmployeeDaySummary, 2)
	for _, entry := range summary.Employees {
		byID[entry.EmployeeID] = entry
	}

	got := byID[active.ID]
	assert.True(t, got.HasData)
	assert.Equal(t, 2, got.TotalLocations)
	assert.Equal(t, 2, got.ValidLocations)
	assert.Equal(t, "8:00 - 18:00", got.WorkHours)

	got = byID[idle.ID]
	assert.False(t, got.HasData)
	assert.Zero(t, got.TotalLocations)
	assert.Zero(t, got.PresentHours)
	assert.Equal(t, "Idle Employee", got.FullName)
}

func TestTodaySummarySkipsPendingEmployees(t *testing.T) {
	f := newFixture(t)

	f.approvedEmployee(t, 8, 18)
	_, err := f.employees.Authenticate(5003, "pending", "Pending Employee")
	require.NoError(t, err)

	summary, err := f.reports.TodaySummary("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalEmployees)
	assert.Zero(t, summary.EmployeesWithData)
}

func TestTodaySummaryRejectsBadDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.reports.TodaySummary("10-03-2025")
	assert.Error(t, err)
}
