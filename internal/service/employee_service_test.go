package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateCreatesPendingAccount(t *testing.T) {
	f := newFixture(t)

	e, err := f.employees.Authenticate(7001, "newuser", "New User")
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.IsApproved)
	assert.False(t, e.IsAdmin)
	assert.True(t, e.IsActive)
	assert.Equal(t, 9, e.WorkStartHour)
	assert.Equal(t, 18, e.WorkEndHour)

	// Second sign-in returns the same account
	again, err := f.employees.Authenticate(7001, "newuser", "New User")
	require.NoError(t, err)
	assert.Equal(t, e.ID, again.ID)
}

func TestAuthenticateAdminAutoApproved(t *testing.T) {
	f := newFixture(t)
	f.employees = NewEmployeeService(f.employees.repo, []int64{7002})

	e, err := f.employees.Authenticate(7002, "boss", "The Boss")
	require.NoError(t, err)
	assert.True(t, e.IsAdmin)
	assert.True(t, e.IsApproved)
}

func TestAuthenticateUpdatesProfile(t *testing.T) {
	f := newFixture(t)

	e, err := f.employees.Authenticate(7003, "old", "Old Name")
	require.NoError(t, err)

	updated, err := f.employees.Authenticate(7003, "new", "New Name")
	require.NoError(t, err)
	assert.Equal(t, e.ID, updated.ID)
	assert.Equal(t, "new", updated.Username)
	assert.Equal(t, "New Name", updated.FullName)
}

func TestApprove(t *testing.T) {
	f := newFixture(t)

	e, err := f.employees.Authenticate(7004, "u", "U")
	require.NoError(t, err)

	approved, err := f.employees.Approve(e.ID, 8, 17)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
	assert.Equal(t, 8, approved.WorkStartHour)
	assert.Equal(t, 17, approved.WorkEndHour)

	_, err = f.employees.Approve(e.ID, 8, 17)
	assert.ErrorIs(t, err, ErrAlreadyApproved)

	_, err = f.employees.Approve("missing", 8, 17)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	_, err = f.employees.Approve(e.ID, 17, 8)
	assert.ErrorIs(t, err, ErrInvalidWorkWindow)
}

func TestRevokeAndReject(t *testing.T) {
	f := newFixture(t)

	e, err := f.employees.Authenticate(7005, "u", "U")
	require.NoError(t, err)
	_, err = f.employees.Approve(e.ID, 9, 18)
	require.NoError(t, err)

	require.NoError(t, f.employees.Revoke(e.ID))
	got, err := f.employees.GetByID(e.ID)
	require.NoError(t, err)
	assert.False(t, got.IsApproved)

	require.NoError(t, f.employees.Reject(e.ID))
	_, err = f.employees.GetByID(e.ID)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestUpdateWorkHoursValidation(t *testing.T) {
	f := newFixture(t)

	e, err := f.employees.Authenticate(7006, "u", "U")
	require.NoError(t, err)

	_, err = f.employees.UpdateWorkHours(e.ID, 10, 10)
	assert.ErrorIs(t, err, ErrInvalidWorkWindow)

	_, err = f.employees.UpdateWorkHours(e.ID, -1, 10)
	assert.ErrorIs(t, err, ErrInvalidWorkWindow)

	updated, err := f.employees.UpdateWorkHours(e.ID, 7, 16)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.WorkStartHour)
	assert.Equal(t, 16, updated.WorkEndHour)
}
