package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/davomat/attendance-backend-go/internal/service"
	"github.com/davomat/attendance-backend-go/pkg/response"
)

// EmployeeHandler handles admin HTTP requests for account management
type EmployeeHandler struct {
	employees *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// Pending handles GET /api/v1/employees/pending
func (h *EmployeeHandler) Pending(c *gin.Context) {
	employees, err := h.employees.Pending()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, employees)
}

// Approved handles GET /api/v1/employees/approved
func (h *EmployeeHandler) Approved(c *gin.Context) {
	employees, err := h.employees.Approved()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, employees)
}

// All handles GET /api/v1/employees
func (h *EmployeeHandler) All(c *gin.Context) {
	employees, err := h.employees.All()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, employees)
}

// Get handles GET /api/v1/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.employees.GetByID(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, employee)
}

type workHoursRequest struct {
	WorkStartHour int `json:"work_start_hour"`
	WorkEndHour   int `json:"work_end_hour"`
}

// Approve handles POST /api/v1/employees/:id/approve
func (h *EmployeeHandler) Approve(c *gin.Context) {
	req := workHoursRequest{WorkStartHour: 9, WorkEndHour: 18}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	employee, err := h.employees.Approve(c.Param("id"), req.WorkStartHour, req.WorkEndHour)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, employee)
}

// Reject handles POST /api/v1/employees/:id/reject
func (h *EmployeeHandler) Reject(c *gin.Context) {
	if err := h.employees.Reject(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// Revoke handles POST /api/v1/employees/:id/revoke
func (h *EmployeeHandler) Revoke(c *gin.Context) {
	if err := h.employees.Revoke(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"revoked": true})
}

// UpdateWorkHours handles PUT /api/v1/employees/:id/work-hours
func (h *EmployeeHandler) UpdateWorkHours(c *gin.Context) {
	var req workHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	employee, err := h.employees.UpdateWorkHours(c.Param("id"), req.WorkStartHour, req.WorkEndHour)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, employee)
}

func (h *EmployeeHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyApproved),
		errors.Is(err, service.ErrAdminImmutable),
		errors.Is(err, service.ErrInvalidWorkWindow):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
