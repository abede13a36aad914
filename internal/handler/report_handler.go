package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davomat/attendance-backend-go/internal/middleware"
	"github.com/davomat/attendance-backend-go/internal/service"
	"github.com/davomat/attendance-backend-go/pkg/response"
)

// ReportHandler handles HTTP requests for daily, range and monthly reports.
// The admin variants reuse the same logic against an explicit employee ID.
type ReportHandler struct {
	reports   *service.ReportService
	employees *service.EmployeeService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *service.ReportService, employees *service.EmployeeService) *ReportHandler {
	return &ReportHandler{reports: reports, employees: employees}
}

// Daily handles GET /api/v1/reports/daily?date=YYYY-MM-DD
func (h *ReportHandler) Daily(c *gin.Context) {
	h.daily(c, middleware.CurrentEmployee(c).ID)
}

// Range handles GET /api/v1/reports/range?start_date=&end_date=
func (h *ReportHandler) Range(c *gin.Context) {
	h.ranged(c, middleware.CurrentEmployee(c).ID)
}

// Monthly handles GET /api/v1/reports/monthly?year=&month=
func (h *ReportHandler) Monthly(c *gin.Context) {
	h.monthly(c, middleware.CurrentEmployee(c).ID)
}

// AdminDaily handles GET /api/v1/reports/admin/employee/:id/daily
func (h *ReportHandler) AdminDaily(c *gin.Context) {
	id, ok := h.resolveEmployee(c)
	if !ok {
		return
	}
	h.daily(c, id)
}

// AdminRange handles GET /api/v1/reports/admin/employee/:id/range
func (h *ReportHandler) AdminRange(c *gin.Context) {
	id, ok := h.resolveEmployee(c)
	if !ok {
		return
	}
	h.ranged(c, id)
}

// AdminTodaySummary handles GET /api/v1/reports/admin/today-summary
func (h *ReportHandler) AdminTodaySummary(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format(service.DateFormat))

	summary, err := h.reports.TodaySummary(date)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, summary)
}

// AdminMonthly handles GET /api/v1/reports/admin/employee/:id/monthly
func (h *ReportHandler) AdminMonthly(c *gin.Context) {
	id, ok := h.resolveEmployee(c)
	if !ok {
		return
	}
	h.monthly(c, id)
}

func (h *ReportHandler) daily(c *gin.Context, employeeID string) {
	date := c.DefaultQuery("date", time.Now().Format(service.DateFormat))

	record, err := h.reports.Daily(employeeID, date)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if record == nil {
		response.NotFound(c, "no record for "+date)
		return
	}
	response.Success(c, record)
}

func (h *ReportHandler) ranged(c *gin.Context, employeeID string) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		response.BadRequest(c, "start_date and end_date are required")
		return
	}

	report, err := h.reports.Range(employeeID, startDate, endDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, report)
}

func (h *ReportHandler) monthly(c *gin.Context, employeeID string) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.BadRequest(c, "invalid year parameter")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		response.BadRequest(c, "invalid month parameter")
		return
	}

	report, err := h.reports.Monthly(employeeID, year, month)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, report)
}

func (h *ReportHandler) resolveEmployee(c *gin.Context) (string, bool) {
	employee, err := h.employees.GetByID(c.Param("id"))
	if err != nil {
		response.NotFound(c, err.Error())
		return "", false
	}
	return employee.ID, true
}
