package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davomat/attendance-backend-go/internal/middleware"
	"github.com/davomat/attendance-backend-go/internal/models"
	"github.com/davomat/attendance-backend-go/internal/service"
	"github.com/davomat/attendance-backend-go/pkg/response"
)

// LocationHandler handles HTTP requests for location reporting
type LocationHandler struct {
	locations *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locations *service.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// Submit handles POST /api/v1/locations/send
func (h *LocationHandler) Submit(c *gin.Context) {
	var req models.SubmitLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "latitude and longitude are required")
		return
	}

	var at time.Time
	if req.Timestamp > 0 {
		at = time.Unix(req.Timestamp, 0)
	}

	sample, err := h.locations.Submit(middleware.CurrentEmployee(c), *req.Latitude, *req.Longitude, at)
	if err != nil {
		if errors.Is(err, service.ErrOutsideWorkHours) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, sample)
}

// Today handles GET /api/v1/locations/today
func (h *LocationHandler) Today(c *gin.Context) {
	samples, err := h.locations.Today(middleware.CurrentEmployee(c).ID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, samples)
}

// Status handles GET /api/v1/locations/status
func (h *LocationHandler) Status(c *gin.Context) {
	status, err := h.locations.Status(middleware.CurrentEmployee(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, status)
}

// History handles GET /api/v1/locations/history/:date
func (h *LocationHandler) History(c *gin.Context) {
	samples, err := h.locations.History(middleware.CurrentEmployee(c).ID, c.Param("date"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, samples)
}
