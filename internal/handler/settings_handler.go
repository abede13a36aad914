package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/davomat/attendance-backend-go/internal/models"
	"github.com/davomat/attendance-backend-go/internal/settings"
	"github.com/davomat/attendance-backend-go/pkg/response"
)

// SettingsHandler handles HTTP requests for office zone and interval
// configuration
type SettingsHandler struct {
	provider *settings.Provider
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(provider *settings.Provider) *SettingsHandler {
	return &SettingsHandler{provider: provider}
}

// Get handles GET /api/v1/settings/office. Readable by any approved
// employee so the client can render the zone.
func (h *SettingsHandler) Get(c *gin.Context) {
	response.Success(c, gin.H{
		"zone":     h.provider.CurrentZone(),
		"interval": h.provider.CurrentIntervalPolicy(),
	})
}

// UpdateCircle handles PUT /api/v1/settings/office/location and switches
// the zone to circle mode
func (h *SettingsHandler) UpdateCircle(c *gin.Context) {
	var req models.CircleZone
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.provider.SetCircle(req); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"mode": models.ZoneModeCircle})
}

// UpdateArea handles PUT /api/v1/settings/office/area and switches the
// zone to rectangle mode
func (h *SettingsHandler) UpdateArea(c *gin.Context) {
	var req models.AreaZone
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.provider.SetArea(req); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"mode": models.ZoneModeArea})
}

// UpdateInterval handles PUT /api/v1/settings/interval
func (h *SettingsHandler) UpdateInterval(c *gin.Context) {
	var req models.IntervalPolicy
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.provider.SetInterval(req); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, req)
}

func (h *SettingsHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, settings.ErrIntervalOutOfRange),
		errors.Is(err, settings.ErrNegativeGrace),
		errors.Is(err, settings.ErrNonPositiveRadius):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
