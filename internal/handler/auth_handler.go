package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/davomat/attendance-backend-go/internal/auth"
	"github.com/davomat/attendance-backend-go/internal/middleware"
	"github.com/davomat/attendance-backend-go/internal/service"
	"github.com/davomat/attendance-backend-go/pkg/response"
)

// AuthHandler handles HTTP requests for Telegram sign-in and session info
type AuthHandler struct {
	employees *service.EmployeeService
	jwtSecret string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(employees *service.EmployeeService, jwtSecret string) *AuthHandler {
	return &AuthHandler{employees: employees, jwtSecret: jwtSecret}
}

type telegramAuthRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
}

type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	User        interface{} `json:"user"`
}

// TelegramAuth handles POST /api/v1/auth/telegram. Unknown Telegram IDs get
// a fresh pending account.
func (h *AuthHandler) TelegramAuth(c *gin.Context) {
	var req telegramAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "telegram_id is required")
		return
	}

	employee, err := h.employees.Authenticate(req.TelegramID, req.Username, req.FullName)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	token, err := auth.CreateToken(employee.TelegramID, h.jwtSecret, auth.DefaultTokenTTL)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, tokenResponse{AccessToken: token, User: employee})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, middleware.CurrentEmployee(c))
}

// Status handles GET /api/v1/auth/status
func (h *AuthHandler) Status(c *gin.Context) {
	e := middleware.CurrentEmployee(c)
	response.Success(c, gin.H{
		"is_approved": e.IsApproved,
		"is_admin":    e.IsAdmin,
		"is_active":   e.IsActive,
	})
}
