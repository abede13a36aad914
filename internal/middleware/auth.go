package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/davomat/attendance-backend-go/internal/auth"
	"github.com/davomat/attendance-backend-go/internal/models"
	"github.com/davomat/attendance-backend-go/internal/service"
	"github.com/davomat/attendance-backend-go/pkg/response"
)

// Context key for the authenticated employee
const employeeKey = "employee"

// AuthRequired verifies the Bearer token and loads the employee it belongs
// to into the request context
func AuthRequired(secret string, employees *service.EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "missing token")
			c.Abort()
			return
		}

		telegramID, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		employee, err := employees.GetByTelegramID(telegramID)
		if err != nil {
			response.InternalError(c, "failed to load account")
			c.Abort()
			return
		}
		if employee == nil {
			response.Unauthorized(c, "account not found")
			c.Abort()
			return
		}

		c.Set(employeeKey, employee)
		c.Next()
	}
}

// ApprovedRequired allows only approved active accounts through
func ApprovedRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		e := CurrentEmployee(c)
		if e == nil || !e.IsApproved {
			response.Forbidden(c, "account is awaiting approval")
			c.Abort()
			return
		}
		if !e.IsActive {
			response.Forbidden(c, "account is inactive")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired allows only admin accounts through. Must run after
// AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		e := CurrentEmployee(c)
		if e == nil || !e.IsAdmin {
			response.Forbidden(c, "admin only")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentEmployee returns the employee loaded by AuthRequired, or nil
func CurrentEmployee(c *gin.Context) *models.Employee {
	v, ok := c.Get(employeeKey)
	if !ok {
		return nil
	}
	e, _ := v.(*models.Employee)
	return e
}
