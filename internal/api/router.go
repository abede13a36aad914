package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davomat/attendance-backend-go/internal/config"
	"github.com/davomat/attendance-backend-go/internal/handler"
	"github.com/davomat/attendance-backend-go/internal/middleware"
	"github.com/davomat/attendance-backend-go/internal/service"
	"github.com/davomat/attendance-backend-go/internal/settings"
)

// Handlers bundles everything the router needs
type Handlers struct {
	Auth      *handler.AuthHandler
	Employees *handler.EmployeeHandler
	Locations *handler.LocationHandler
	Reports   *handler.ReportHandler
	Settings  *handler.SettingsHandler
}

// NewHandlers wires handlers from the service layer
func NewHandlers(cfg *config.Config, employees *service.EmployeeService, locations *service.LocationService, reports *service.ReportService, provider *settings.Provider) *Handlers {
	return &Handlers{
		Auth:      handler.NewAuthHandler(employees, cfg.JWTSecret),
		Employees: handler.NewEmployeeHandler(employees),
		Locations: handler.NewLocationHandler(locations),
		Reports:   handler.NewReportHandler(reports, employees),
		Settings:  handler.NewSettingsHandler(provider),
	}
}

// SetupRouter builds the gin engine with all routes and middleware
func SetupRouter(cfg *config.Config, employees *service.EmployeeService, h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS for the admin frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Attendance Backend API is running",
		})
	})

	api := r.Group("/api/v1")

	authRequired := middleware.AuthRequired(cfg.JWTSecret, employees)
	approvedOnly := middleware.ApprovedRequired()
	adminOnly := middleware.AdminRequired()

	auth := api.Group("/auth")
	{
		auth.POST("/telegram", h.Auth.TelegramAuth)
		auth.GET("/me", authRequired, h.Auth.Me)
		auth.GET("/status", authRequired, h.Auth.Status)
	}

	locations := api.Group("/locations", authRequired, approvedOnly)
	{
		locations.POST("/send", middleware.RateLimit(30, time.Minute), h.Locations.Submit)
		locations.GET("/today", h.Locations.Today)
		locations.GET("/status", h.Locations.Status)
		locations.GET("/history/:date", h.Locations.History)
	}

	reports := api.Group("/reports", authRequired, approvedOnly)
	{
		reports.GET("/daily", h.Reports.Daily)
		reports.GET("/range", h.Reports.Range)
		reports.GET("/monthly", h.Reports.Monthly)

		admin := reports.Group("/admin", adminOnly)
		{
			admin.GET("/today-summary", h.Reports.AdminTodaySummary)
			admin.GET("/employee/:id/daily", h.Reports.AdminDaily)
			admin.GET("/employee/:id/range", h.Reports.AdminRange)
			admin.GET("/employee/:id/monthly", h.Reports.AdminMonthly)
		}
	}

	employeesGroup := api.Group("/employees", authRequired, adminOnly)
	{
		employeesGroup.GET("", h.Employees.All)
		employeesGroup.GET("/pending", h.Employees.Pending)
		employeesGroup.GET("/approved", h.Employees.Approved)
		employeesGroup.GET("/:id", h.Employees.Get)
		employeesGroup.POST("/:id/approve", h.Employees.Approve)
		employeesGroup.POST("/:id/reject", h.Employees.Reject)
		employeesGroup.POST("/:id/revoke", h.Employees.Revoke)
		employeesGroup.PUT("/:id/work-hours", h.Employees.UpdateWorkHours)
	}

	settingsGroup := api.Group("/settings", authRequired)
	{
		settingsGroup.GET("/office", approvedOnly, h.Settings.Get)
		settingsGroup.PUT("/office/location", adminOnly, h.Settings.UpdateCircle)
		settingsGroup.PUT("/office/area", adminOnly, h.Settings.UpdateArea)
		settingsGroup.PUT("/interval", adminOnly, h.Settings.UpdateInterval)
	}

	return r
}
