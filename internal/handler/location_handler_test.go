package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/davomat/attendance-backend-go/internal/database"
	"github.com/davomat/attendance-backend-go/internal/models"
	"github.com/davomat/attendance-backend-go/internal/repository"
	"github.com/davomat/attendance-backend-go/internal/service"
	"github.com/davomat/attendance-backend-go/internal/settings"
)

// newSubmitRouter wires the real ingestion stack behind a stub auth
// middleware that injects the given employee into the request context.
func newSubmitRouter(t *testing.T) (*gin.Engine, *models.Employee) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))

	provider, err := settings.NewProvider(repository.NewSettingsRepository(db))
	require.NoError(t, err)

	employees := service.NewEmployeeService(repository.NewEmployeeRepository(db), nil)
	locations := service.NewLocationService(
		repository.NewLocationRepository(db),
		repository.NewRecordRepository(db),
		provider,
	)

	e, err := employees.Authenticate(6001, "tester", "Test Employee")
	require.NoError(t, err)
	e, err = employees.Approve(e.ID, 0, 23)
	require.NoError(t, err)

	r := gin.New()
	r.POST("/send", func(c *gin.Context) {
		c.Set("employee", e)
		c.Next()
	}, NewLocationHandler(locations).Submit)
	return r, e
}

func submitBody(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitAcceptsZeroCoordinates(t *testing.T) {
	r, _ := newSubmitRouter(t)

	at := time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local).Unix()
	w := submitBody(t, r, `{"latitude": 0, "longitude": 12.5, "timestamp": `+
		strconv.FormatInt(at, 10)+`}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"latitude":0`)
}

func TestSubmitRejectsMissingCoordinate(t *testing.T) {
	r, _ := newSubmitRouter(t)

	w := submitBody(t, r, `{"latitude": 41.2995}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
