package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ocf/api/internal/usecase/hours"
)

func hoursEngine(schedule *hours.Schedule) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	NewHoursRoutes(engine.Group(""), schedule)

	return engine
}

func TestHoursHandler(t *testing.T) {
	t.Parallel()

	schedule := hours.DefaultSchedule()
	schedule.Override("2026-11-26", nil)
	engine := hoursEngine(schedule)

	t.Run("regular weekday", func(t *testing.T) {
		t.Parallel()

		// 2026-09-02 is a Wednesday
		req := httptest.NewRequest(http.MethodGet, "/hours/2026-09-02", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"date":"2026-09-02","open":"09:00","close":"21:00","closed":false}`, w.Body.String())
	})

	t.Run("closure", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/hours/2026-11-26", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"date":"2026-11-26","open":null,"close":null,"closed":true}`, w.Body.String())
	})

	t.Run("bad date", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/hours/tomorrow", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("today", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/hours/today", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), time.Now().Format(time.DateOnly))
	})
}
