package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ocf/api/internal/entity/dto/v1"
	"github.com/ocf/api/internal/usecase/hours"
)

type hoursRoutes struct {
	schedule *hours.Schedule
}

// NewHoursRoutes registers lab hours lookups.
func NewHoursRoutes(handler *gin.RouterGroup, schedule *hours.Schedule) {
	r := &hoursRoutes{schedule: schedule}

	handler.GET("/hours/today", r.today)
	handler.GET("/hours/:date", r.onDate)
}

func (r *hoursRoutes) today(c *gin.Context) {
	c.JSON(http.StatusOK, r.output(time.Now()))
}

func (r *hoursRoutes) onDate(c *gin.Context) {
	date, err := time.Parse(time.DateOnly, c.Param("date"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "date must be YYYY-MM-DD"})

		return
	}

	c.JSON(http.StatusOK, r.output(date))
}

func (r *hoursRoutes) output(date time.Time) dto.HoursOutput {
	out := dto.HoursOutput{Date: date.Format(time.DateOnly), Closed: true}

	if window := r.schedule.On(date); window != nil {
		out.Open = &window.Open
		out.Close = &window.Close
		out.Closed = false
	}

	return out
}
