package hours_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ocf/api/internal/usecase/hours"
)

func TestScheduleWeekly(t *testing.T) {
	t.Parallel()

	s := hours.DefaultSchedule()

	// 2026-09-02 is a Wednesday, 2026-09-05 a Saturday.
	wednesday := s.On(time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, wednesday)
	require.Equal(t, "09:00", wednesday.Open)
	require.Equal(t, "21:00", wednesday.Close)

	saturday := s.On(time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, saturday)
	require.Equal(t, "11:00", saturday.Open)
	require.Equal(t, "19:00", saturday.Close)
}

func TestScheduleOverrides(t *testing.T) {
	t.Parallel()

	s := hours.DefaultSchedule()
	s.Override("2026-11-26", nil)
	s.Override("2026-12-01", &hours.DayHours{Open: "12:00", Close: "17:00"})

	require.Nil(t, s.On(time.Date(2026, time.November, 26, 0, 0, 0, 0, time.UTC)))

	shortened := s.On(time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, shortened)
	require.Equal(t, "12:00", shortened.Open)
	require.Equal(t, "17:00", shortened.Close)
}
