// Package hours answers when the lab is open. The schedule is static
// configuration; holidays and breaks are entered as overrides.
package hours

import (
	"time"
)

// DayHours is the lab's opening window for one day. A nil window means the
// lab is closed all day.
type DayHours struct {
	Open  string
	Close string
}

// Schedule is the weekly opening schedule plus date-specific overrides.
type Schedule struct {
	weekly    map[time.Weekday]DayHours
	overrides map[string]*DayHours
}

// DefaultSchedule returns the lab's regular hours.
func DefaultSchedule() *Schedule {
	weekday := DayHours{Open: "09:00", Close: "21:00"}
	weekend := DayHours{Open: "11:00", Close: "19:00"}

	return &Schedule{
		weekly: map[time.Weekday]DayHours{
			time.Monday:    weekday,
			time.Tuesday:   weekday,
			time.Wednesday: weekday,
			time.Thursday:  weekday,
			time.Friday:    weekday,
			time.Saturday:  weekend,
			time.Sunday:    weekend,
		},
		overrides: map[string]*DayHours{},
	}
}

// Override sets date-specific hours; a nil window closes the lab that day.
func (s *Schedule) Override(date string, hours *DayHours) {
	s.overrides[date] = hours
}

// On returns the opening window for date, or nil when the lab is closed.
func (s *Schedule) On(date time.Time) *DayHours {
	key := date.Format(time.DateOnly)
	if override, ok := s.overrides[key]; ok {
		return override
	}

	if window, ok := s.weekly[date.Weekday()]; ok {
		return &window
	}

	return nil
}
