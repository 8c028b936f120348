package accounts

import "time"

// SetNow overrides the usecase clock for tests.
func (uc *UseCase) SetNow(now func() time.Time) {
	uc.now = now
}

// SemesterStart exposes the semester boundary calculation for tests.
func SemesterStart(now time.Time) time.Time {
	return semesterStart(now)
}
