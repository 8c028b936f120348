package auth

import "time"

// SetNow overrides the bridge clock in tests.
func (b *Bridge) SetNow(now func() time.Time) {
	b.now = now
}
