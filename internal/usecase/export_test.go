package usecase

import "time"

// SetClockForTest pins the service's notion of now so tests outside this
// package can sync against a frozen clock.
func (s *SyncService) SetClockForTest(now func() time.Time) {
	s.now = now
}
