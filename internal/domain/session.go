package domain

import "sync/atomic"

// CancelSignal is the cancellation flag shared between a streaming
// operation and whoever may cancel it. The zero value is not cancelled.
type CancelSignal struct {
	cancelled atomic.Bool
}

// Reset clears the flag before a new streaming operation
func (s *CancelSignal) Reset() {
	s.cancelled.Store(false)
}

// Cancel sets the flag
func (s *CancelSignal) Cancel() {
	s.cancelled.Store(true)
}

// Cancelled reports whether Cancel was called since the last Reset
func (s *CancelSignal) Cancelled() bool {
	if s == nil {
		return false
	}
	return s.cancelled.Load()
}
