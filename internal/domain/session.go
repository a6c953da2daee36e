package domain

import "time"

// Session is a time-bounded fishing outing at one water location.
// EndTime == nil means the session is still open. The transition to
// closed is one-way; a closed session is never reopened.
type Session struct {
	ID          uint       `json:"id"`
	FisherEmail string     `json:"fisher_email"`
	WaterID     int64      `json:"water_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

// IsOpen reports whether catches may still be added.
func (s *Session) IsOpen() bool {
	return s.EndTime == nil
}
