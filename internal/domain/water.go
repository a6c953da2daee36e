package domain

import "time"

// Water is a fishing location. Its id is derived from the coordinates
// (see DeriveWaterID), so creating the same point twice yields the same row.
type Water struct {
	ID        int64     `json:"id"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	CreatedAt time.Time `json:"created_at"`
}

// DeriveWaterID maps coordinates to a stable water identity.
// Deterministic derivation is what makes create-on-first-reference
// idempotent: the same (x, y) always addresses the same water.
func DeriveWaterID(x, y float64) int64 {
	return int64(x*1000) + int64(y)
}
