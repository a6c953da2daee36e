package domain

import "time"

// Fisher is an account record. Email is the identity and never changes
// after registration. Score counts photographically verified catches.
type Fisher struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Password  string    `json:"-"`
	Score     int       `json:"score"`
	Photo     []byte    `json:"photo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
