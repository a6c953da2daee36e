package domain

import "time"

// Discussion is the message board of one water location, created lazily
// on first reference.
type Discussion struct {
	ID      uint  `json:"id"`
	WaterID int64 `json:"water_id"`
}

type Message struct {
	ID           uint      `json:"id"`
	DiscussionID uint      `json:"discussion_id"`
	Content      string    `json:"content"`
	FisherEmail  string    `json:"fisher_email"`
	CreatedAt    time.Time `json:"created_at"`
}
