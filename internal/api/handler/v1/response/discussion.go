package response

import (
	"time"

	"github.com/fishmasters/fishmasters-api/internal/domain"
)

type MessageResponse struct {
	ID          uint      `json:"id"`
	Content     string    `json:"content"`
	FisherEmail string    `json:"fisher_email"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewMessageResponse(m domain.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		Content:     m.Content,
		FisherEmail: m.FisherEmail,
		CreatedAt:   m.CreatedAt,
	}
}

func NewMessageResponses(messages []domain.Message) []MessageResponse {
	result := make([]MessageResponse, len(messages))
	for i, m := range messages {
		result[i] = NewMessageResponse(m)
	}

	return result
}
