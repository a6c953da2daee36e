package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateMessageRequest struct {
	DiscussionID uint   `json:"discussion_id"`
	Content      string `json:"content"`
	FisherEmail  string `json:"fisher_email"`
}

func (req *CreateMessageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DiscussionID, validation.Required),
		validation.Field(&req.Content, validation.Required),
		validation.Field(&req.FisherEmail, validation.Required, is.Email),
	)
}
