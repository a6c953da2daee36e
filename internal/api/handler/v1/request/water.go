package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateWaterRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// Coordinates may legitimately be zero, so presence is checked on the
// pointers rather than the values.
func (req *CreateWaterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.X, validation.NotNil),
		validation.Field(&req.Y, validation.NotNil),
	)
}
