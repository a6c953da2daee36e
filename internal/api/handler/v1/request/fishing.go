package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// WaterCoordinates addresses a water point by position. The server
// derives the water id from these values.
type WaterCoordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FishingEventRequest starts or ends a session for a fisher at a water
// point.
type FishingEventRequest struct {
	FisherEmail string           `json:"fisher_email"`
	Water       WaterCoordinates `json:"water"`
}

func (req *FishingEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FisherEmail, validation.Required, is.Email),
	)
}

type AddCaughtFishRequest struct {
	FishingID uint    `json:"fishing_id"`
	FishID    uint    `json:"fish_id"`
	Weight    float64 `json:"weight"`
}

func (req *AddCaughtFishRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FishingID, validation.Required),
		validation.Field(&req.FishID, validation.Required),
		validation.Field(&req.Weight, validation.Min(0.0)),
	)
}

type CreateSpeciesRequest struct {
	Name      string  `json:"name"`
	AvgWeight float64 `json:"avg_weight"`
}

func (req *CreateSpeciesRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.AvgWeight, validation.Min(0.0)),
	)
}
