package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveWaterID(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		y    float64
		want int64
	}{
		{name: "integral coordinates", x: 55, y: 37, want: 55037},
		{name: "fractional parts truncate", x: 55.7, y: 37.6, want: 55737},
		{name: "origin", x: 0, y: 0, want: 0},
		{name: "negative coordinates", x: -12.3, y: -4.9, want: -12304},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveWaterID(tt.x, tt.y))
		})
	}
}

func TestDeriveWaterID_Deterministic(t *testing.T) {
	assert.Equal(t, DeriveWaterID(55.7, 37.6), DeriveWaterID(55.7, 37.6))
}
