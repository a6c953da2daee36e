package domain

// Species is catalog reference data: a fish type with its average weight,
// distinct from an individual catch.
type Species struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	AvgWeight float64 `json:"avg_weight"`
	Photo     []byte  `json:"photo,omitempty"`
}
