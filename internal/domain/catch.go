package domain

// Catch is one fish landed during an open session. FisherEmail is
// denormalized from the owning session at creation time. A catch with a
// photo is a verified catch and counts toward the fisher's score.
type Catch struct {
	ID          uint    `json:"id"`
	FisherEmail string  `json:"fisher_email"`
	Weight      float64 `json:"weight"`
	Photo       []byte  `json:"photo,omitempty"`
	SessionID   uint    `json:"session_id"`
	SpeciesID   uint    `json:"species_id"`
}

// HasPhoto reports whether the catch carries photographic evidence.
func (c *Catch) HasPhoto() bool {
	return len(c.Photo) > 0
}
