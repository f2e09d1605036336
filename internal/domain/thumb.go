package domain

// Thumb is the minimal projection of a Photo needed to display an album
// cover. It is always derived from a Photo and never stored on its own.
type Thumb struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// ThumbFromPhoto builds the display projection of p. Returns nil for a nil
// photo so absent covers pass through unchanged.
func ThumbFromPhoto(p *Photo) *Thumb {
	if p == nil {
		return nil
	}
	return &Thumb{
		ID:   p.ID,
		Type: p.Type,
	}
}
