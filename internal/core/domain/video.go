package domain

// Video is an educational clip, optionally tied to a species.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	SpeciesID   string `json:"speciesId,omitempty"`
}
