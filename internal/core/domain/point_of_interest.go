package domain

// PointOfInterest is a notable location inside a garden.
type PointOfInterest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Location    GeoPoint `json:"location"`
	GardenID    string   `json:"gardenId,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}
