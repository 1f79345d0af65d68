package domain

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Garden is a botanical garden holding a set of tree species.
type Garden struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       GeoPoint `json:"location"`
	TreeIDs        []string `json:"trees"`
	PanoramicImage string   `json:"panoramicImage,omitempty"`
}

// GardenDetail is a garden with its trees resolved to species documents.
type GardenDetail struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Location       GeoPoint   `json:"location"`
	Trees          []*Species `json:"trees"`
	PanoramicImage string     `json:"panoramicImage,omitempty"`
}
