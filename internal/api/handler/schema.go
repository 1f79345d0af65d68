package handler

import "github.com/esas/tree-species-api/internal/core/domain"

// errorResponse documents the error envelope rendered by the API error handler.
type errorResponse struct {
	Message string `json:"message" example:"Token inválido ou ausente."`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"secret"`
}

type loginResponse struct {
	Token string `json:"token" example:"Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// --- Gardens ---

type createGardenRequest struct {
	Name      string   `json:"name"      validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Latitude  *float64 `json:"latitude"  validate:"required,gte=-90,lte=90"`
}

type panoramicResponse struct {
	PanoramicImageURL string `json:"panoramicImageUrl"`
}

// --- Species ---

type speciesRequest struct {
	CommonName     string `json:"commonName"     validate:"required"`
	ScientificName string `json:"scientificName" validate:"required"`
	Family         string `json:"family"`
	Origin         string `json:"origin"`
	Description    string `json:"description"`
	ImageURL       string `json:"imageUrl"       validate:"omitempty,url"`
}

func (r speciesRequest) toDomain() *domain.Species {
	return &domain.Species{
		CommonName:     r.CommonName,
		ScientificName: r.ScientificName,
		Family:         r.Family,
		Origin:         r.Origin,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
	}
}

// speciesPatchRequest only carries the fields present in the body.
type speciesPatchRequest struct {
	CommonName     *string `json:"commonName"     validate:"omitempty,min=1"`
	ScientificName *string `json:"scientificName" validate:"omitempty,min=1"`
	Family         *string `json:"family"`
	Origin         *string `json:"origin"`
	Description    *string `json:"description"`
	ImageURL       *string `json:"imageUrl"       validate:"omitempty,url"`
}

func (r speciesPatchRequest) toDomain() domain.SpeciesPatch {
	return domain.SpeciesPatch{
		CommonName:     r.CommonName,
		ScientificName: r.ScientificName,
		Family:         r.Family,
		Origin:         r.Origin,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
	}
}

type speciesListResponse struct {
	Species []*domain.Species `json:"species"`
	Current int               `json:"current"`
	Pages   int               `json:"pages"`
}

// --- Videos ---

type videoRequest struct {
	Title       string `json:"title"       validate:"required"`
	URL         string `json:"url"         validate:"required,url"`
	Description string `json:"description"`
	SpeciesID   string `json:"speciesId"   validate:"omitempty,mongodb"`
}

func (r videoRequest) toDomain() *domain.Video {
	return &domain.Video{
		Title:       r.Title,
		URL:         r.URL,
		Description: r.Description,
		SpeciesID:   r.SpeciesID,
	}
}

// --- Points of interest ---

type geoPointRequest struct {
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Latitude  *float64 `json:"latitude"  validate:"required,gte=-90,lte=90"`
}

type pointRequest struct {
	Name        string          `json:"name"        validate:"required"`
	Description string          `json:"description"`
	Location    geoPointRequest `json:"location"    validate:"required"`
	GardenID    string          `json:"gardenId"    validate:"omitempty,mongodb"`
	ImageURL    string          `json:"imageUrl"    validate:"omitempty,url"`
}

func (r pointRequest) toDomain() *domain.PointOfInterest {
	return &domain.PointOfInterest{
		Name:        r.Name,
		Description: r.Description,
		Location:    domain.NewGeoPoint(*r.Location.Longitude, *r.Location.Latitude),
		GardenID:    r.GardenID,
		ImageURL:    r.ImageURL,
	}
}
