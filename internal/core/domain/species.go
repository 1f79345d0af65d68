package domain

// Species describes a tree species in the catalog.
type Species struct {
	ID             string `json:"id"`
	CommonName     string `json:"commonName"`
	ScientificName string `json:"scientificName"`
	Family         string `json:"family,omitempty"`
	Origin         string `json:"origin,omitempty"`
	Description    string `json:"description,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

// SpeciesPatch carries the fields of a partial species update. Nil fields are
// left untouched.
type SpeciesPatch struct {
	CommonName     *string
	ScientificName *string
	Family         *string
	Origin         *string
	Description    *string
	ImageURL       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p SpeciesPatch) IsEmpty() bool {
	return p.CommonName == nil && p.ScientificName == nil && p.Family == nil &&
		p.Origin == nil && p.Description == nil && p.ImageURL == nil
}
