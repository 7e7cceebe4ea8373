package models

import "time"

// AmenityCategory groups amenities in the catalogue.
type AmenityCategory string

const (
	AmenityBasic         AmenityCategory = "basic"
	AmenityTechnical     AmenityCategory = "technical"
	AmenityCatering      AmenityCategory = "catering"
	AmenityAccessibility AmenityCategory = "accessibility"
	AmenityOther         AmenityCategory = "other"
)

// CategoryLabel is a category value with its human readable label.
type CategoryLabel struct {
	Value AmenityCategory `json:"value"`
	Label string          `json:"label"`
}

// AmenityCategories is the ordered list of categories shown to clients.
var AmenityCategories = []CategoryLabel{
	{Value: AmenityBasic, Label: "Basic Facilities"},
	{Value: AmenityTechnical, Label: "Technical Equipment"},
	{Value: AmenityCatering, Label: "Catering & Kitchen"},
	{Value: AmenityAccessibility, Label: "Accessibility Features"},
	{Value: AmenityOther, Label: "Other"},
}

// Amenity is a catalogue entry venues can offer.
type Amenity struct {
	AmenityID   int64           `json:"amenity_id"`
	AmenityName string          `json:"amenity_name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Category    AmenityCategory `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Amenity model.
func (a Amenity) TableName() string {
	return "amenities"
}
