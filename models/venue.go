package models

import "time"

// VenueType is the category of a venue listing.
type VenueType string

const (
	VenueConferenceHall  VenueType = "conference_hall"
	VenueGymnasium       VenueType = "gymnasium"
	VenuePavilion        VenueType = "pavilion"
	VenueCommunityCenter VenueType = "community_center"
	VenueHotelBallroom   VenueType = "hotel_ballroom"
	VenueOutdoor         VenueType = "outdoor_venue"
	VenueOther           VenueType = "other"
)

// VenueTypes lists every accepted venue type.
var VenueTypes = []VenueType{
	VenueConferenceHall,
	VenueGymnasium,
	VenuePavilion,
	VenueCommunityCenter,
	VenueHotelBallroom,
	VenueOutdoor,
	VenueOther,
}

// Venue is a bookable location managed by a venue manager.
type Venue struct {
	VenueID     int64     `json:"venue_id"`
	ManagerID   int64     `json:"manager_id"`
	ManagerName string    `json:"manager_name,omitempty"`
	VenueName   string    `json:"venue_name"`
	Description string    `json:"description"`
	VenueType   VenueType `json:"venue_type"`
	Capacity    int       `json:"capacity"`
	BasePrice   float64   `json:"base_price"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Amenities is filled only when a single venue is fetched.
	Amenities []Amenity `json:"amenities,omitempty"`
}

// TableName returns the name of the database table
// associated with the Venue model.
func (v Venue) TableName() string {
	return "venues"
}

// Sortable venue columns and directions accepted by the search endpoint.
var (
	VenueSortColumns    = []string{"venue_name", "base_price", "capacity", "city", "created_at"}
	VenueSortDirections = []string{"ASC", "DESC"}
)

// Default and maximum page sizes of the venue search.
const (
	DefaultVenuePageSize = 20
	MaxVenuePageSize     = 100
)

// VenueFilter holds the search criteria of the public venue listing.
// Zero values mean "no filter".
type VenueFilter struct {
	VenueType   VenueType `json:"venue_type"`
	City        string    `json:"city"`
	MinCapacity int       `json:"min_capacity"`
	MaxCapacity int       `json:"max_capacity"`
	MinPrice    float64   `json:"min_price"`
	MaxPrice    float64   `json:"max_price"`
	Search      string    `json:"search"`
	SortBy      string    `json:"sort_by"`
	SortDir     string    `json:"sort_dir"`
	Page        int       `json:"page"`
	Limit       int       `json:"limit"`
}

// Offset returns the number of rows to skip for the filter's page.
func (f VenueFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// Pagination describes the position of a page within a result set.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes the pagination block for total results.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// VenuePage is one page of venue search results.
type VenuePage struct {
	Venues     []Venue    `json:"venues"`
	Pagination Pagination `json:"pagination"`
}
