package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	Role     Role    `json:"role"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ProfileUpdate is the body of PUT /api/auth/profile.
// Only non-nil fields are updated (partial update support).
type ProfileUpdate struct {
	FullName     *string `json:"full_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// VenueInput is the body of POST /api/venues.
type VenueInput struct {
	// ManagerID is honoured only when an admin creates the venue.
	ManagerID   *int64    `json:"manager_id,omitempty"`
	VenueName   string    `json:"venue_name"`
	Description string    `json:"description"`
	VenueType   VenueType `json:"venue_type"`
	Capacity    int       `json:"capacity"`
	BasePrice   float64   `json:"base_price"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	AmenityIDs  []int64   `json:"amenity_ids,omitempty"`
}

// VenueUpdate is the body of PUT /api/venues/:id.
// Only non-nil fields are updated (partial update support).
type VenueUpdate struct {
	VenueName   *string    `json:"venue_name,omitempty"`
	Description *string    `json:"description,omitempty"`
	VenueType   *VenueType `json:"venue_type,omitempty"`
	Capacity    *int       `json:"capacity,omitempty"`
	BasePrice   *float64   `json:"base_price,omitempty"`
	Address     *string    `json:"address,omitempty"`
	City        *string    `json:"city,omitempty"`
	Country     *string    `json:"country,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`

	// AmenityIDs, when present, replaces the venue's amenity set.
	AmenityIDs *[]int64 `json:"amenity_ids,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u VenueUpdate) IsEmpty() bool {
	return u.VenueName == nil && u.Description == nil && u.VenueType == nil &&
		u.Capacity == nil && u.BasePrice == nil && u.Address == nil &&
		u.City == nil && u.Country == nil && u.IsActive == nil && u.AmenityIDs == nil
}

// HasColumnChanges reports whether the update touches the venue row itself
// rather than only its amenity links.
func (u VenueUpdate) HasColumnChanges() bool {
	withoutAmenities := u
	withoutAmenities.AmenityIDs = nil
	return !withoutAmenities.IsEmpty()
}

// AmenityInput is the body of POST /api/amenities.
type AmenityInput struct {
	AmenityName string          `json:"amenity_name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Category    AmenityCategory `json:"category"`
}

// AmenityUpdate is the body of PUT /api/amenities/:id.
// Only non-nil fields are updated (partial update support).
type AmenityUpdate struct {
	AmenityName *string          `json:"amenity_name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Icon        *string          `json:"icon,omitempty"`
	Category    *AmenityCategory `json:"category,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u AmenityUpdate) IsEmpty() bool {
	return u.AmenityName == nil && u.Description == nil && u.Icon == nil && u.Category == nil
}

// IsEmpty reports whether the update carries no field at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Phone == nil && u.ProfileImage == nil
}
