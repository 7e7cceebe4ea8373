package models

// Role is the access level of a user account.
type Role string

const (
	// RoleOrganizer books venues for events.
	RoleOrganizer Role = "organizer"
	// RoleVenueManager lists and manages venues.
	RoleVenueManager Role = "venue_manager"
	// RoleAdmin manages the platform catalogue (amenities, any venue).
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the known roles.
// Unknown and empty roles are never valid.
func (r Role) IsValid() bool {
	switch r {
	case RoleOrganizer, RoleVenueManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// SelfRegistrableRoles are the roles a user may pick when signing up.
// Admin accounts are provisioned out of band.
var SelfRegistrableRoles = []Role{RoleOrganizer, RoleVenueManager}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
