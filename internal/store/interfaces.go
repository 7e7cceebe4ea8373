package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/gatherly/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// VenueRepository persists venue listings and their amenity links.
type VenueRepository interface {
	SearchVenues(ctx context.Context, filter models.VenueFilter) ([]models.Venue, int, error)
	FindVenueByID(ctx context.Context, venueID int64) (models.Venue, error)
	FindVenuesByManager(ctx context.Context, managerID int64) ([]models.Venue, error)
	CreateVenue(ctx context.Context, venue models.Venue, amenityIDs []int64) (models.Venue, error)
	UpdateVenue(ctx context.Context, venueID int64, update models.VenueUpdate) (models.Venue, error)
	DeleteVenue(ctx context.Context, venueID int64) error
}

// AmenityRepository persists the amenity catalogue.
type AmenityRepository interface {
	ListAmenities(ctx context.Context, category models.AmenityCategory) ([]models.Amenity, error)
	FindAmenityByID(ctx context.Context, amenityID int64) (models.Amenity, error)
	CreateAmenity(ctx context.Context, amenity models.Amenity) (models.Amenity, error)
	UpdateAmenity(ctx context.Context, amenityID int64, update models.AmenityUpdate) (models.Amenity, error)
	DeleteAmenity(ctx context.Context, amenityID int64) error
}
