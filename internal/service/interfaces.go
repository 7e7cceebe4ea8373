package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/gatherly/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Me(ctx context.Context, principal models.Principal) (models.User, error)
	UpdateProfile(ctx context.Context, principal models.Principal, update models.ProfileUpdate) (models.User, error)
	ChangePassword(ctx context.Context, principal models.Principal, req models.ChangePasswordRequest) error
}

type VenueService interface {
	SearchVenues(ctx context.Context, filter models.VenueFilter) (models.VenuePage, error)
	GetVenue(ctx context.Context, venueID int64) (models.Venue, error)
	ListManagerVenues(ctx context.Context, principal models.Principal) ([]models.Venue, error)
	CreateVenue(ctx context.Context, principal models.Principal, input models.VenueInput) (models.Venue, error)
	UpdateVenue(ctx context.Context, principal models.Principal, venueID int64, update models.VenueUpdate) (models.Venue, error)
	DeleteVenue(ctx context.Context, principal models.Principal, venueID int64) error
}

type AmenityService interface {
	ListAmenities(ctx context.Context, category models.AmenityCategory) ([]models.Amenity, error)
	Categories() []models.CategoryLabel
	GetAmenity(ctx context.Context, amenityID int64) (models.Amenity, error)
	CreateAmenity(ctx context.Context, input models.AmenityInput) (models.Amenity, error)
	UpdateAmenity(ctx context.Context, amenityID int64, update models.AmenityUpdate) (models.Amenity, error)
	DeleteAmenity(ctx context.Context, amenityID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}

// TokenIssuer mints signed bearer tokens. A non-positive ttl selects the
// issuer's default lifetime.
type TokenIssuer interface {
	Issue(claims models.Claims, ttl time.Duration) (models.Token, error)
}
