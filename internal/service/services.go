package service

import (
	"github.com/MKhiriev/gatherly/internal/config"
	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/internal/store"
	"github.com/MKhiriev/gatherly/internal/validators"
)

type Services struct {
	AuthService    AuthService
	VenueService   VenueService
	AmenityService AmenityService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, tokens TokenIssuer, cfg config.App, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, tokens, validator, cfg, logger),
		VenueService:   NewVenueService(storages.VenueRepository, validator, logger),
		AmenityService: NewAmenityService(storages.AmenityRepository, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
