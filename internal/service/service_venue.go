package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/internal/store"
	"github.com/MKhiriev/gatherly/internal/validators"
	"github.com/MKhiriev/gatherly/models"
)

const defaultCountry = "Philippines"

// venueService implements VenueService. Managers may change only the venues
// they manage; admins may change any venue.
type venueService struct {
	venueRepository store.VenueRepository
	validator       validators.Validator
	logger          *logger.Logger
}

func NewVenueService(venueRepository store.VenueRepository, validator validators.Validator, logger *logger.Logger) VenueService {
	return &venueService{
		venueRepository: venueRepository,
		validator:       validator,
		logger:          logger,
	}
}

// SearchVenues returns one page of active venues. Page defaults to 1 and
// limit to models.DefaultVenuePageSize.
func (s *venueService) SearchVenues(ctx context.Context, filter models.VenueFilter) (models.VenuePage, error) {
	filter.City = strings.TrimSpace(filter.City)
	filter.Search = strings.TrimSpace(filter.Search)
	filter.SortDir = strings.ToUpper(filter.SortDir)

	if err := s.validator.Validate(ctx, filter); err != nil {
		return models.VenuePage{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = models.DefaultVenuePageSize
	}

	venues, total, err := s.venueRepository.SearchVenues(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "venueService.SearchVenues").Msg("venue search failed")
		return models.VenuePage{}, fmt.Errorf("venue search failed: %w", err)
	}

	return models.VenuePage{
		Venues:     venues,
		Pagination: models.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

func (s *venueService) GetVenue(ctx context.Context, venueID int64) (models.Venue, error) {
	venue, err := s.venueRepository.FindVenueByID(ctx, venueID)
	if err != nil {
		return models.Venue{}, fmt.Errorf("failed to get venue %d: %w", venueID, err)
	}
	return venue, nil
}

func (s *venueService) ListManagerVenues(ctx context.Context, principal models.Principal) ([]models.Venue, error) {
	venues, err := s.venueRepository.FindVenuesByManager(ctx, principal.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("manager_id", principal.UserID).Msg("failed to list manager venues")
		return nil, fmt.Errorf("failed to list manager venues: %w", err)
	}
	return venues, nil
}

// CreateVenue stores a new venue managed by principal. Only an admin may
// assign the venue to another manager through input.ManagerID; for anyone
// else the field is ignored.
func (s *venueService) CreateVenue(ctx context.Context, principal models.Principal, input models.VenueInput) (models.Venue, error) {
	log := logger.FromContext(ctx)

	input.VenueName = strings.TrimSpace(input.VenueName)
	input.Description = strings.TrimSpace(input.Description)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)
	input.Country = strings.TrimSpace(input.Country)

	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Venue{}, err
	}

	managerID := principal.UserID
	if principal.IsAdmin() && input.ManagerID != nil {
		managerID = *input.ManagerID
	}
	country := input.Country
	if country == "" {
		country = defaultCountry
	}

	venue, err := s.venueRepository.CreateVenue(ctx, models.Venue{
		ManagerID:   managerID,
		VenueName:   input.VenueName,
		Description: input.Description,
		VenueType:   input.VenueType,
		Capacity:    input.Capacity,
		BasePrice:   input.BasePrice,
		Address:     input.Address,
		City:        input.City,
		Country:     country,
	}, input.AmenityIDs)
	if err != nil {
		log.Err(err).Int64("manager_id", managerID).Msg("failed to create venue")
		return models.Venue{}, fmt.Errorf("failed to create venue: %w", err)
	}

	log.Info().Int64("venue_id", venue.VenueID).Int64("user_id", principal.UserID).Msg("venue created")
	return venue, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, principal models.Principal, venueID int64, update models.VenueUpdate) (models.Venue, error) {
	log := logger.FromContext(ctx)

	update.VenueName = trimPtr(update.VenueName)
	update.Description = trimPtr(update.Description)
	update.Address = trimPtr(update.Address)
	update.City = trimPtr(update.City)
	update.Country = trimPtr(update.Country)

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Venue{}, err
	}

	if err := s.checkOwnership(ctx, principal, venueID); err != nil {
		return models.Venue{}, err
	}

	venue, err := s.venueRepository.UpdateVenue(ctx, venueID, update)
	if err != nil {
		log.Err(err).Int64("venue_id", venueID).Msg("failed to update venue")
		return models.Venue{}, fmt.Errorf("failed to update venue: %w", err)
	}

	log.Info().Int64("venue_id", venueID).Int64("user_id", principal.UserID).Msg("venue updated")
	return venue, nil
}

func (s *venueService) DeleteVenue(ctx context.Context, principal models.Principal, venueID int64) error {
	log := logger.FromContext(ctx)

	if err := s.checkOwnership(ctx, principal, venueID); err != nil {
		return err
	}

	if err := s.venueRepository.DeleteVenue(ctx, venueID); err != nil {
		log.Err(err).Int64("venue_id", venueID).Msg("failed to delete venue")
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	log.Info().Int64("venue_id", venueID).Int64("user_id", principal.UserID).Msg("venue deleted")
	return nil
}

// checkOwnership loads the venue and returns ErrNotVenueOwner unless
// principal is an admin or the venue's manager.
func (s *venueService) checkOwnership(ctx context.Context, principal models.Principal, venueID int64) error {
	venue, err := s.venueRepository.FindVenueByID(ctx, venueID)
	if err != nil {
		return fmt.Errorf("failed to load venue %d: %w", venueID, err)
	}

	if !principal.IsAdmin() && venue.ManagerID != principal.UserID {
		logger.FromContext(ctx).Warn().
			Int64("venue_id", venueID).
			Int64("user_id", principal.UserID).
			Int64("manager_id", venue.ManagerID).
			Msg("venue change rejected: not the manager")
		return ErrNotVenueOwner
	}
	return nil
}
