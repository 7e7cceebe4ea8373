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

type amenityService struct {
	amenityRepository store.AmenityRepository
	validator         validators.Validator
	logger            *logger.Logger
}

func NewAmenityService(amenityRepository store.AmenityRepository, validator validators.Validator, logger *logger.Logger) AmenityService {
	return &amenityService{
		amenityRepository: amenityRepository,
		validator:         validator,
		logger:            logger,
	}
}

// ListAmenities returns the catalogue, optionally narrowed to category.
func (s *amenityService) ListAmenities(ctx context.Context, category models.AmenityCategory) ([]models.Amenity, error) {
	if category != "" && !isAmenityCategory(category) {
		return nil, ErrInvalidCategory
	}

	amenities, err := s.amenityRepository.ListAmenities(ctx, category)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("category", string(category)).Msg("failed to list amenities")
		return nil, fmt.Errorf("failed to list amenities: %w", err)
	}
	return amenities, nil
}

func (s *amenityService) Categories() []models.CategoryLabel {
	return append([]models.CategoryLabel(nil), models.AmenityCategories...)
}

func (s *amenityService) GetAmenity(ctx context.Context, amenityID int64) (models.Amenity, error) {
	amenity, err := s.amenityRepository.FindAmenityByID(ctx, amenityID)
	if err != nil {
		return models.Amenity{}, fmt.Errorf("failed to get amenity %d: %w", amenityID, err)
	}
	return amenity, nil
}

func (s *amenityService) CreateAmenity(ctx context.Context, input models.AmenityInput) (models.Amenity, error) {
	input.AmenityName = strings.TrimSpace(input.AmenityName)
	input.Description = strings.TrimSpace(input.Description)
	input.Icon = strings.TrimSpace(input.Icon)

	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Amenity{}, err
	}

	amenity, err := s.amenityRepository.CreateAmenity(ctx, models.Amenity{
		AmenityName: input.AmenityName,
		Description: input.Description,
		Icon:        input.Icon,
		Category:    input.Category,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("amenity_name", input.AmenityName).Msg("failed to create amenity")
		return models.Amenity{}, fmt.Errorf("failed to create amenity: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("amenity_id", amenity.AmenityID).Msg("amenity created")
	return amenity, nil
}

func (s *amenityService) UpdateAmenity(ctx context.Context, amenityID int64, update models.AmenityUpdate) (models.Amenity, error) {
	update.AmenityName = trimPtr(update.AmenityName)
	update.Description = trimPtr(update.Description)
	update.Icon = trimPtr(update.Icon)

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Amenity{}, err
	}

	amenity, err := s.amenityRepository.UpdateAmenity(ctx, amenityID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("amenity_id", amenityID).Msg("failed to update amenity")
		return models.Amenity{}, fmt.Errorf("failed to update amenity: %w", err)
	}
	return amenity, nil
}

func (s *amenityService) DeleteAmenity(ctx context.Context, amenityID int64) error {
	if err := s.amenityRepository.DeleteAmenity(ctx, amenityID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("amenity_id", amenityID).Msg("failed to delete amenity")
		return fmt.Errorf("failed to delete amenity: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("amenity_id", amenityID).Msg("amenity deleted")
	return nil
}

func isAmenityCategory(category models.AmenityCategory) bool {
	for _, c := range models.AmenityCategories {
		if c.Value == category {
			return true
		}
	}
	return false
}
