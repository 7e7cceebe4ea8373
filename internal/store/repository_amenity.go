package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/models"
	"github.com/jackc/pgerrcode"
)

type amenityRepository struct {
	*DB
	logger *logger.Logger
}

// NewAmenityRepository constructs an [AmenityRepository] backed by db.
func NewAmenityRepository(db *DB, logger *logger.Logger) AmenityRepository {
	logger.Debug().Msg("creating amenity repository")
	return &amenityRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *amenityRepository) ListAmenities(ctx context.Context, category models.AmenityCategory) ([]models.Amenity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAmenitiesQuery(category)
	if err != nil {
		log.Err(err).Str("func", "amenityRepository.ListAmenities").Msg("failed to create query")
		return nil, err
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "amenityRepository.ListAmenities").Msg("failed to list amenities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	amenities := make([]models.Amenity, 0)
	for rows.Next() {
		amenity, err := scanAmenity(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		amenities = append(amenities, amenity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return amenities, nil
}

func (a *amenityRepository) FindAmenityByID(ctx context.Context, amenityID int64) (models.Amenity, error) {
	amenity, err := scanAmenity(a.DB.QueryRowContext(ctx, findAmenityByID, amenityID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Amenity{}, ErrAmenityNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "amenityRepository.FindAmenityByID").
			Int64("amenity_id", amenityID).
			Msg("failed to find amenity")
		return models.Amenity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return amenity, nil
}

func (a *amenityRepository) CreateAmenity(ctx context.Context, amenity models.Amenity) (models.Amenity, error) {
	created, err := scanAmenity(a.DB.QueryRowContext(ctx, createAmenity,
		amenity.AmenityName, amenity.Description, amenity.Icon, string(amenity.Category)))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "amenityRepository.CreateAmenity").
			Msg("failed to create amenity")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Amenity{}, ErrAmenityAlreadyExists
		}
		return models.Amenity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return created, nil
}

func (a *amenityRepository) UpdateAmenity(ctx context.Context, amenityID int64, update models.AmenityUpdate) (models.Amenity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAmenityQuery(amenityID, update)
	if err != nil {
		log.Err(err).Str("func", "amenityRepository.UpdateAmenity").Msg("failed to create query")
		return models.Amenity{}, err
	}

	updated, err := scanAmenity(a.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Amenity{}, ErrAmenityNotFound
		case postgresError(err) == pgerrcode.UniqueViolation:
			return models.Amenity{}, ErrAmenityAlreadyExists
		}
		log.Err(err).Str("func", "amenityRepository.UpdateAmenity").Int64("amenity_id", amenityID).Msg("failed to update amenity")
		return models.Amenity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return updated, nil
}

// DeleteAmenity removes the amenity; venue links go with it.
func (a *amenityRepository) DeleteAmenity(ctx context.Context, amenityID int64) error {
	res, err := a.DB.ExecContext(ctx, deleteAmenity, amenityID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "amenityRepository.DeleteAmenity").
			Int64("amenity_id", amenityID).
			Msg("failed to delete amenity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAmenityNotFound
	}
	return nil
}
