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

// venueRepository is the PostgreSQL-backed implementation of
// [VenueRepository].
type venueRepository struct {
	*DB
	logger *logger.Logger
}

// NewVenueRepository constructs a [VenueRepository] backed by db.
func NewVenueRepository(db *DB, logger *logger.Logger) VenueRepository {
	logger.Debug().Msg("creating venue repository")
	return &venueRepository{
		DB:     db,
		logger: logger,
	}
}

func scanVenue(row rowScanner) (models.Venue, error) {
	var v models.Venue
	err := row.Scan(
		&v.VenueID,
		&v.ManagerID,
		&v.ManagerName,
		&v.VenueName,
		&v.Description,
		&v.VenueType,
		&v.Capacity,
		&v.BasePrice,
		&v.Address,
		&v.City,
		&v.Country,
		&v.IsActive,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}

func scanAmenity(row rowScanner) (models.Amenity, error) {
	var a models.Amenity
	err := row.Scan(&a.AmenityID, &a.AmenityName, &a.Description, &a.Icon, &a.Category, &a.CreatedAt)
	return a, err
}

// SearchVenues returns one page of active venues matching filter together
// with the total number of matches.
func (v *venueRepository) SearchVenues(ctx context.Context, filter models.VenueFilter) ([]models.Venue, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountVenuesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "venueRepository.SearchVenues").Msg("failed to create count query")
		return nil, 0, err
	}

	var total int
	if err = v.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "venueRepository.SearchVenues").Msg("failed to count venues")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildSearchVenuesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "venueRepository.SearchVenues").Msg("failed to create search query")
		return nil, 0, err
	}

	venues, err := v.queryVenues(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "venueRepository.SearchVenues").Msg("failed to search venues")
		return nil, 0, err
	}

	return venues, total, nil
}

// FindVenueByID returns the venue with venueID, including inactive ones,
// together with its amenities.
func (v *venueRepository) FindVenueByID(ctx context.Context, venueID int64) (models.Venue, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindVenueByIDQuery(venueID)
	if err != nil {
		return models.Venue{}, err
	}

	venue, err := scanVenue(v.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Venue{}, ErrVenueNotFound
		}
		log.Err(err).Str("func", "venueRepository.FindVenueByID").Int64("venue_id", venueID).Msg("failed to find venue")
		return models.Venue{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	venue.Amenities, err = v.venueAmenities(ctx, venueID)
	if err != nil {
		log.Err(err).Str("func", "venueRepository.FindVenueByID").Int64("venue_id", venueID).Msg("failed to load amenities")
		return models.Venue{}, err
	}

	return venue, nil
}

// FindVenuesByManager returns the active venues of managerID, newest first.
func (v *venueRepository) FindVenuesByManager(ctx context.Context, managerID int64) ([]models.Venue, error) {
	query, args, err := buildFindVenuesByManagerQuery(managerID)
	if err != nil {
		return nil, err
	}

	venues, err := v.queryVenues(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "venueRepository.FindVenuesByManager").
			Int64("manager_id", managerID).
			Msg("failed to list manager venues")
		return nil, err
	}
	return venues, nil
}

// CreateVenue inserts venue and links amenityIDs in one transaction, then
// returns the stored venue.
func (v *venueRepository) CreateVenue(ctx context.Context, venue models.Venue, amenityIDs []int64) (models.Venue, error) {
	log := logger.FromContext(ctx)

	var venueID int64
	err := v.inTx(ctx, "venueRepository.CreateVenue", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, createVenue,
			venue.ManagerID,
			venue.VenueName,
			venue.Description,
			string(venue.VenueType),
			venue.Capacity,
			venue.BasePrice,
			venue.Address,
			venue.City,
			venue.Country,
		).Scan(&venueID)
		if err != nil {
			log.Err(err).Str("func", "venueRepository.CreateVenue").Int64("manager_id", venue.ManagerID).Msg("failed to insert venue")
			return classifyWriteError(err)
		}

		if err = linkAmenities(ctx, tx, venueID, amenityIDs); err != nil {
			log.Err(err).Str("func", "venueRepository.CreateVenue").Int64("venue_id", venueID).Msg("failed to link amenities")
			return err
		}
		return nil
	})
	if err != nil {
		return models.Venue{}, err
	}

	return v.FindVenueByID(ctx, venueID)
}

// UpdateVenue applies the non-nil fields of update. When update carries
// amenity ids the venue's amenity set is replaced. Both happen in one
// transaction.
func (v *venueRepository) UpdateVenue(ctx context.Context, venueID int64, update models.VenueUpdate) (models.Venue, error) {
	log := logger.FromContext(ctx)

	err := v.inTx(ctx, "venueRepository.UpdateVenue", func(tx *sql.Tx) error {
		if update.HasColumnChanges() {
			query, args, err := buildUpdateVenueQuery(venueID, update)
			if err != nil {
				log.Err(err).Str("func", "venueRepository.UpdateVenue").Msg("failed to create query")
				return err
			}

			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				log.Err(err).Str("func", "venueRepository.UpdateVenue").Int64("venue_id", venueID).Msg("failed to update venue")
				return classifyWriteError(err)
			}
			if affected, err := res.RowsAffected(); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			} else if affected == 0 {
				return ErrVenueNotFound
			}
		}

		if update.AmenityIDs == nil {
			return nil
		}
		if _, err := tx.ExecContext(ctx, deleteVenueAmenities, venueID); err != nil {
			log.Err(err).Str("func", "venueRepository.UpdateVenue").Int64("venue_id", venueID).Msg("failed to unlink amenities")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if err := linkAmenities(ctx, tx, venueID, *update.AmenityIDs); err != nil {
			log.Err(err).Str("func", "venueRepository.UpdateVenue").Int64("venue_id", venueID).Msg("failed to link amenities")
			return err
		}
		return nil
	})
	if err != nil {
		return models.Venue{}, err
	}

	return v.FindVenueByID(ctx, venueID)
}

// DeleteVenue deactivates the venue. Venues are never removed so that
// historical records keep pointing at them.
func (v *venueRepository) DeleteVenue(ctx context.Context, venueID int64) error {
	res, err := v.DB.ExecContext(ctx, deleteVenue, venueID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "venueRepository.DeleteVenue").
			Int64("venue_id", venueID).
			Msg("failed to deactivate venue")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func (v *venueRepository) queryVenues(ctx context.Context, query string, args ...any) ([]models.Venue, error) {
	rows, err := v.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	venues := make([]models.Venue, 0, models.DefaultVenuePageSize)
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		venues = append(venues, venue)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return venues, nil
}

func (v *venueRepository) venueAmenities(ctx context.Context, venueID int64) ([]models.Amenity, error) {
	rows, err := v.DB.QueryContext(ctx, findVenueAmenities, venueID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var amenities []models.Amenity
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

func linkAmenities(ctx context.Context, tx *sql.Tx, venueID int64, amenityIDs []int64) error {
	if len(amenityIDs) == 0 {
		return nil
	}

	query, args, err := buildInsertVenueAmenitiesQuery(venueID, amenityIDs)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return classifyWriteError(err)
	}
	return nil
}

// classifyWriteError maps constraint violations of INSERT/UPDATE statements
// to domain errors.
func classifyWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.ForeignKeyViolation:
		return ErrInvalidReference
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
