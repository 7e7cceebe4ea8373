package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/gatherly/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `user_id, email, password_hash, full_name, phone, role, profile_image,
    is_active, email_verified, created_at, updated_at, last_login`

const (
	createUser = `INSERT INTO users (email, password_hash, full_name, phone, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	updateLastLogin = `UPDATE users SET last_login = NOW() WHERE user_id = $1;`

	updatePassword = `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE user_id = $2;`

	createVenue = `INSERT INTO venues (manager_id, venue_name, description, venue_type, capacity,
        base_price, address, city, country)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING venue_id;`

	deleteVenue = `UPDATE venues SET is_active = FALSE, updated_at = NOW() WHERE venue_id = $1;`

	deleteVenueAmenities = `DELETE FROM venue_amenities WHERE venue_id = $1;`

	findVenueAmenities = `SELECT a.amenity_id, a.amenity_name, a.description, a.icon, a.category, a.created_at
    FROM venue_amenities va
    INNER JOIN amenities a ON va.amenity_id = a.amenity_id
    WHERE va.venue_id = $1
    ORDER BY a.category, a.amenity_name;`

	amenityColumns = `amenity_id, amenity_name, description, icon, category, created_at`

	createAmenity = `INSERT INTO amenities (amenity_name, description, icon, category)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + amenityColumns + `;`

	findAmenityByID = `SELECT ` + amenityColumns + `
    FROM amenities
    WHERE amenity_id = $1;`

	deleteAmenity = `DELETE FROM amenities WHERE amenity_id = $1;`
)

var venueColumns = []string{
	"v.venue_id",
	"v.manager_id",
	"COALESCE(u.full_name, '') AS manager_name",
	"v.venue_name",
	"v.description",
	"v.venue_type",
	"v.capacity",
	"v.base_price",
	"v.address",
	"v.city",
	"v.country",
	"v.is_active",
	"v.created_at",
	"v.updated_at",
}

func selectVenues() sq.SelectBuilder {
	return psql.Select(venueColumns...).
		From("venues v").
		LeftJoin("users u ON v.manager_id = u.user_id")
}

// venueConditions translates filter into the WHERE clause shared by the
// search and count queries. Only active venues are ever listed.
func venueConditions(filter models.VenueFilter) sq.And {
	conds := sq.And{sq.Eq{"v.is_active": true}}

	if filter.VenueType != "" {
		conds = append(conds, sq.Eq{"v.venue_type": string(filter.VenueType)})
	}
	if filter.City != "" {
		conds = append(conds, sq.ILike{"v.city": likePattern(filter.City)})
	}
	if filter.MinCapacity > 0 {
		conds = append(conds, sq.GtOrEq{"v.capacity": filter.MinCapacity})
	}
	if filter.MaxCapacity > 0 {
		conds = append(conds, sq.LtOrEq{"v.capacity": filter.MaxCapacity})
	}
	if filter.MinPrice > 0 {
		conds = append(conds, sq.GtOrEq{"v.base_price": filter.MinPrice})
	}
	if filter.MaxPrice > 0 {
		conds = append(conds, sq.LtOrEq{"v.base_price": filter.MaxPrice})
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		conds = append(conds, sq.Or{
			sq.ILike{"v.venue_name": pattern},
			sq.ILike{"v.description": pattern},
			sq.ILike{"v.address": pattern},
		})
	}

	return conds
}

// likePattern wraps s in % after escaping LIKE wildcards.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// venueOrder returns a safe ORDER BY expression. Unknown columns fall back to
// venue_name and unknown directions to ASC.
func venueOrder(sortBy, sortDir string) string {
	if !slices.Contains(models.VenueSortColumns, sortBy) {
		sortBy = models.VenueSortColumns[0]
	}
	sortDir = strings.ToUpper(sortDir)
	if !slices.Contains(models.VenueSortDirections, sortDir) {
		sortDir = models.VenueSortDirections[0]
	}
	return fmt.Sprintf("v.%s %s, v.venue_id ASC", sortBy, sortDir)
}

func buildSearchVenuesQuery(filter models.VenueFilter) (string, []any, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = models.DefaultVenuePageSize
	}
	filter.Limit = limit

	query, args, err := selectVenues().
		Where(venueConditions(filter)).
		OrderBy(venueOrder(filter.SortBy, filter.SortDir)).
		Limit(uint64(limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountVenuesQuery(filter models.VenueFilter) (string, []any, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("venues v").
		Where(venueConditions(filter)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindVenueByIDQuery(venueID int64) (string, []any, error) {
	query, args, err := selectVenues().
		Where(sq.Eq{"v.venue_id": venueID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindVenuesByManagerQuery(managerID int64) (string, []any, error) {
	query, args, err := selectVenues().
		Where(sq.And{sq.Eq{"v.manager_id": managerID}, sq.Eq{"v.is_active": true}}).
		OrderBy("v.created_at DESC", "v.venue_id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateVenueQuery builds a partial UPDATE touching only the non-nil
// fields of update, in a fixed column order.
func buildUpdateVenueQuery(venueID int64, update models.VenueUpdate) (string, []any, error) {
	b := psql.Update("venues")

	if update.VenueName != nil {
		b = b.Set("venue_name", *update.VenueName)
	}
	if update.Description != nil {
		b = b.Set("description", *update.Description)
	}
	if update.VenueType != nil {
		b = b.Set("venue_type", string(*update.VenueType))
	}
	if update.Capacity != nil {
		b = b.Set("capacity", *update.Capacity)
	}
	if update.BasePrice != nil {
		b = b.Set("base_price", *update.BasePrice)
	}
	if update.Address != nil {
		b = b.Set("address", *update.Address)
	}
	if update.City != nil {
		b = b.Set("city", *update.City)
	}
	if update.Country != nil {
		b = b.Set("country", *update.Country)
	}
	if update.IsActive != nil {
		b = b.Set("is_active", *update.IsActive)
	}

	query, args, err := b.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"venue_id": venueID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertVenueAmenitiesQuery(venueID int64, amenityIDs []int64) (string, []any, error) {
	b := psql.Insert("venue_amenities").Columns("venue_id", "amenity_id")
	for _, id := range amenityIDs {
		b = b.Values(venueID, id)
	}

	query, args, err := b.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateProfileQuery builds a partial UPDATE of the profile columns.
func buildUpdateProfileQuery(userID int64, update models.ProfileUpdate) (string, []any, error) {
	b := psql.Update("users")

	if update.FullName != nil {
		b = b.Set("full_name", *update.FullName)
	}
	if update.Phone != nil {
		b = b.Set("phone", nullIfEmpty(*update.Phone))
	}
	if update.ProfileImage != nil {
		b = b.Set("profile_image", nullIfEmpty(*update.ProfileImage))
	}

	query, args, err := b.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListAmenitiesQuery(category models.AmenityCategory) (string, []any, error) {
	b := psql.Select(amenityColumns).From("amenities")
	if category != "" {
		b = b.Where(sq.Eq{"category": string(category)})
	}

	query, args, err := b.OrderBy("category", "amenity_name").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateAmenityQuery builds a partial UPDATE of an amenity.
func buildUpdateAmenityQuery(amenityID int64, update models.AmenityUpdate) (string, []any, error) {
	b := psql.Update("amenities")

	if update.AmenityName != nil {
		b = b.Set("amenity_name", *update.AmenityName)
	}
	if update.Description != nil {
		b = b.Set("description", *update.Description)
	}
	if update.Icon != nil {
		b = b.Set("icon", *update.Icon)
	}
	if update.Category != nil {
		b = b.Set("category", string(*update.Category))
	}

	query, args, err := b.
		Where(sq.Eq{"amenity_id": amenityID}).
		Suffix("RETURNING " + amenityColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// nullIfEmpty maps an empty string to SQL NULL so optional columns can be
// cleared.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
