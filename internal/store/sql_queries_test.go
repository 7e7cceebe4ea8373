// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/gatherly/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func Test_buildSearchVenuesQuery_NoFilters(t *testing.T) {
	query, args, err := buildSearchVenuesQuery(models.VenueFilter{})
	require.NoError(t, err)

	assert.Equal(t, []any{true}, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from venues v left join users u on v.manager_id = u.user_id")
	assert.Contains(t, q, "where (v.is_active = $1)")
	assert.Contains(t, q, "order by v.venue_name asc, v.venue_id asc")
	assert.Contains(t, q, "limit 20")
	assert.Contains(t, q, "offset 0")
	assert.Contains(t, q, "coalesce(u.full_name, '') as manager_name")
}

func Test_buildSearchVenuesQuery_AllFilters(t *testing.T) {
	filter := models.VenueFilter{
		VenueType:   models.VenueGymnasium,
		City:        "Manila",
		MinCapacity: 50,
		MaxCapacity: 500,
		MinPrice:    1000,
		MaxPrice:    9000.5,
		Search:      "court",
		SortBy:      "base_price",
		SortDir:     "desc",
		Page:        3,
		Limit:       10,
	}

	query, args, err := buildSearchVenuesQuery(filter)
	require.NoError(t, err)

	assert.Equal(t, []any{
		true,
		"gymnasium",
		"%Manila%",
		50,
		500,
		float64(1000),
		9000.5,
		"%court%",
		"%court%",
		"%court%",
	}, args)

	assert.Contains(t, query, "v.venue_type = $2")
	assert.Contains(t, query, "v.city ILIKE $3")
	assert.Contains(t, query, "v.capacity >= $4")
	assert.Contains(t, query, "v.capacity <= $5")
	assert.Contains(t, query, "v.base_price >= $6")
	assert.Contains(t, query, "v.base_price <= $7")
	assert.Contains(t, query, "(v.venue_name ILIKE $8 OR v.description ILIKE $9 OR v.address ILIKE $10)")
	assert.Contains(t, query, "ORDER BY v.base_price DESC, v.venue_id ASC")
	assert.Contains(t, query, "LIMIT 10")
	assert.Contains(t, query, "OFFSET 20")
}

func Test_buildCountVenuesQuery_SharesConditions(t *testing.T) {
	filter := models.VenueFilter{City: "Cebu", Search: "hall"}

	countQuery, countArgs, err := buildCountVenuesQuery(filter)
	require.NoError(t, err)
	_, searchArgs, err := buildSearchVenuesQuery(filter)
	require.NoError(t, err)

	assert.Equal(t, searchArgs, countArgs)
	assert.True(t, strings.HasPrefix(countQuery, "SELECT COUNT(*) FROM venues v WHERE"))
	assert.NotContains(t, countQuery, "LIMIT")
}

func Test_venueOrder_RejectsUnknownInput(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  string
		sortDir string
		want    string
	}{
		{name: "defaults", want: "v.venue_name ASC, v.venue_id ASC"},
		{name: "allowed column", sortBy: "capacity", sortDir: "DESC", want: "v.capacity DESC, v.venue_id ASC"},
		{name: "injection attempt", sortBy: "venue_name; DROP TABLE users", sortDir: "ASC", want: "v.venue_name ASC, v.venue_id ASC"},
		{name: "bad direction", sortBy: "city", sortDir: "sideways", want: "v.city ASC, v.venue_id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, venueOrder(tt.sortBy, tt.sortDir))
		})
	}
}

func Test_likePattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, "%100\\%%", likePattern("100%"))
	assert.Equal(t, "%a\\_b%", likePattern("a_b"))
	assert.Equal(t, "%plain%", likePattern("plain"))
}

func Test_buildUpdateVenueQuery(t *testing.T) {
	update := models.VenueUpdate{
		VenueName: ptr("New Hall"),
		Capacity:  ptr(120),
		IsActive:  ptr(false),
	}

	query, args, err := buildUpdateVenueQuery(9, update)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE venues SET venue_name = $1, capacity = $2, is_active = $3, updated_at = NOW() WHERE venue_id = $4", query)
	assert.Equal(t, []any{"New Hall", 120, false, int64(9)}, args)
}

func Test_buildFindVenuesByManagerQuery(t *testing.T) {
	query, args, err := buildFindVenuesByManagerQuery(5)
	require.NoError(t, err)

	assert.Equal(t, []any{int64(5), true}, args)
	assert.Contains(t, query, "WHERE (v.manager_id = $1 AND v.is_active = $2)")
	assert.Contains(t, query, "ORDER BY v.created_at DESC, v.venue_id DESC")
}

func Test_buildInsertVenueAmenitiesQuery(t *testing.T) {
	query, args, err := buildInsertVenueAmenitiesQuery(3, []int64{1, 2})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO venue_amenities (venue_id,amenity_id) VALUES ($1,$2),($3,$4) ON CONFLICT DO NOTHING", query)
	assert.Equal(t, []any{int64(3), int64(1), int64(3), int64(2)}, args)
}

func Test_buildUpdateProfileQuery(t *testing.T) {
	query, args, err := buildUpdateProfileQuery(4, models.ProfileUpdate{
		FullName: ptr("Ana Cruz"),
		Phone:    ptr(""),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE users SET full_name = $1, phone = $2, updated_at = NOW() WHERE user_id = $3 RETURNING"))
	assert.Equal(t, []any{"Ana Cruz", nil, int64(4)}, args)
}

func Test_buildListAmenitiesQuery(t *testing.T) {
	query, args, err := buildListAmenitiesQuery("")
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY category, amenity_name")

	query, args, err = buildListAmenitiesQuery(models.AmenityTechnical)
	require.NoError(t, err)
	assert.Equal(t, []any{"technical"}, args)
	assert.Contains(t, query, "WHERE category = $1")
}

func Test_buildUpdateAmenityQuery(t *testing.T) {
	query, args, err := buildUpdateAmenityQuery(2, models.AmenityUpdate{Icon: ptr("wifi")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "UPDATE amenities SET icon = $1 WHERE amenity_id = $2 RETURNING"))
	assert.Equal(t, []any{"wifi", int64(2)}, args)

	_, _, err = buildUpdateAmenityQuery(2, models.AmenityUpdate{})
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}
