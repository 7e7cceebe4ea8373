// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/gatherly/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validRegister() models.RegisterRequest {
	return models.RegisterRequest{
		Email:    "org@example.com",
		Password: "Str0ng!pass",
		FullName: "Ana Cruz",
		Role:     models.RoleOrganizer,
	}
}

func validVenueInput() models.VenueInput {
	return models.VenueInput{
		VenueName: "Grand Hall",
		VenueType: models.VenueConferenceHall,
		Capacity:  300,
		BasePrice: 15000,
		Address:   "1 Rizal Ave",
		City:      "Manila",
	}
}

// fieldErrors returns the per-field errors of err or fails the test.
func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	return errs
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestRequestValidator_Register(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(r *models.RegisterRequest)
		wantFields []string
	}{
		{name: "valid", mutate: func(r *models.RegisterRequest) {}},
		{name: "valid with phone", mutate: func(r *models.RegisterRequest) { r.Phone = ptr("09171234567") }},
		{name: "venue manager may self-register", mutate: func(r *models.RegisterRequest) { r.Role = models.RoleVenueManager }},
		{name: "admin may not self-register", mutate: func(r *models.RegisterRequest) { r.Role = models.RoleAdmin }, wantFields: []string{"role"}},
		{name: "bad email", mutate: func(r *models.RegisterRequest) { r.Email = "not-an-email" }, wantFields: []string{"email"}},
		{name: "weak password", mutate: func(r *models.RegisterRequest) { r.Password = "password" }, wantFields: []string{"password"}},
		{name: "bad phone", mutate: func(r *models.RegisterRequest) { r.Phone = ptr("12345") }, wantFields: []string{"phone"}},
		{name: "blank name", mutate: func(r *models.RegisterRequest) { r.FullName = "   " }, wantFields: []string{"full_name"}},
		{
			name:       "everything missing",
			mutate:     func(r *models.RegisterRequest) { *r = models.RegisterRequest{} },
			wantFields: []string{"email", "password", "full_name", "role"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)

			err := NewRequestValidator().Validate(context.Background(), &req)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			errs := fieldErrors(t, err)
			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestStrongPassword_ReportsEveryProblem(t *testing.T) {
	err := strongPassword("abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8 characters")
	assert.Contains(t, err.Error(), "uppercase")
	assert.Contains(t, err.Error(), "number")
	assert.Contains(t, err.Error(), "special character")
	assert.NotContains(t, err.Error(), "lowercase")

	assert.NoError(t, strongPassword("Abcdef1#"))
}

func TestRequestValidator_OnlyFields(t *testing.T) {
	req := models.RegisterRequest{Email: "bad", Password: "weak"}

	err := NewRequestValidator().Validate(context.Background(), req, "email")
	errs := fieldErrors(t, err)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "email")

	req.Email = "ok@example.com"
	assert.NoError(t, NewRequestValidator().Validate(context.Background(), req, "email"))
}

func TestRequestValidator_ChangePassword(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.ChangePasswordRequest{
		CurrentPassword: "anything",
		NewPassword:     "N3w!password",
	}))

	errs := fieldErrors(t, v.Validate(context.Background(), models.ChangePasswordRequest{NewPassword: "short"}))
	assert.Contains(t, errs, "current_password")
	assert.Contains(t, errs, "new_password")
}

func TestRequestValidator_ProfileUpdate(t *testing.T) {
	v := NewRequestValidator()

	require.ErrorIs(t, v.Validate(context.Background(), models.ProfileUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(context.Background(), models.ProfileUpdate{Phone: ptr("")}))
	assert.NoError(t, v.Validate(context.Background(), models.ProfileUpdate{Phone: ptr("+639171234567")}))

	errs := fieldErrors(t, v.Validate(context.Background(), models.ProfileUpdate{FullName: ptr(" ")}))
	assert.Contains(t, errs, "full_name")
}

func TestRequestValidator_VenueInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *models.VenueInput)
		wantField string
	}{
		{name: "valid", mutate: func(r *models.VenueInput) {}},
		{name: "with amenities", mutate: func(r *models.VenueInput) { r.AmenityIDs = []int64{1, 2} }},
		{name: "unknown type", mutate: func(r *models.VenueInput) { r.VenueType = "stadium" }, wantField: "venue_type"},
		{name: "negative capacity", mutate: func(r *models.VenueInput) { r.Capacity = -1 }, wantField: "capacity"},
		{name: "zero price", mutate: func(r *models.VenueInput) { r.BasePrice = 0 }, wantField: "base_price"},
		{name: "missing city", mutate: func(r *models.VenueInput) { r.City = "" }, wantField: "city"},
		{name: "bad amenity id", mutate: func(r *models.VenueInput) { r.AmenityIDs = []int64{0} }, wantField: "amenity_ids"},
		{name: "bad manager id", mutate: func(r *models.VenueInput) { r.ManagerID = ptr(int64(-3)) }, wantField: "manager_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validVenueInput()
			tt.mutate(&req)

			err := NewRequestValidator().Validate(context.Background(), req)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			assert.Contains(t, fieldErrors(t, err), tt.wantField)
		})
	}
}

func TestRequestValidator_VenueUpdate(t *testing.T) {
	v := NewRequestValidator()

	require.ErrorIs(t, v.Validate(context.Background(), models.VenueUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(context.Background(), models.VenueUpdate{IsActive: ptr(false)}))
	assert.NoError(t, v.Validate(context.Background(), models.VenueUpdate{AmenityIDs: ptr([]int64{})}))

	errs := fieldErrors(t, v.Validate(context.Background(), models.VenueUpdate{
		Capacity:  ptr(0),
		VenueType: ptr(models.VenueType("arena")),
	}))
	assert.Contains(t, errs, "capacity")
	assert.Contains(t, errs, "venue_type")
}

func TestRequestValidator_VenueFilter(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.VenueFilter{}))
	assert.NoError(t, v.Validate(context.Background(), models.VenueFilter{SortBy: "capacity", SortDir: "DESC", Limit: 50}))

	errs := fieldErrors(t, v.Validate(context.Background(), models.VenueFilter{
		MinCapacity: 100,
		MaxCapacity: 10,
		MinPrice:    -1,
		SortBy:      "password_hash",
		Limit:       1000,
	}))
	assert.Contains(t, errs, "max_capacity")
	assert.Contains(t, errs, "min_price")
	assert.Contains(t, errs, "sort_by")
	assert.Contains(t, errs, "limit")

	errs = fieldErrors(t, v.Validate(context.Background(), models.VenueFilter{MinPrice: 500, MaxPrice: 100}))
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "max_price")
}

func TestRequestValidator_Amenity(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.AmenityInput{
		AmenityName: "Wheelchair ramp",
		Category:    models.AmenityAccessibility,
	}))

	errs := fieldErrors(t, v.Validate(context.Background(), models.AmenityInput{Category: "luxury"}))
	assert.Contains(t, errs, "amenity_name")
	assert.Contains(t, errs, "category")

	require.ErrorIs(t, v.Validate(context.Background(), &models.AmenityUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(context.Background(), &models.AmenityUpdate{Icon: ptr("ramp")}))
}
