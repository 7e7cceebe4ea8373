package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/gatherly/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// RequestValidator validates the payloads of the auth, venue and amenity
// endpoints.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var err error

	switch req := value.(type) {
	case models.RegisterRequest:
		err = validateRegister(req)
	case *models.RegisterRequest:
		err = validateRegister(*req)
	case models.LoginRequest:
		err = validateLogin(req)
	case *models.LoginRequest:
		err = validateLogin(*req)
	case models.ChangePasswordRequest:
		err = validateChangePassword(req)
	case *models.ChangePasswordRequest:
		err = validateChangePassword(*req)
	case models.ProfileUpdate:
		err = validateProfileUpdate(req)
	case *models.ProfileUpdate:
		err = validateProfileUpdate(*req)
	case models.VenueInput:
		err = validateVenueInput(req)
	case *models.VenueInput:
		err = validateVenueInput(*req)
	case models.VenueUpdate:
		err = validateVenueUpdate(req)
	case *models.VenueUpdate:
		err = validateVenueUpdate(*req)
	case models.VenueFilter:
		err = validateVenueFilter(req)
	case *models.VenueFilter:
		err = validateVenueFilter(*req)
	case models.AmenityInput:
		err = validateAmenityInput(req)
	case *models.AmenityInput:
		err = validateAmenityInput(*req)
	case models.AmenityUpdate:
		err = validateAmenityUpdate(req)
	case *models.AmenityUpdate:
		err = validateAmenityUpdate(*req)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	return onlyFields(err, fields)
}

func validateRegister(r models.RegisterRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Invalid email format"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("Password is required"),
			validation.By(strongPassword),
		),
		validation.Field(&r.FullName,
			validation.Required.Error("Full name is required"),
			validation.By(notBlank),
			validation.Length(1, 255),
		),
		validation.Field(&r.Phone,
			validation.Match(phonePattern).Error("Invalid phone number format"),
		),
		validation.Field(&r.Role,
			validation.Required.Error("Role is required"),
			validation.In(in(models.SelfRegistrableRoles)...).Error("Invalid role. Must be organizer or venue_manager"),
		),
	)
}

func validateLogin(r models.LoginRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("Email is required")),
		validation.Field(&r.Password, validation.Required.Error("Password is required")),
	)
}

func validateChangePassword(r models.ChangePasswordRequest) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required.Error("Current password is required")),
		validation.Field(&r.NewPassword,
			validation.Required.Error("New password is required"),
			validation.By(strongPassword),
		),
	)
}

func validateProfileUpdate(u models.ProfileUpdate) error {
	if u.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	return validation.ValidateStruct(&u,
		validation.Field(&u.FullName, validation.By(notBlank), validation.Length(1, 255)),
		validation.Field(&u.Phone, validation.Match(phonePattern).Error("Invalid phone number format")),
		validation.Field(&u.ProfileImage, validation.Length(0, 500)),
	)
}

func validateVenueInput(r models.VenueInput) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ManagerID, validation.By(positive)),
		validation.Field(&r.VenueName,
			validation.Required.Error("Venue name is required"),
			validation.By(notBlank),
			validation.Length(1, 255),
		),
		validation.Field(&r.VenueType,
			validation.Required.Error("Venue type is required"),
			validation.In(in(models.VenueTypes)...).Error("Invalid venue type"),
		),
		validation.Field(&r.Capacity,
			validation.Required.Error("Capacity is required"),
			validation.By(positive),
		),
		validation.Field(&r.BasePrice,
			validation.Required.Error("Base price is required"),
			validation.By(positive),
		),
		validation.Field(&r.Address,
			validation.Required.Error("Address is required"),
			validation.By(notBlank),
		),
		validation.Field(&r.City,
			validation.Required.Error("City is required"),
			validation.By(notBlank),
			validation.Length(1, 100),
		),
		validation.Field(&r.Country, validation.Length(0, 100)),
		validation.Field(&r.AmenityIDs, validation.By(positiveIDs)),
	)
}

func validateVenueUpdate(u models.VenueUpdate) error {
	if u.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	return validation.ValidateStruct(&u,
		validation.Field(&u.VenueName, validation.By(notBlank), validation.Length(1, 255)),
		validation.Field(&u.VenueType, validation.In(in(models.VenueTypes)...).Error("Invalid venue type")),
		validation.Field(&u.Capacity, validation.By(positive)),
		validation.Field(&u.BasePrice, validation.By(positive)),
		validation.Field(&u.Address, validation.By(notBlank)),
		validation.Field(&u.City, validation.By(notBlank), validation.Length(1, 100)),
		validation.Field(&u.Country, validation.Length(0, 100)),
		validation.Field(&u.AmenityIDs, validation.By(positiveIDs)),
	)
}

func validateVenueFilter(f models.VenueFilter) error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.VenueType, validation.In(in(models.VenueTypes)...).Error("Invalid venue type")),
		validation.Field(&f.MinCapacity, validation.By(notNegative)),
		validation.Field(&f.MaxCapacity, validation.By(notNegative)),
		validation.Field(&f.MinPrice, validation.By(notNegative)),
		validation.Field(&f.MaxPrice, validation.By(notNegative)),
		validation.Field(&f.SortBy, validation.In(in(models.VenueSortColumns)...).Error("Invalid sort column")),
		validation.Field(&f.SortDir, validation.In(in(models.VenueSortDirections)...).Error("Sort direction must be ASC or DESC")),
		validation.Field(&f.Page, validation.By(notNegative)),
		validation.Field(&f.Limit, validation.By(notNegative), validation.Max(models.MaxVenuePageSize)),
	)

	if f.MaxCapacity > 0 && f.MinCapacity > f.MaxCapacity {
		err = addFieldError(err, "max_capacity", errors.New("must not be less than min_capacity"))
	}
	if f.MaxPrice > 0 && f.MinPrice > f.MaxPrice {
		err = addFieldError(err, "max_price", errors.New("must not be less than min_price"))
	}
	return err
}

func validateAmenityInput(r models.AmenityInput) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AmenityName,
			validation.Required.Error("Amenity name is required"),
			validation.By(notBlank),
			validation.Length(1, 100),
		),
		validation.Field(&r.Icon, validation.Length(0, 50)),
		validation.Field(&r.Category,
			validation.Required.Error("Category is required"),
			validation.In(amenityCategories()...).Error("Invalid category"),
		),
	)
}

func validateAmenityUpdate(u models.AmenityUpdate) error {
	if u.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	return validation.ValidateStruct(&u,
		validation.Field(&u.AmenityName, validation.By(notBlank), validation.Length(1, 100)),
		validation.Field(&u.Icon, validation.Length(0, 50)),
		validation.Field(&u.Category, validation.In(amenityCategories()...).Error("Invalid category")),
	)
}

func amenityCategories() []interface{} {
	out := make([]interface{}, len(models.AmenityCategories))
	for i, c := range models.AmenityCategories {
		out[i] = c.Value
	}
	return out
}

// addFieldError merges one more field error into the result of
// validation.ValidateStruct.
func addFieldError(err error, field string, fieldErr error) error {
	errs := validation.Errors{}
	if err != nil && !errors.As(err, &errs) {
		return err
	}
	if errs == nil {
		errs = validation.Errors{}
	}
	errs[field] = fieldErr
	return errs
}
