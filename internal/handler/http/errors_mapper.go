package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/gatherly/internal/auth"
	"github.com/MKhiriev/gatherly/internal/service"
	"github.com/MKhiriev/gatherly/internal/store"
	"github.com/MKhiriev/gatherly/internal/validators"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	validationFailedMessage = "Validation failed"
	internalErrorMessage    = "Internal server error"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first target matched by errors.Is
// decides the response.
var errorResponses = []errorResponse{
	{auth.ErrNoToken, http.StatusUnauthorized, "Authentication token required"},
	{auth.ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
	{auth.ErrPrincipalNotFound, http.StatusUnauthorized, "User not found"},
	{auth.ErrPrincipalDisabled, http.StatusUnauthorized, "Account is inactive"},
	{auth.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},
	{errNoPrincipal, http.StatusUnauthorized, "Authentication token required"},

	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON body"},
	{ErrInvalidID, http.StatusBadRequest, "Invalid ID"},
	{ErrInvalidQuery, http.StatusBadRequest, "Invalid query parameter"},

	{validators.ErrNoFieldsToUpdate, http.StatusUnprocessableEntity, "No fields to update"},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{service.ErrAccountInactive, http.StatusForbidden, "Account is inactive"},
	{service.ErrWrongPassword, http.StatusUnauthorized, "Current password is incorrect"},
	{service.ErrNotVenueOwner, http.StatusForbidden, "You do not have permission to modify this venue"},
	{service.ErrInvalidCategory, http.StatusUnprocessableEntity, "Invalid category"},

	{store.ErrEmailAlreadyExists, http.StatusConflict, "Email already registered"},
	{store.ErrAmenityAlreadyExists, http.StatusConflict, "Amenity already exists"},
	{store.ErrVenueNotFound, http.StatusNotFound, "Venue not found"},
	{store.ErrAmenityNotFound, http.StatusNotFound, "Amenity not found"},
	{store.ErrNoUserWasFound, http.StatusNotFound, "User not found"},
	{store.ErrInvalidReference, http.StatusUnprocessableEntity, "Referenced record does not exist"},
}

// describeError returns the status, client message and optional per-field
// details for err. Unknown errors are reported as 500 without details.
func describeError(err error) (int, string, map[string]string) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return http.StatusUnprocessableEntity, validationFailedMessage, fieldMessages(fieldErrs)
	}

	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.message, nil
		}
	}

	return http.StatusInternalServerError, internalErrorMessage, nil
}

func statusFromError(err error) int {
	status, _, _ := describeError(err)
	return status
}

func fieldMessages(errs validation.Errors) map[string]string {
	messages := make(map[string]string, len(errs))
	for field, err := range errs {
		if err != nil {
			messages[field] = err.Error()
		}
	}
	return messages
}
