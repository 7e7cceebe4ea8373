package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/internal/metrics"
	"github.com/MKhiriev/gatherly/internal/router"
	"github.com/MKhiriev/gatherly/internal/service"
	"github.com/MKhiriev/gatherly/models"
)

func (h *Handler) register(r *http.Request, _ router.Params) (result, error) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		return result{}, err
	}

	registered, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		return result{}, err
	}

	logger.FromRequest(r).Info().Int64("user_id", registered.User.UserID).Msg("user registered")
	return created("Registration successful", registered), nil
}

func (h *Handler) login(r *http.Request, _ router.Params) (result, error) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		return result{}, err
	}

	loggedIn, err := h.services.AuthService.Login(r.Context(), req)
	h.metrics.ObserveLogin(loginResult(err))
	if err != nil {
		return result{}, err
	}

	logger.FromRequest(r).Info().Int64("user_id", loggedIn.User.UserID).Msg("user logged in")
	return ok("Login successful", loggedIn), nil
}

func loginResult(err error) string {
	switch {
	case err == nil:
		return metrics.LoginSuccess
	case errors.Is(err, service.ErrInvalidCredentials):
		return metrics.LoginInvalidCredentials
	case errors.Is(err, service.ErrAccountInactive):
		return metrics.LoginInactive
	default:
		return metrics.LoginError
	}
}

func (h *Handler) me(r *http.Request, _ router.Params) (result, error) {
	principal, err := principalFrom(r)
	if err != nil {
		return result{}, err
	}

	user, err := h.services.AuthService.Me(r.Context(), principal)
	if err != nil {
		return result{}, err
	}

	return ok(defaultSuccessMessage, map[string]any{"user": user}), nil
}

func (h *Handler) updateProfile(r *http.Request, _ router.Params) (result, error) {
	principal, err := principalFrom(r)
	if err != nil {
		return result{}, err
	}

	var update models.ProfileUpdate
	if err = decodeJSON(r, &update); err != nil {
		return result{}, err
	}

	user, err := h.services.AuthService.UpdateProfile(r.Context(), principal, update)
	if err != nil {
		return result{}, err
	}

	return ok("Profile updated successfully", map[string]any{"user": user}), nil
}

func (h *Handler) changePassword(r *http.Request, _ router.Params) (result, error) {
	principal, err := principalFrom(r)
	if err != nil {
		return result{}, err
	}

	var req models.ChangePasswordRequest
	if err = decodeJSON(r, &req); err != nil {
		return result{}, err
	}

	if err = h.services.AuthService.ChangePassword(r.Context(), principal, req); err != nil {
		return result{}, err
	}

	logger.FromRequest(r).Info().Int64("user_id", principal.UserID).Msg("password changed")
	return ok("Password changed successfully", nil), nil
}
