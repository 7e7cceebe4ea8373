package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/gatherly/internal/auth"
	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/internal/metrics"
	"github.com/MKhiriev/gatherly/internal/router"
	"github.com/MKhiriev/gatherly/internal/utils"
	"github.com/MKhiriev/gatherly/models"
)

const defaultSuccessMessage = "Success"

// result is what an endpoint produced on success.
type result struct {
	status  int
	message string
	data    any
}

func ok(message string, data any) result {
	return result{status: http.StatusOK, message: message, data: data}
}

func created(message string, data any) result {
	return result{status: http.StatusCreated, message: message, data: data}
}

// endpointFunc is the signature of every API handler. It never writes to the
// response itself.
type endpointFunc func(r *http.Request, params router.Params) (result, error)

// handle registers fn on rt behind the endpoint adapter.
func (h *Handler) handle(rt *router.Router, method, pattern string, fn endpointFunc) {
	rt.Handle(method, pattern, h.endpoint(method, pattern, fn))
}

// endpoint adapts fn to a router.Handler. It is the only place that writes
// the response envelope and records request metrics for matched routes.
func (h *Handler) endpoint(method, pattern string, fn endpointFunc) router.Handler {
	return func(w http.ResponseWriter, r *http.Request, params router.Params) {
		start := time.Now()
		log := logger.FromRequest(r)

		res, err := fn(r, params)
		status := h.writeResult(w, r, res, err)

		log.Debug().Str("route", method+" "+pattern).Int("status", status).Msg("endpoint served")
		h.metrics.ObserveRequest(method, pattern, status, time.Since(start))
	}
}

func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, res result, err error) int {
	log := logger.FromRequest(r)

	if err != nil {
		status, message, details := describeError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Msg("request failed")
		} else {
			log.Warn().Err(err).Int("status", status).Msg("request rejected")
		}

		var errs any
		if details != nil {
			errs = details
		}
		if _, writeErr := utils.WriteJSON(w, utils.Failure(message, errs), status); writeErr != nil {
			log.Err(writeErr).Msg("error writing error response")
		}
		return status
	}

	if res.status == 0 {
		res.status = http.StatusOK
	}
	if res.message == "" {
		res.message = defaultSuccessMessage
	}
	if _, writeErr := utils.WriteJSON(w, utils.Success(res.message, res.data), res.status); writeErr != nil {
		log.Err(writeErr).Msg("error writing response")
		return http.StatusInternalServerError
	}
	return res.status
}

// notFound answers requests no route matched.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	logger.FromRequest(r).Debug().Str("path", r.URL.Path).Msg("no route matched")
	if _, err := utils.WriteJSON(w, utils.Failure("Endpoint not found", nil), http.StatusNotFound); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing not found response")
	}

	h.metrics.ObserveRequest(r.Method, metrics.UnmatchedRoute, http.StatusNotFound, time.Since(start))
}

// authenticated requires a valid bearer token before calling fn. The
// principal is stored in the request context handed to fn.
func (h *Handler) authenticated(fn endpointFunc) endpointFunc {
	return func(r *http.Request, params router.Params) (result, error) {
		principal, err := h.guard.Authenticate(r)
		h.metrics.ObserveAuth(authOutcome(err))
		if err != nil {
			return result{}, err
		}

		return fn(r.WithContext(auth.WithPrincipal(r.Context(), principal)), params)
	}
}

// authorized is like authenticated but also requires one of roles.
func (h *Handler) authorized(fn endpointFunc, roles ...models.Role) endpointFunc {
	return func(r *http.Request, params router.Params) (result, error) {
		principal, err := h.guard.Authorize(r, roles...)
		h.metrics.ObserveAuth(authOutcome(err))
		if err != nil {
			return result{}, err
		}

		return fn(r.WithContext(auth.WithPrincipal(r.Context(), principal)), params)
	}
}

func authOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.AuthAuthenticated
	case errors.Is(err, auth.ErrNoToken):
		return metrics.AuthNoToken
	case errors.Is(err, auth.ErrInvalidToken):
		return metrics.AuthInvalidToken
	case errors.Is(err, auth.ErrPrincipalNotFound):
		return metrics.AuthPrincipalNotFound
	case errors.Is(err, auth.ErrPrincipalDisabled):
		return metrics.AuthPrincipalDisabled
	case errors.Is(err, auth.ErrForbidden):
		return metrics.AuthForbidden
	default:
		return metrics.AuthError
	}
}

// principalFrom returns the principal stored by authenticated or authorized.
func principalFrom(r *http.Request) (models.Principal, error) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return models.Principal{}, errNoPrincipal
	}
	return principal, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}

// idParam parses the :id path parameter.
func idParam(params router.Params) (int64, error) {
	raw := params.Get("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
