package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/internal/router"
	"github.com/MKhiriev/gatherly/models"
)

func (h *Handler) searchVenues(r *http.Request, _ router.Params) (result, error) {
	filter, err := venueFilterFromQuery(r.URL.Query())
	if err != nil {
		return result{}, err
	}

	page, err := h.services.VenueService.SearchVenues(r.Context(), filter)
	if err != nil {
		return result{}, err
	}

	return ok(defaultSuccessMessage, page), nil
}

func (h *Handler) getVenue(r *http.Request, params router.Params) (result, error) {
	venueID, err := idParam(params)
	if err != nil {
		return result{}, err
	}

	venue, err := h.services.VenueService.GetVenue(r.Context(), venueID)
	if err != nil {
		return result{}, err
	}

	return ok(defaultSuccessMessage, map[string]any{"venue": venue}), nil
}

func (h *Handler) myVenues(r *http.Request, _ router.Params) (result, error) {
	principal, err := principalFrom(r)
	if err != nil {
		return result{}, err
	}

	venues, err := h.services.VenueService.ListManagerVenues(r.Context(), principal)
	if err != nil {
		return result{}, err
	}

	return ok(defaultSuccessMessage, map[string]any{"venues": venues}), nil
}

func (h *Handler) createVenue(r *http.Request, _ router.Params) (result, error) {
	principal, err := principalFrom(r)
	if err != nil {
		return result{}, err
	}

	var input models.VenueInput
	if err = decodeJSON(r, &input); err != nil {
		return result{}, err
	}

	venue, err := h.services.VenueService.CreateVenue(r.Context(), principal, input)
	if err != nil {
		return result{}, err
	}

	logger.FromRequest(r).Info().
		Int64("venue_id", venue.VenueID).
		Int64("user_id", principal.UserID).
		Msg("venue created")
	return created("Venue created successfully", map[string]any{"venue": venue}), nil
}

func (h *Handler) updateVenue(r *http.Request, params router.Params) (result, error) {
	principal, err := principalFrom(r)
	if err != nil {
		return result{}, err
	}

	venueID, err := idParam(params)
	if err != nil {
		return result{}, err
	}

	var update models.VenueUpdate
	if err = decodeJSON(r, &update); err != nil {
		return result{}, err
	}

	venue, err := h.services.VenueService.UpdateVenue(r.Context(), principal, venueID, update)
	if err != nil {
		return result{}, err
	}

	return ok("Venue updated successfully", map[string]any{"venue": venue}), nil
}

func (h *Handler) deleteVenue(r *http.Request, params router.Params) (result, error) {
	principal, err := principalFrom(r)
	if err != nil {
		return result{}, err
	}

	venueID, err := idParam(params)
	if err != nil {
		return result{}, err
	}

	if err = h.services.VenueService.DeleteVenue(r.Context(), principal, venueID); err != nil {
		return result{}, err
	}

	logger.FromRequest(r).Info().
		Int64("venue_id", venueID).
		Int64("user_id", principal.UserID).
		Msg("venue deleted")
	return ok("Venue deleted successfully", nil), nil
}

// venueFilterFromQuery reads the search filters of GET /api/venues. Absent
// parameters stay zero; malformed numbers fail with ErrInvalidQuery.
func venueFilterFromQuery(query url.Values) (models.VenueFilter, error) {
	filter := models.VenueFilter{
		VenueType: models.VenueType(query.Get("venue_type")),
		City:      query.Get("city"),
		Search:    query.Get("search"),
		SortBy:    query.Get("sort_by"),
		SortDir:   query.Get("sort_dir"),
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"min_capacity", &filter.MinCapacity},
		{"max_capacity", &filter.MaxCapacity},
		{"page", &filter.Page},
		{"limit", &filter.Limit},
	}
	for _, p := range ints {
		raw := query.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return models.VenueFilter{}, fmt.Errorf("%w: %s", ErrInvalidQuery, p.name)
		}
		*p.dst = v
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"min_price", &filter.MinPrice},
		{"max_price", &filter.MaxPrice},
	}
	for _, p := range floats {
		raw := query.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.VenueFilter{}, fmt.Errorf("%w: %s", ErrInvalidQuery, p.name)
		}
		*p.dst = v
	}

	return filter, nil
}
