package http

import (
	"net/http"

	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/internal/router"
	"github.com/MKhiriev/gatherly/models"
)

func (h *Handler) listAmenities(r *http.Request, _ router.Params) (result, error) {
	category := models.AmenityCategory(r.URL.Query().Get("category"))

	amenities, err := h.services.AmenityService.ListAmenities(r.Context(), category)
	if err != nil {
		return result{}, err
	}

	return ok(defaultSuccessMessage, map[string]any{"amenities": amenities}), nil
}

func (h *Handler) amenityCategories(_ *http.Request, _ router.Params) (result, error) {
	return ok(defaultSuccessMessage, map[string]any{"categories": h.services.AmenityService.Categories()}), nil
}

func (h *Handler) getAmenity(r *http.Request, params router.Params) (result, error) {
	amenityID, err := idParam(params)
	if err != nil {
		return result{}, err
	}

	amenity, err := h.services.AmenityService.GetAmenity(r.Context(), amenityID)
	if err != nil {
		return result{}, err
	}

	return ok(defaultSuccessMessage, map[string]any{"amenity": amenity}), nil
}

func (h *Handler) createAmenity(r *http.Request, _ router.Params) (result, error) {
	var input models.AmenityInput
	if err := decodeJSON(r, &input); err != nil {
		return result{}, err
	}

	amenity, err := h.services.AmenityService.CreateAmenity(r.Context(), input)
	if err != nil {
		return result{}, err
	}

	logger.FromRequest(r).Info().Int64("amenity_id", amenity.AmenityID).Msg("amenity created")
	return created("Amenity created successfully", map[string]any{"amenity": amenity}), nil
}

func (h *Handler) updateAmenity(r *http.Request, params router.Params) (result, error) {
	amenityID, err := idParam(params)
	if err != nil {
		return result{}, err
	}

	var update models.AmenityUpdate
	if err = decodeJSON(r, &update); err != nil {
		return result{}, err
	}

	amenity, err := h.services.AmenityService.UpdateAmenity(r.Context(), amenityID, update)
	if err != nil {
		return result{}, err
	}

	return ok("Amenity updated successfully", map[string]any{"amenity": amenity}), nil
}

func (h *Handler) deleteAmenity(r *http.Request, params router.Params) (result, error) {
	amenityID, err := idParam(params)
	if err != nil {
		return result{}, err
	}

	if err = h.services.AmenityService.DeleteAmenity(r.Context(), amenityID); err != nil {
		return result{}, err
	}

	logger.FromRequest(r).Info().Int64("amenity_id", amenityID).Msg("amenity deleted")
	return ok("Amenity deleted successfully", nil), nil
}
