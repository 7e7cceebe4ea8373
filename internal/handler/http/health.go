package http

import (
	"net/http"

	"github.com/MKhiriev/gatherly/internal/router"
)

func (h *Handler) health(r *http.Request, _ router.Params) (result, error) {
	return ok("API is running", h.services.AppInfoService.Health(r.Context())), nil
}
