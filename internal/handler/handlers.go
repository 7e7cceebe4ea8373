package handler

import (
	"github.com/MKhiriev/gatherly/internal/auth"
	"github.com/MKhiriev/gatherly/internal/config"
	"github.com/MKhiriev/gatherly/internal/handler/http"
	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/internal/metrics"
	"github.com/MKhiriev/gatherly/internal/service"
)

// Dependencies are the collaborators shared by the transport handlers.
type Dependencies struct {
	Services *service.Services
	Guard    *auth.Guard
	Metrics  *metrics.Recorder
}

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(deps Dependencies, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(deps.Services, deps.Guard, deps.Metrics, cfg, logger),
	}, nil
}
