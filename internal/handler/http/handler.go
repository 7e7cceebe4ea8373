package http

import (
	"time"

	"github.com/MKhiriev/gatherly/internal/auth"
	"github.com/MKhiriev/gatherly/internal/config"
	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/internal/metrics"
	"github.com/MKhiriev/gatherly/internal/service"
)

type Handler struct {
	services *service.Services
	guard    *auth.Guard
	metrics  *metrics.Recorder

	basePath       string
	requestTimeout time.Duration
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, guard *auth.Guard, recorder *metrics.Recorder, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		guard:          guard,
		metrics:        recorder,
		basePath:       cfg.BasePath,
		requestTimeout: cfg.RequestTimeout,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
	}
}
