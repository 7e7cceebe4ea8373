package service

import (
	"context"

	"github.com/MKhiriev/gatherly/internal/config"
	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/internal/utils"
	"github.com/MKhiriev/gatherly/models"
)

const healthyStatus = "healthy"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health reports the liveness of the API together with its version.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:    healthyStatus,
		Timestamp: utils.Timestamp(),
		Version:   s.GetAppVersion(ctx),
	}
}
