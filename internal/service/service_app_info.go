package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/validators"
	"github.com/MKhiriev/go-agreement-keeper/models"
)

type appInfoService struct {
	info models.ServerInfo

	logger *logger.Logger
}

// NewAppInfoService requires a version; the key scheme defaults to
// [models.DefaultKeyScheme].
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	scheme := models.KeyScheme(cfg.KeyScheme)
	if scheme == "" {
		scheme = models.DefaultKeyScheme
	}
	if !scheme.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKeyScheme, scheme)
	}

	return &appInfoService{
		info: models.ServerInfo{
			Version:          cfg.Version,
			ChainID:          cfg.ChainID,
			DefaultKeyScheme: scheme,
			KeySchemes:       []models.KeyScheme{models.KeySchemePersonalSign, models.KeySchemeTypedDataV1},
			MaxPageLimit:     validators.MaxPageLimit,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetServerInfo(context.Context) models.ServerInfo {
	info := s.info
	info.KeySchemes = append([]models.KeyScheme(nil), s.info.KeySchemes...)
	return info
}
