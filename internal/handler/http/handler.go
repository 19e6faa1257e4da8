package http

import (
	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
)

type Handler struct {
	services   *service.Services
	exportPath string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Storage, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		exportPath: cfg.ExportPath,
		logger:     logger,
	}
}
