package service

import (
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/store"
	"github.com/MKhiriev/go-journal-keeper/internal/utils"
)

type Services struct {
	JournalService JournalService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, codec crypto.Codec, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	journalService := NewJournalService(storages, codec, utils.NewUUIDGenerator(), logger)

	return &Services{
		JournalService: NewJournalValidationService().Wrap(journalService),
		AppInfoService: appInfoService,
	}, nil
}
