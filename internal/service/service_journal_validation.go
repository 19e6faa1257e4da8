package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/store"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// JournalServiceWrapper defines middleware composition for JournalService.
// Implementations wrap an existing JournalService to add behavior such as
// logging or validating.
type JournalServiceWrapper interface {
	Wrap(JournalService) JournalService // returns a decorated JournalService applying additional behavior
}

// JournalValidationService rejects malformed input before it reaches the
// wrapped [JournalService]: record ids must be UUIDs, export needs a
// destination and a known format.
type JournalValidationService struct {
	inner JournalService
}

func NewJournalValidationService() JournalServiceWrapper {
	return &JournalValidationService{}
}

func (v *JournalValidationService) Wrap(inner JournalService) JournalService {
	v.inner = inner
	return v
}

func (v *JournalValidationService) Create(ctx context.Context, req models.JournalRequest) (string, error) {
	return v.inner.Create(ctx, req)
}

func (v *JournalValidationService) Get(ctx context.Context, id string) (models.Journal, error) {
	if err := store.ValidateID(id); err != nil {
		return models.Journal{}, err
	}

	return v.inner.Get(ctx, id)
}

func (v *JournalValidationService) List(ctx context.Context, filter models.ListFilter) ([]models.Journal, error) {
	return v.inner.List(ctx, filter)
}

func (v *JournalValidationService) Update(ctx context.Context, id string, req models.JournalRequest) (models.Journal, error) {
	if err := store.ValidateID(id); err != nil {
		return models.Journal{}, err
	}

	return v.inner.Update(ctx, id, req)
}

func (v *JournalValidationService) Delete(ctx context.Context, id string) error {
	if err := store.ValidateID(id); err != nil {
		return err
	}

	return v.inner.Delete(ctx, id)
}

func (v *JournalValidationService) Export(ctx context.Context, destination string, format models.ExportFormat) error {
	if destination == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoExportDestination)
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	return v.inner.Export(ctx, destination, format)
}

func (v *JournalValidationService) Render(ctx context.Context, format models.ExportFormat) ([]byte, error) {
	if err := validateFormat(format); err != nil {
		return nil, err
	}

	return v.inner.Render(ctx, format)
}

func validateFormat(format models.ExportFormat) error {
	switch format {
	case models.ExportMarkdown, models.ExportHTML:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExportFormat, format)
	}
}
