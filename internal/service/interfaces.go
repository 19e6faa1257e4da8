package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-journal-keeper/models"
)

// JournalService is the record-level API of the journal. Every operation is
// independent and goes to the storage directory; nothing is cached between
// calls.
type JournalService interface {
	// Create assigns a fresh id, seals the record and persists it. Nothing is
	// written when sealing fails.
	Create(ctx context.Context, req models.JournalRequest) (string, error)
	// Get reads, decrypts and decodes a single record.
	Get(ctx context.Context, id string) (models.Journal, error)
	// List returns every record, optionally narrowed to one tag. One bad
	// envelope fails the whole listing.
	List(ctx context.Context, filter models.ListFilter) ([]models.Journal, error)
	// Update replaces the content of an existing record in place. The id
	// never changes and the record is sealed under a fresh nonce.
	Update(ctx context.Context, id string, req models.JournalRequest) (models.Journal, error)
	// Delete removes a record.
	Delete(ctx context.Context, id string) error
	// Export renders every record and atomically writes the result to
	// destination, replacing any existing file.
	Export(ctx context.Context, destination string, format models.ExportFormat) error
	// Render returns the rendered export without touching disk.
	Render(ctx context.Context, format models.ExportFormat) ([]byte, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces record ids.
type IDGenerator interface {
	Generate() string
}
