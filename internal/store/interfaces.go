package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-journal-keeper/models"
)

// EnvelopeStore persists encrypted envelopes, one file per record id, in a
// single storage directory.
type EnvelopeStore interface {
	// Write atomically creates or replaces the envelope file for id.
	Write(ctx context.Context, id string, envelope models.Envelope) error

	// Read loads and parses the envelope file for id. Returns [ErrNotFound]
	// if it does not exist and [ErrDecode] if it is not a valid envelope.
	Read(ctx context.Context, id string) (models.Envelope, error)

	// Delete removes the envelope file for id. Returns [ErrNotFound] if it
	// does not exist.
	Delete(ctx context.Context, id string) error
}

// Scanner enumerates and decrypts every envelope in the storage directory.
// The directory itself is the index: there is no manifest.
type Scanner interface {
	// Scan returns every record in the storage directory in enumeration
	// order. The first decode or decrypt failure aborts the whole scan.
	Scan(ctx context.Context) ([]models.Journal, error)
}
