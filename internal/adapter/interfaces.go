// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the journal HTTP API.
//
// [ServerAdapter] hides the REST routes from the command-line client. Error
// values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-journal-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the journal server.
type ServerAdapter interface {
	// Create sends a new entry and returns the id assigned by the server.
	Create(ctx context.Context, req models.JournalRequest) (string, error)

	// Get fetches a single decrypted entry.
	Get(ctx context.Context, id string) (models.Journal, error)

	// List fetches every entry. A non-nil filter.Tag narrows the result to
	// entries carrying exactly that tag.
	List(ctx context.Context, filter models.ListFilter) ([]models.Journal, error)

	// Update replaces the content of an existing entry and returns it.
	Update(ctx context.Context, id string, req models.JournalRequest) (models.Journal, error)

	// Delete removes an entry.
	Delete(ctx context.Context, id string) error

	// Export asks the server to write its export file and returns the
	// written document.
	Export(ctx context.Context, format models.ExportFormat) ([]byte, error)

	// Render returns the rendered journal without the server touching disk.
	Render(ctx context.Context, format models.ExportFormat) ([]byte, error)

	// GetVersion returns the server build version.
	GetVersion(ctx context.Context) (string, error)
}
