// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
)

// Storages groups the storage components used by the service layer. Both
// share the same storage directory.
type Storages struct {
	// Envelopes reads, writes and deletes single envelope files.
	Envelopes EnvelopeStore

	// Scanner decrypts every envelope in the directory for listings and
	// exports.
	Scanner Scanner
}

// NewStorages prepares the storage directory configured in cfg.Dir and
// builds the envelope store and scanner on top of it. codec is used by the
// scanner to open envelopes.
//
// Returns an error if the directory cannot be created or is not usable.
func NewStorages(cfg config.Storage, codec crypto.Codec, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("dir", cfg.Dir).Msg("creating new storages...")

	if err := PrepareDirectory(cfg.Dir); err != nil {
		return nil, fmt.Errorf("error preparing storage directory: %w", err)
	}

	return &Storages{
		Envelopes: NewFileEnvelopeStore(cfg.Dir, logger),
		Scanner:   NewScanner(cfg.Dir, codec, logger),
	}, nil
}
