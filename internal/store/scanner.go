// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// directoryScanner is the default implementation of [Scanner]. It does O(n)
// work per call: every envelope in the directory is read and decrypted.
type directoryScanner struct {
	dir   string
	codec crypto.Codec

	logger *logger.Logger
}

// NewScanner constructs a [Scanner] over dir that opens envelopes with codec.
func NewScanner(dir string, codec crypto.Codec, logger *logger.Logger) Scanner {
	return &directoryScanner{
		dir:    dir,
		codec:  codec,
		logger: logger,
	}
}

// Scan implements [Scanner].
//
// The storage root is validated first ([ErrNotADirectory],
// [ErrPermissionDenied]). Regular files with the [EnvelopeExt] extension are
// then processed in os.ReadDir order, which callers must not rely on.
// Symlinks, subdirectories and temporary files are ignored.
//
// Scans are not isolated from concurrent writers: a file that disappears
// between listing and reading is skipped, any other failure aborts the scan
// and no partial result is returned.
func (s *directoryScanner) Scan(ctx context.Context) ([]models.Journal, error) {
	log := logger.FromContextOr(ctx, s.logger)

	if err := validateDirectory(s.dir); err != nil {
		log.Err(err).Str("func", "directoryScanner.Scan").Str("dir", s.dir).Msg("invalid storage directory")
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			err = fmt.Errorf("%w: %s", ErrPermissionDenied, s.dir)
		} else {
			err = fmt.Errorf("%w: list storage directory: %v", ErrIO, err)
		}
		log.Err(err).Str("func", "directoryScanner.Scan").Str("dir", s.dir).Msg("failed to list storage directory")
		return nil, err
	}

	records := make([]models.Journal, 0, len(entries))
	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		if !entry.Type().IsRegular() || filepath.Ext(entry.Name()) != EnvelopeExt {
			continue
		}

		record, err := s.openFile(filepath.Join(s.dir, entry.Name()))
		if errors.Is(err, ErrNotFound) {
			log.Debug().Str("func", "directoryScanner.Scan").Str("file", entry.Name()).Msg("envelope vanished during scan")
			continue
		}
		if err != nil {
			log.Err(err).Str("func", "directoryScanner.Scan").Str("file", entry.Name()).Msg("failed to open envelope")
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

func (s *directoryScanner) openFile(path string) (models.Journal, error) {
	envelope, err := readEnvelopeFile(path)
	if err != nil {
		return models.Journal{}, err
	}

	text, err := s.codec.Open(envelope.Content, envelope.Nonce)
	if err != nil {
		return models.Journal{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	name := filepath.Base(path)
	record, err := DecodeJournal(text)
	if err == nil {
		err = CheckRecordID(record, strings.TrimSuffix(name, EnvelopeExt))
	}
	if err != nil {
		return models.Journal{}, fmt.Errorf("%s: %w", name, err)
	}

	return record, nil
}

// FilterByTag returns the records whose tags contain an exact,
// case-sensitive match of tag, preserving input order. The result is never
// nil.
func FilterByTag(records []models.Journal, tag string) []models.Journal {
	result := make([]models.Journal, 0, len(records))
	for _, record := range records {
		if record.HasTag(tag) {
			result = append(result, record)
		}
	}
	return result
}
