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

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// fileEnvelopeStore is the filesystem implementation of [EnvelopeStore].
// Every record lives in <dir>/<id>.json. No state is kept in memory: each
// call goes to the filesystem, so files changed by other processes are
// always observed.
type fileEnvelopeStore struct {
	dir    string
	logger *logger.Logger
}

// NewFileEnvelopeStore constructs an [EnvelopeStore] rooted at dir.
// The directory is not created; see [PrepareDirectory].
func NewFileEnvelopeStore(dir string, logger *logger.Logger) EnvelopeStore {
	return &fileEnvelopeStore{
		dir:    dir,
		logger: logger,
	}
}

// Write implements [EnvelopeStore].
//
// The envelope is written to a temporary file in the same directory and then
// renamed over <id>.json, so readers never observe a partially written
// envelope. The temporary name ends in ".tmp" and is therefore ignored by
// directory scans. Concurrent writers to the same id race; the last rename
// wins.
func (s *fileEnvelopeStore) Write(ctx context.Context, id string, envelope models.Envelope) error {
	log := logger.FromContextOr(ctx, s.logger)

	path, err := envelopePath(s.dir, id)
	if err != nil {
		return err
	}

	data, err := encodeEnvelope(envelope)
	if err != nil {
		return err
	}

	if err = WriteFileAtomic(path, data); err != nil {
		log.Err(err).
			Str("func", "fileEnvelopeStore.Write").
			Str("id", id).
			Msg("failed to write envelope file")
		return err
	}

	log.Debug().Str("func", "fileEnvelopeStore.Write").Str("id", id).Msg("envelope written")
	return nil
}

// Read implements [EnvelopeStore].
func (s *fileEnvelopeStore) Read(ctx context.Context, id string) (models.Envelope, error) {
	log := logger.FromContextOr(ctx, s.logger)

	path, err := envelopePath(s.dir, id)
	if err != nil {
		return models.Envelope{}, err
	}

	envelope, err := readEnvelopeFile(path)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).
				Str("func", "fileEnvelopeStore.Read").
				Str("id", id).
				Msg("failed to read envelope file")
		}
		return models.Envelope{}, err
	}

	return envelope, nil
}

// Delete implements [EnvelopeStore].
func (s *fileEnvelopeStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOr(ctx, s.logger)

	path, err := envelopePath(s.dir, id)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil {
		err = classifyFileError(path, err)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).
				Str("func", "fileEnvelopeStore.Delete").
				Str("id", id).
				Msg("failed to remove envelope file")
		}
		return err
	}

	log.Debug().Str("func", "fileEnvelopeStore.Delete").Str("id", id).Msg("envelope removed")
	return nil
}

// WriteFileAtomic writes data to a temporary sibling of path and renames it
// into place with mode 0600. The temporary file is removed on any failure.
// Errors wrap [ErrPermissionDenied] or [ErrIO].
func WriteFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return classifyWriteError(err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return classifyWriteError(err)
	}
	if err = tmp.Sync(); err != nil {
		return classifyWriteError(err)
	}
	if err = tmp.Close(); err != nil {
		return classifyWriteError(err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return classifyWriteError(err)
	}

	return nil
}

func classifyWriteError(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %v", ErrIO, err)
}
