// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-journal-keeper/internal/utils"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// EnvelopeExt is the file extension of every envelope file. It is used for
// write, read, delete and directory scans alike.
const EnvelopeExt = ".json"

// ValidateID reports whether id is a UUID in canonical lowercase
// 8-4-4-4-12 form. Braced, URN and upper-case spellings are rejected so that
// one record maps to exactly one file name.
func ValidateID(id string) error {
	if !utils.IsCanonicalUUID(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// envelopePath maps a record id to its file inside dir. The id must be a
// UUID so that it can never escape dir.
func envelopePath(dir, id string) (string, error) {
	if err := ValidateID(id); err != nil {
		return "", err
	}

	return filepath.Join(dir, id+EnvelopeExt), nil
}

func encodeEnvelope(envelope models.Envelope) ([]byte, error) {
	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: encode envelope: %v", ErrDecode, err)
	}
	return data, nil
}

func decodeEnvelope(data []byte) (models.Envelope, error) {
	var envelope models.Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: parse envelope: %v", ErrDecode, err)
	}

	if envelope.Content == "" || envelope.Nonce == "" {
		return models.Envelope{}, fmt.Errorf("%w: envelope is missing content or nonce", ErrDecode)
	}

	return envelope, nil
}

// readEnvelopeFile reads and parses the envelope stored at path.
func readEnvelopeFile(path string) (models.Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Envelope{}, classifyFileError(path, err)
	}

	envelope, err := decodeEnvelope(data)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return envelope, nil
}

// classifyFileError maps an OS error on an envelope file to the package
// sentinels.
func classifyFileError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, filepath.Base(path))
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, path)
	default:
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
}
