// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/models"
)

// EncodeJournal returns the canonical text form of j: the JSON object
// {"id", "title", "body", "tags"} that is sealed into an envelope.
// Absent title or body are encoded as null; nil tags as an empty array.
func EncodeJournal(j models.Journal) (string, error) {
	if j.Tags == nil {
		j.Tags = []string{}
	}

	data, err := json.Marshal(j)
	if err != nil {
		return "", fmt.Errorf("%w: encode record: %v", ErrDecode, err)
	}

	return string(data), nil
}

// DecodeJournal parses the canonical text form produced by [EncodeJournal].
// Title and body may be absent or null, tags may be absent. A record without
// an id is rejected with [ErrDecode].
func DecodeJournal(text string) (models.Journal, error) {
	var j models.Journal
	if err := json.Unmarshal([]byte(text), &j); err != nil {
		return models.Journal{}, fmt.Errorf("%w: parse record: %v", ErrDecode, err)
	}

	if j.ID == "" {
		return models.Journal{}, fmt.Errorf("%w: record has no id", ErrDecode)
	}

	if j.Tags == nil {
		j.Tags = []string{}
	}

	return j, nil
}

// CheckRecordID fails with [ErrDecode] unless record was stored under id.
// The AEAD does not bind the id to the file name, so an envelope copied to
// another name opens cleanly and is caught only here.
func CheckRecordID(record models.Journal, id string) error {
	if record.ID != id {
		return fmt.Errorf("%w: record %s is stored as %s%s", ErrDecode, record.ID, id, EnvelopeExt)
	}
	return nil
}
