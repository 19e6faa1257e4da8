// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Journal is a single journal entry.
//
// ID is assigned by the service on creation and is used as the storage key:
// the encrypted envelope of the record lives in a file named after it.
// Title and Body are optional; Tags keeps the order supplied by the caller
// and may contain duplicates.
type Journal struct {
	// ID is the UUID (v4, textual form) of the record. Never empty.
	ID string `json:"id"`

	// Title is the optional heading of the entry.
	Title *string `json:"title"`

	// Body is the optional free-text content of the entry.
	Body *string `json:"body"`

	// Tags are free-form labels. Order is preserved, duplicates are allowed.
	Tags []string `json:"tags"`
}

// HasTag reports whether the record carries tag. Comparison is exact and
// case-sensitive.
func (j Journal) HasTag(tag string) bool {
	for _, t := range j.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// JournalRequest carries the client-controlled part of a record for create
// and update operations.
type JournalRequest struct {
	Title *string  `json:"title"`
	Body  *string  `json:"body"`
	Tags  []string `json:"tags"`
}

// ListFilter narrows a listing. A nil Tag means "no filter".
type ListFilter struct {
	Tag *string
}
