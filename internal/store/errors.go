// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the envelope store and the directory scanner.
// Callers should use [errors.Is] to match against these values; the returned
// errors wrap them with the path or id involved.
var (
	// ErrNotFound is returned when no envelope file exists for the
	// requested record id.
	ErrNotFound = errors.New("journal record not found")

	// ErrInvalidID is returned when a record id is not a UUID. Ids are
	// validated before any file path is built from them.
	ErrInvalidID = errors.New("invalid journal record id")

	// ErrNotADirectory is returned when the storage root does not exist or
	// is not a directory.
	ErrNotADirectory = errors.New("storage path is not a directory")

	// ErrPermissionDenied is returned when the OS refuses access to the
	// storage root or to an envelope file.
	ErrPermissionDenied = errors.New("storage permission denied")

	// ErrDecode is returned when an envelope file or the decrypted
	// canonical text is not well-formed.
	ErrDecode = errors.New("malformed journal data")

	// ErrIO is returned for filesystem failures not covered above.
	ErrIO = errors.New("storage i/o error")
)
