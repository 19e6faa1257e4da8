// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by request parsing before the service layer is
// reached. Callers can match against them with [errors.Is].
var (
	// ErrInvalidRequestBody is returned when the request body is not a valid
	// JSON journal request.
	ErrInvalidRequestBody = errors.New("invalid JSON was passed")
)
