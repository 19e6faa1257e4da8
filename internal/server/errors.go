// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errNoListenAddress     = errors.New("listen address is empty")
	errNoHTTPHandler       = errors.New("http handler is not configured")
)
