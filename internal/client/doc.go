// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the journal server.
//
// It builds a cobra command tree over [adapter.ServerAdapter]: one
// subcommand per journal operation plus export and version reporting.
package client
