// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the journal server. It
// is populated by merging values from environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the encryption secret, the cipher and the version string.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the encrypted record directory and the
	// default export destination.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Secret is the raw encryption key. Its bytes are used verbatim and must
	// be exactly 32 bytes long; it is never stretched or padded.
	// Env: APP_SECRET
	Secret string `env:"SECRET"`

	// Cipher selects the AEAD construction: "aes-256-gcm" (default) or
	// "chacha20-poly1305". Records sealed with one cipher cannot be opened
	// with the other.
	// Env: APP_CIPHER
	Cipher string `env:"CIPHER"`

	// Version is the version string exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds filesystem locations used by the storage engine.
type Storage struct {
	// Dir is the directory holding one encrypted envelope file per record.
	// It is the only persistence root and the only index.
	// Env: STORAGE_DIR
	Dir string `env:"DIR"`

	// ExportPath is the file written by the export endpoint.
	// Env: STORAGE_EXPORT_PATH
	ExportPath string `env:"EXPORT_PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:7000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Default values applied before any other source.
const (
	DefaultCipher         = "aes-256-gcm"
	DefaultExportPath     = "journal.md"
	DefaultVersion        = "dev"
	DefaultRequestTimeout = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Cipher:  DefaultCipher,
			Version: DefaultVersion,
		},
		Storage: Storage{
			ExportPath: DefaultExportPath,
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// Redacted returns a copy of the config that is safe to log: the secret is
// replaced with a fixed mask.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	if cfg.App.Secret != "" {
		cfg.App.Secret = "******"
	}
	return cfg
}

// GetStructuredConfig loads, merges and validates the server configuration
// from all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
