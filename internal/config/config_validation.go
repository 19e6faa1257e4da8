// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The secret is compared by byte length, not rune count: a 32-character
// string with multi-byte runes is rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Dir == "" {
		return fmt.Errorf("%w: storage directory is required", ErrInvalidStorageConfigs)
	}

	if len([]byte(cfg.App.Secret)) != crypto.KeySize {
		return fmt.Errorf("%w: %w", ErrInvalidSecretLength, crypto.ErrInvalidKeyLength)
	}

	switch crypto.Algorithm(cfg.App.Cipher) {
	case crypto.AlgorithmAESGCM, crypto.AlgorithmChaCha20Poly1305:
	default:
		return fmt.Errorf("%w: %q: %w", ErrInvalidAppConfigs, cfg.App.Cipher, crypto.ErrUnsupportedAlgorithm)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
