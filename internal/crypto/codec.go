// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the symmetric encryption used for journal
// records at rest.
//
// Records are sealed with an AEAD cipher using a 256-bit key and a 96-bit
// random nonce. The default cipher is AES-256-GCM; ChaCha20-Poly1305 is
// available for hosts without AES hardware acceleration. Both produce a
// ciphertext with a 16-byte authentication tag appended, so tampered or
// truncated envelopes are rejected on read instead of being misdecoded.
//
// The key is used as-is. There is no key derivation: callers must supply
// exactly [KeySize] bytes.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the required key length in bytes (256 bits).
const KeySize = 32

// NonceSize is the nonce length in bytes (96 bits) of every supported cipher.
const NonceSize = 12

// Algorithm names an AEAD construction supported by [NewCodec].
type Algorithm string

const (
	// AlgorithmAESGCM is AES-256 in Galois/Counter Mode. It is the default.
	AlgorithmAESGCM Algorithm = "aes-256-gcm"
	// AlgorithmChaCha20Poly1305 is the IETF ChaCha20-Poly1305 construction.
	AlgorithmChaCha20Poly1305 Algorithm = "chacha20-poly1305"
)

// aeadCodec is the default implementation of [Codec].
type aeadCodec struct {
	aead cipher.AEAD
	// rand is the nonce source; crypto/rand.Reader outside of tests.
	rand io.Reader
}

// NewCodec builds a [Codec] bound to key for the given algorithm. An empty
// algorithm selects [AlgorithmAESGCM].
//
// Returns [ErrInvalidKeyLength] if len(key) != [KeySize] and
// [ErrUnsupportedAlgorithm] for unknown algorithms.
func NewCodec(key []byte, algorithm Algorithm) (Codec, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	aead, err := newAEAD(key, algorithm)
	if err != nil {
		return nil, err
	}

	return &aeadCodec{aead: aead, rand: rand.Reader}, nil
}

func newAEAD(key []byte, algorithm Algorithm) (cipher.AEAD, error) {
	switch algorithm {
	case "", AlgorithmAESGCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("%w: create cipher: %v", ErrCrypto, err)
		}
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("%w: create gcm: %v", ErrCrypto, err)
		}
		return gcm, nil
	case AlgorithmChaCha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("%w: create chacha20-poly1305: %v", ErrCrypto, err)
		}
		return aead, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
}

// Seal implements [Codec].
func (c *aeadCodec) Seal(plaintext string) (string, string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", "", fmt.Errorf("%w: generate nonce: %v", ErrCrypto, err)
	}

	ciphertext := c.aead.Seal(nil, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(ciphertext),
		base64.StdEncoding.EncodeToString(nonce),
		nil
}

// Open implements [Codec].
func (c *aeadCodec) Open(ciphertextB64, nonceB64 string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return "", fmt.Errorf("%w: decode ciphertext", ErrMalformedInput)
	}

	nonce, err := base64.StdEncoding.DecodeString(nonceB64)
	if err != nil {
		return "", fmt.Errorf("%w: decode nonce", ErrMalformedInput)
	}
	if len(nonce) != c.aead.NonceSize() {
		return "", fmt.Errorf("%w: nonce must be %d bytes", ErrMalformedInput, c.aead.NonceSize())
	}

	// The underlying error carries no detail worth exposing.
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	if !utf8.Valid(plaintext) {
		return "", ErrInvalidPlaintext
	}

	return string(plaintext), nil
}
