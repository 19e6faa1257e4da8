// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// ErrCrypto is the umbrella error of this package. Every error returned by a
// [Codec] or by [NewCodec] matches it with [errors.Is].
var ErrCrypto = errors.New("crypto error")

var (
	// ErrInvalidKeyLength is returned when the key is not exactly [KeySize]
	// bytes long. The key is never truncated or padded.
	ErrInvalidKeyLength = fmt.Errorf("%w: key must be exactly %d bytes", ErrCrypto, KeySize)

	// ErrUnsupportedAlgorithm is returned by [NewCodec] for an unknown
	// [Algorithm].
	ErrUnsupportedAlgorithm = fmt.Errorf("%w: unsupported algorithm", ErrCrypto)

	// ErrMalformedInput is returned when the ciphertext or nonce text is not
	// valid base64 or the nonce has the wrong length.
	ErrMalformedInput = fmt.Errorf("%w: malformed ciphertext or nonce", ErrCrypto)

	// ErrAuthenticationFailed is returned when the AEAD tag does not verify:
	// wrong key, tampered ciphertext or mismatched nonce.
	ErrAuthenticationFailed = fmt.Errorf("%w: message authentication failed", ErrCrypto)

	// ErrInvalidPlaintext is returned when the decrypted bytes are not
	// valid UTF-8 text.
	ErrInvalidPlaintext = fmt.Errorf("%w: decrypted payload is not valid text", ErrCrypto)
)
