// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the encrypted-at-rest form of one [Journal].
//
// Both fields hold standard base64 text: Content is the AEAD ciphertext with
// the authentication tag appended, Nonce is the 12-byte nonce used to seal it.
// The JSON field names are the on-disk file format and must not change.
type Envelope struct {
	Content string `json:"content"`
	Nonce   string `json:"nonce"`
}
