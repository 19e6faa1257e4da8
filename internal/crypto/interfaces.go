package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec seals and opens the canonical text of a journal record.
//
// A Codec is bound to a single 32-byte key for its whole lifetime; the key is
// never passed per call and never stored anywhere else. Both outputs of Seal
// are standard base64 text so they can be embedded in a JSON envelope.
type Codec interface {
	// Seal encrypts and authenticates plaintext under a freshly generated
	// 96-bit nonce. It returns the base64 ciphertext (with the 16-byte tag
	// appended) and the base64 nonce.
	Seal(plaintext string) (ciphertext, nonce string, err error)

	// Open decodes ciphertext and nonce, verifies the authentication tag and
	// returns the plaintext. Any failure is reported as an [ErrCrypto];
	// wrong keys, corrupted ciphertext and mismatched nonces are
	// indistinguishable and surface as [ErrAuthenticationFailed].
	Open(ciphertext, nonce string) (string, error)
}
