package crypto

import "github.com/ipfs/go-cid"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// ContentAddresser computes storage-independent identifiers of documents.
//
// The identifier of a document is the CIDv1 of a single UnixFS file node
// (no links) holding the document bytes, encoded as dag-pb and hashed with
// SHA-256. It depends on the bytes alone, so any client that reads the same
// document arrives at the same identifier.
type ContentAddresser interface {
	// Identify returns the content identifier of data. Empty input is legal
	// and yields the identifier of an empty file node.
	Identify(data []byte) (cid.Cid, error)

	// Canonicalize parses an identifier in any supported text form (CIDv0
	// "Qm…" or CIDv1) and returns its canonical CIDv1 string. Two encodings
	// of the same digest canonicalize to the same string.
	// Returns [ErrInvalidContentIdentifier] for malformed input.
	Canonicalize(s string) (string, error)
}

// KeyDeriver turns a signature over a key message into a symmetric key.
type KeyDeriver interface {
	// DeriveKey returns the first [KeySize] bytes of signature.
	// Returns [ErrInvalidSignature] if the signature is too short.
	DeriveKey(signature []byte) (Key, error)
}

// DocumentCipher encrypts documents under derived keys.
//
// The construction is NaCl secretbox with an all-zero nonce. Ciphertexts are
// laid out as tag || ciphertext with the nonce omitted. A key must never
// encrypt two different plaintexts; callers guarantee that by binding the
// key message to the document's content identifier.
type DocumentCipher interface {
	// Encrypt seals plaintext under key.
	Encrypt(plaintext []byte, key Key) []byte

	// Decrypt opens ciphertext under key. Any authentication failure returns
	// [ErrDecryptionFailed] and no plaintext.
	Decrypt(ciphertext []byte, key Key) ([]byte, error)
}
