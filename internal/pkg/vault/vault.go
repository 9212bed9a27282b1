// Package vault provides authenticated at-rest encryption for carrier
// account credentials. Values are sealed with AES-256-GCM and stored as a
// colon-delimited token of base64 segments (nonce:tag:ciphertext), which
// allows a structural distinction between sealed tokens and legacy
// plaintext rows left over from before encryption was introduced.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	// keySize is the AES-256 key size in bytes.
	keySize = 32
	// nonceSize is the GCM nonce size in bytes (96 bits).
	nonceSize = 12
	// tagSize is the GCM authentication tag size in bytes (128 bits).
	tagSize = 16
	// tokenSegments is the number of base64 segments in a sealed token.
	tokenSegments = 3
	// tokenSeparator delimits the nonce, tag and ciphertext segments.
	tokenSeparator = ":"
)

var (
	// ErrKeyIsRequired is returned when the vault is constructed without key material.
	ErrKeyIsRequired = errors.New("encryption key is required")
	// ErrKeyIsMalformed is returned when the key material does not decode to exactly 32 bytes.
	ErrKeyIsMalformed = errors.New("encryption key must decode to 32 bytes (hex or base64)")
	// ErrIntegrity is returned when a sealed token fails authentication,
	// meaning it was tampered with, truncated, or sealed under a different key.
	ErrIntegrity = errors.New("ciphertext integrity check failed")
)

// Vault performs authenticated encryption and decryption of credential
// strings. The key is loaded once at construction and treated as immutable
// shared state; Vault methods are safe for concurrent use.
type Vault struct {
	aead cipher.AEAD
}

// New creates a Vault from external key material. The key must be a hex
// string (64 hex characters) or a base64 string decoding to exactly 32
// bytes; the encoding is auto-detected. Construction fails fast on absent
// or malformed keys so misconfiguration is caught at startup.
func New(rawKey string) (*Vault, error) {
	rawKey = strings.TrimSpace(rawKey)
	if rawKey == "" {
		return nil, ErrKeyIsRequired
	}

	key, err := decodeKey(rawKey)
	if err != nil {
		return nil, err
	}

	return newWithKey(key)
}

// NewWithTestKey creates a Vault whose key is derived deterministically from
// a passphrase via SHA-256. It exists so tests can run without external key
// configuration; never use it with production data.
func NewWithTestKey(passphrase string) (*Vault, error) {
	if passphrase == "" {
		return nil, ErrKeyIsRequired
	}

	key := sha256.Sum256([]byte(passphrase))
	return newWithKey(key[:])
}

// Encrypt seals plaintext and returns a token of three colon-delimited
// base64 segments: nonce, authentication tag, ciphertext. A fresh random
// nonce is generated per call, so encrypting the same value twice yields
// different tokens.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// GCM appends the tag to the ciphertext; split it back out so the token
	// keeps the nonce/tag/ciphertext layout used by existing rows.
	sealed := v.aead.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-tagSize]
	tag := sealed[len(sealed)-tagSize:]

	return strings.Join([]string{
		base64.StdEncoding.EncodeToString(nonce),
		base64.StdEncoding.EncodeToString(tag),
		base64.StdEncoding.EncodeToString(ciphertext),
	}, tokenSeparator), nil
}

// Decrypt opens a sealed token and returns the plaintext. Values that do not
// look like sealed tokens are passed through unchanged - this keeps legacy
// rows that were stored before encryption readable during migration.
// A structurally valid token that fails authentication returns ErrIntegrity.
func (v *Vault) Decrypt(value string) (string, error) {
	nonce, tag, ciphertext, ok := splitToken(value)
	if !ok {
		return value, nil
	}

	sealed := append(append([]byte{}, ciphertext...), tag...)
	plaintext, err := v.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrIntegrity
	}

	return string(plaintext), nil
}

// IsSealed reports whether value structurally looks like a sealed token.
func (v *Vault) IsSealed(value string) bool {
	_, _, _, ok := splitToken(value)
	return ok
}

// newWithKey builds the AEAD from validated key bytes.
func newWithKey(key []byte) (*Vault, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	return &Vault{aead: aead}, nil
}

// decodeKey auto-detects the key encoding. A 64-character hex string wins
// over base64 because every hex string is also valid base64.
func decodeKey(rawKey string) ([]byte, error) {
	if len(rawKey) == keySize*2 {
		if key, err := hex.DecodeString(rawKey); err == nil {
			return key, nil
		}
	}

	key, err := base64.StdEncoding.DecodeString(rawKey)
	if err != nil || len(key) != keySize {
		return nil, ErrKeyIsMalformed
	}

	return key, nil
}

// splitToken parses a sealed token into its binary segments. It returns
// ok=false for anything that is not three base64 segments with a plausible
// nonce and tag length, which is how legacy plaintext is recognized.
func splitToken(value string) (nonce, tag, ciphertext []byte, ok bool) {
	parts := strings.Split(value, tokenSeparator)
	if len(parts) != tokenSegments {
		return nil, nil, nil, false
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil || len(nonce) != nonceSize {
		return nil, nil, nil, false
	}

	tag, err = base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(tag) != tagSize {
		return nil, nil, nil, false
	}

	ciphertext, err = base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, nil, nil, false
	}

	return nonce, tag, ciphertext, true
}
