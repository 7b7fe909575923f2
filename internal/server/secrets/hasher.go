// Package secrets generates opaque bearer secrets and derives the digests
// under which they are persisted. Raw values never leave the caller.
package secrets

import (
	"crypto"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// Hasher produces random URL-safe tokens and their SHA-256 digests.
// When a pepper is configured the digest is HMAC-SHA256 keyed with it,
// so a leaked table cannot be brute-forced offline without the pepper.
type Hasher struct {
	random io.Reader
	pepper []byte
}

// Option customises a Hasher.
type Option func(*Hasher)

// WithRandom replaces crypto/rand as the entropy source.
func WithRandom(r io.Reader) Option {
	return func(h *Hasher) { h.random = r }
}

// WithPepper mixes a server-side secret into every digest.
func WithPepper(pepper string) Option {
	return func(h *Hasher) {
		if pepper != "" {
			h.pepper = []byte(pepper)
		}
	}
}

// NewHasher fails with common.ErrConfiguration when SHA-256 is unavailable.
func NewHasher(opts ...Option) (*Hasher, error) {
	if !crypto.SHA256.Available() {
		return nil, fmt.Errorf("%w: sha-256 is not available", common.ErrConfiguration)
	}
	h := &Hasher{random: rand.Reader}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// GenerateToken reads byteLength random bytes and encodes them as unpadded
// base64url.
func (h *Hasher) GenerateToken(byteLength int) (string, error) {
	if byteLength <= 0 {
		return "", fmt.Errorf("%w: token length must be positive", common.ErrorValidation)
	}
	b := make([]byte, byteLength)
	if _, err := io.ReadFull(h.random, b); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Hash returns the lowercase hex digest of raw.
func (h *Hasher) Hash(raw string) string {
	if h.pepper == nil {
		sum := sha256.Sum256([]byte(raw))
		return hex.EncodeToString(sum[:])
	}
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}
