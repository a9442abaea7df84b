package ratelimit

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"passport/internal/errors"
)

// CookieSigner mints and verifies the opaque browser ids used by cookie-keyed
// rate rules. The id is random; the HMAC signature stops clients from minting
// fresh ids to escape their counter.
type CookieSigner struct {
	secret []byte
}

// NewCookieSigner creates a signer from the configured limiter secret.
func NewCookieSigner(secret string) (*CookieSigner, error) {
	if secret == "" {
		return nil, errors.New("rate limit cookie secret must be provided")
	}

	return &CookieSigner{secret: []byte(secret)}, nil
}

// NewID mints a fresh signed cookie value "id.signature". Assigned during the
// preflight page load so the limited action sees a stable key.
func (s *CookieSigner) NewID() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "generate rate limit cookie id")
	}

	id := hex.EncodeToString(raw)

	return id + "." + s.sign(id), nil
}

// Verify checks a cookie value and returns the embedded id, or an error when
// the value is malformed or the signature does not match.
func (s *CookieSigner) Verify(value string) (string, error) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", errors.New("malformed rate limit cookie")
	}

	if !hmac.Equal([]byte(sig), []byte(s.sign(id))) {
		return "", errors.New("rate limit cookie signature mismatch")
	}

	return id, nil
}

func (s *CookieSigner) sign(id string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id))

	return hex.EncodeToString(mac.Sum(nil))
}
