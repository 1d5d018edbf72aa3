package ports

import (
	"errors"
	"time"
)

// ErrInvalidToken is returned by TokenCodec.Decode for tokens with a bad
// signature, a malformed payload, or an exceeded max age. Decoding never
// panics; every failure surfaces as this error (possibly wrapped).
var ErrInvalidToken = errors.New("token is invalid or expired")

// TokenCodec signs and verifies small string-map payloads carried in URLs,
// such as review-submission tokens. The optional salt partitions token
// audiences: a token encoded with one salt does not decode with another.
type TokenCodec interface {
	// Encode signs the claims (with the given salt, which may be empty)
	// and returns a URL-safe token.
	Encode(claims map[string]string, salt string) (string, error)

	// Decode verifies the token signature and age and returns the claims.
	// A maxAge of zero disables the age check. Returns ErrInvalidToken
	// (possibly wrapped) on any failure.
	Decode(token string, salt string, maxAge time.Duration) (map[string]string, error)
}
