// Package token provides the signed-token codec used for review links.
// Tokens are compact HMAC-signed JWTs carrying a small string map; the
// issue timestamp inside the token drives the expiry check at decode time.
package token

import (
	"fmt"
	"time"

	"shipping/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

const payloadClaim = "data"

// JWTCodec implements ports.TokenCodec with HMAC-SHA256 signatures.
// The salt is appended to the signing secret, so tokens minted for one
// audience do not verify for another.
type JWTCodec struct {
	secret []byte
}

// NewJWTCodec creates a codec signing with the given secret.
func NewJWTCodec(secret string) *JWTCodec {
	return &JWTCodec{secret: []byte(secret)}
}

// Encode signs the claims and returns a URL-safe token. The issue time is
// embedded so Decode can enforce a maximum age.
func (c *JWTCodec) Encode(claims map[string]string, salt string) (string, error) {
	payload := make(map[string]any, len(claims))
	for k, v := range claims {
		payload[k] = v
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		payloadClaim: payload,
		"iat":        jwt.NewNumericDate(time.Now().UTC()),
	})

	signed, err := t.SignedString(c.key(salt))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Decode verifies the token signature and age and returns the claims.
// A maxAge of zero disables the age check. Any failure — bad signature,
// wrong salt, malformed payload, exceeded age — surfaces as
// ports.ErrInvalidToken.
func (c *JWTCodec) Decode(token string, salt string, maxAge time.Duration) (map[string]string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.key(salt), nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ports.ErrInvalidToken
	}

	if maxAge > 0 {
		issuedAt, iatErr := mapClaims.GetIssuedAt()
		if iatErr != nil || issuedAt == nil {
			return nil, ports.ErrInvalidToken
		}
		if time.Since(issuedAt.Time) > maxAge {
			return nil, fmt.Errorf("%w: token age exceeded", ports.ErrInvalidToken)
		}
	}

	payload, ok := mapClaims[payloadClaim].(map[string]any)
	if !ok {
		return nil, ports.ErrInvalidToken
	}

	claims := make(map[string]string, len(payload))
	for k, v := range payload {
		value, isString := v.(string)
		if !isString {
			return nil, ports.ErrInvalidToken
		}
		claims[k] = value
	}

	return claims, nil
}

func (c *JWTCodec) key(salt string) []byte {
	if salt == "" {
		return c.secret
	}

	key := make([]byte, 0, len(c.secret)+len(salt))
	key = append(key, c.secret...)
	key = append(key, salt...)
	return key
}
