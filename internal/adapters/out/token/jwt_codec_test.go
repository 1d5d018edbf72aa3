package token_test

import (
	"testing"
	"time"

	"shipping/internal/adapters/out/token"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/require"
)

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec := token.NewJWTCodec("test-secret")

	signed, err := codec.Encode(map[string]string{"id": "abc-123"}, "")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := codec.Decode(signed, "", time.Hour)
	require.NoError(t, err)
	require.Equal(t, "abc-123", claims["id"])
}

func TestJWTCodec_RoundTripWithSalt(t *testing.T) {
	codec := token.NewJWTCodec("test-secret")

	signed, err := codec.Encode(map[string]string{"id": "abc-123"}, "review")
	require.NoError(t, err)

	claims, err := codec.Decode(signed, "review", time.Hour)
	require.NoError(t, err)
	require.Equal(t, "abc-123", claims["id"])
}

func TestJWTCodec_WrongSalt(t *testing.T) {
	codec := token.NewJWTCodec("test-secret")

	signed, err := codec.Encode(map[string]string{"id": "abc-123"}, "review")
	require.NoError(t, err)

	_, err = codec.Decode(signed, "other", time.Hour)
	require.ErrorIs(t, err, ports.ErrInvalidToken)
}

func TestJWTCodec_WrongSecret(t *testing.T) {
	signed, err := token.NewJWTCodec("secret-one").Encode(map[string]string{"id": "abc"}, "")
	require.NoError(t, err)

	_, err = token.NewJWTCodec("secret-two").Decode(signed, "", time.Hour)
	require.ErrorIs(t, err, ports.ErrInvalidToken)
}

func TestJWTCodec_TamperedToken(t *testing.T) {
	codec := token.NewJWTCodec("test-secret")

	signed, err := codec.Encode(map[string]string{"id": "abc-123"}, "")
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = codec.Decode(tampered, "", time.Hour)
	require.ErrorIs(t, err, ports.ErrInvalidToken)
}

func TestJWTCodec_ExpiredToken(t *testing.T) {
	codec := token.NewJWTCodec("test-secret")

	signed, err := codec.Encode(map[string]string{"id": "abc-123"}, "")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, err = codec.Decode(signed, "", time.Second)
	require.ErrorIs(t, err, ports.ErrInvalidToken)
}

func TestJWTCodec_ZeroMaxAgeDisablesExpiry(t *testing.T) {
	codec := token.NewJWTCodec("test-secret")

	signed, err := codec.Encode(map[string]string{"id": "abc-123"}, "")
	require.NoError(t, err)

	claims, err := codec.Decode(signed, "", 0)
	require.NoError(t, err)
	require.Equal(t, "abc-123", claims["id"])
}

func TestJWTCodec_GarbageToken(t *testing.T) {
	codec := token.NewJWTCodec("test-secret")

	_, err := codec.Decode("not-a-token", "", time.Hour)
	require.ErrorIs(t, err, ports.ErrInvalidToken)
}
