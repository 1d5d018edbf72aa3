// Package redis provides the Redis-backed verification code store.
// Codes live only for the delivery window; expiry doubles as invalidation,
// so a partner cannot confirm a delivery with a stale code.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultCodeTTL bounds how long a delivery verification code stays valid.
const DefaultCodeTTL = 24 * time.Hour

// CodeStore implements ports.VerificationCodes on top of Redis.
// Keys are namespaced per shipment; a new code for the same shipment
// replaces the previous one.
type CodeStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCodeStore creates a verification code store using the given client.
// A non-positive ttl falls back to DefaultCodeTTL.
func NewCodeStore(client *redis.Client, ttl time.Duration) *CodeStore {
	if ttl <= 0 {
		ttl = DefaultCodeTTL
	}

	return &CodeStore{
		client: client,
		ttl:    ttl,
	}
}

// Put stores the code under the shipment's identity, replacing any previous
// code and resetting the expiry window.
func (s *CodeStore) Put(ctx context.Context, shipmentID kernel.UUID, code string) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	if err := s.client.Set(ctx, codeKey(shipmentID), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	return nil
}

// Get returns the code on record for the shipment. An absent or expired
// code surfaces as an ObjectNotFoundError.
func (s *CodeStore) Get(ctx context.Context, shipmentID kernel.UUID) (string, error) {
	if err := shipmentID.Validate(); err != nil {
		return "", err
	}

	code, err := s.client.Get(ctx, codeKey(shipmentID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", errs.NewObjectNotFoundError("verification_code", shipmentID.String())
	}
	if err != nil {
		return "", fmt.Errorf("failed to read verification code: %w", err)
	}

	return code, nil
}

func codeKey(shipmentID kernel.UUID) string {
	return "shipment:code:" + shipmentID.String()
}
