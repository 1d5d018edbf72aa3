package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
)

// VerificationCodes is the short-lived store mapping a shipment identity to
// its one-time delivery verification code. A code is put when the shipment
// goes out for delivery and checked (not necessarily deleted) when the
// delivery is confirmed. No persistence guarantee is required beyond the
// delivery window; the only ordering guarantee is key isolation per shipment.
type VerificationCodes interface {
	// Put stores the code under the shipment's identity, replacing any
	// previous code for that shipment.
	Put(ctx context.Context, shipmentID kernel.UUID, code string) error

	// Get returns the code on record for the shipment. Returns an
	// ObjectNotFoundError when no code is on record (absent or expired).
	Get(ctx context.Context, shipmentID kernel.UUID) (string, error)
}
