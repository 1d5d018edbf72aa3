package commands

import (
	"context"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// SubmitReviewCommandHandler records a customer review against a delivered
// shipment. The shipment identity comes exclusively from the signed token;
// a bad signature or an expired token surfaces as ports.ErrInvalidToken.
//
// Example:
//
//	handler := NewSubmitReviewCommandHandler(uowFactory, codec, 7*24*time.Hour)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ports.ErrInvalidToken) {
//	    // tampered or expired review link
//	}
type SubmitReviewCommandHandler struct {
	uowFactory ShipmentUoWFactory
	tokens     ports.TokenCodec
	maxAge     time.Duration
}

// NewSubmitReviewCommandHandler creates a handler for review submissions.
// maxAge bounds how long after delivery a review link stays usable.
func NewSubmitReviewCommandHandler(
	uowFactory ShipmentUoWFactory,
	tokens ports.TokenCodec,
	maxAge time.Duration,
) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
		maxAge:     maxAge,
	}
}

// Handle processes the review submission.
// Decodes and verifies the token, resolves the shipment it names, and
// persists the review. The token itself is not consumed; expiry is the only
// replay bound.
func (h SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	claims, err := h.tokens.Decode(cmd.Token(), "", h.maxAge)
	if err != nil {
		return err
	}

	shipmentID, err := kernel.UUIDFromString(claims["id"])
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	reviewed, err := shipmentRepo.Get(ctx, shipmentID)
	if err != nil {
		return err
	}

	review, err := shipment.NewReview(
		kernel.NewUUID(),
		reviewed.ID(),
		cmd.Rating(),
		cmd.Comment(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = shipmentRepo.AddReview(ctx, review); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
