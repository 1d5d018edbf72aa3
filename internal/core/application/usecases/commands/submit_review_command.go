package commands

import (
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrSubmitReviewCommandIsNotConstructed = errors.New(
		"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
	)
	ErrReviewTokenIsRequired = errors.New("review token is required")
)

// SubmitReviewCommand represents a customer's review submission. The
// customer never identifies the shipment directly; the signed token from
// the delivery confirmation email carries the shipment identity.
//
// Example:
//
//	cmd, err := NewSubmitReviewCommand(token, 5, nil)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewSubmitReviewCommandHandler(uowFactory, codec, 7*24*time.Hour)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit review: %w", err)
//	}
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	token   string
	rating  int
	comment *string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command to submit a shipment review.
// Requires a non-empty token and a rating within the allowed range; the
// comment is optional.
func NewSubmitReviewCommand(token string, rating int, comment *string) (SubmitReviewCommand, error) {
	reviewCommand := SubmitReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setToken(token),
		reviewCommand.setRating(rating),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	reviewCommand.comment = comment
	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitReviewCommandIsNotConstructed if validation fails.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// Token returns the signed review token from the confirmation email.
func (c SubmitReviewCommand) Token() string {
	return c.token
}

// Rating returns the submitted rating.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional free-form comment, or nil.
func (c SubmitReviewCommand) Comment() *string {
	return c.comment
}

func (c *SubmitReviewCommand) setToken(token string) error {
	if token == "" {
		return ErrReviewTokenIsRequired
	}

	c.token = token
	return nil
}

func (c *SubmitReviewCommand) setRating(rating int) error {
	if rating < shipment.ReviewRatingMin || rating > shipment.ReviewRatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, shipment.ReviewRatingMin, shipment.ReviewRatingMax)
	}

	c.rating = rating
	return nil
}
