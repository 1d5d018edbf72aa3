package commands

import (
	"context"

	"shipping/internal/core/domain/model/partner"
)

// CreatePartnerCommandHandler handles delivery partner registration.
// A fresh partner starts with zero active shipments and becomes eligible
// for assignment as soon as the transaction commits.
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner registration.
func NewCreatePartnerCommandHandler(uowFactory PartnerUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner registration command.
func (h CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newPartner, err := partner.NewPartner(
		cmd.PartnerID(),
		cmd.Name(),
		cmd.Email(),
		cmd.MaxCapacity(),
		cmd.ServiceableZips(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	if err = partnerRepo.Add(ctx, newPartner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
