package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveShipmentTagCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tagged := taggableShipment(t, shipment.TagFragile, shipment.TagGift)

	cmd, err := commands.NewRemoveShipmentTagCommand(tagged.ID(), shipment.TagGift)
	require.NoError(t, err)

	shipmentRepo := new(MockTagShipmentRepository)
	uow := new(MockTagUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, tagged.ID()).Return(tagged, nil).Once(),
		shipmentRepo.On("Update", ctx, tagged).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTagUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveShipmentTagCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []shipment.Tag{shipment.TagFragile}, tagged.Tags())
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRemoveShipmentTagCommandHandler_Handle_AbsentTag(t *testing.T) {
	ctx := t.Context()
	tagged := taggableShipment(t, shipment.TagFragile)

	cmd, err := commands.NewRemoveShipmentTagCommand(tagged.ID(), shipment.TagExpress)
	require.NoError(t, err)

	shipmentRepo := new(MockTagShipmentRepository)
	uow := new(MockTagUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, tagged.ID()).Return(tagged, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTagUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveShipmentTagCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveShipmentTagCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemoveShipmentTagCommand(taggableShipment(t).ID(), shipment.TagGift)
	require.NoError(t, err)

	shipmentRepo := new(MockTagShipmentRepository)
	uow := new(MockTagUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, cmd.ShipmentID()).
			Return(nil, errs.NewObjectNotFoundError("shipment", cmd.ShipmentID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTagUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveShipmentTagCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestRemoveShipmentTagCommandHandler_Handle_ValidationError(t *testing.T) {
	handler := commands.NewRemoveShipmentTagCommandHandler(new(MockTagUoWFactory))

	err := handler.Handle(t.Context(), commands.RemoveShipmentTagCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRemoveShipmentTagCommandIsNotConstructed)
}
