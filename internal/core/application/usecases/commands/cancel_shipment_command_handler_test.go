package commands_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/partner"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCancelShipmentRepository struct{ mock.Mock }

func (m *MockCancelShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockCancelShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockCancelShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockCancelShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCancelShipmentRepository) AddReview(ctx context.Context, review *shipment.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

type MockCancelPartnerRepository struct{ mock.Mock }

func (m *MockCancelPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCancelPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCancelPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockCancelPartnerRepository) GetServicing(ctx context.Context, zip kernel.ZipCode) ([]*partner.Partner, error) {
	args := m.Called(ctx, zip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

type MockCancelUoW struct{ mock.Mock }

func (m *MockCancelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCancelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCancelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCancelUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockCancelUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

type MockCancelUoWFactory struct{ mock.Mock }

func (m *MockCancelUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// sellerShipment builds a shipment owned by the given seller, optionally
// assigned to a partner, with the requested current status on its timeline.
func sellerShipment(
	t *testing.T,
	sellerID kernel.UUID,
	partnerID *kernel.UUID,
	current shipment.Status,
) *shipment.Shipment {
	t.Helper()

	destination, err := kernel.NewZipCode(11003)
	require.NoError(t, err)

	placed, err := shipment.NewEvent(
		kernel.NewUUID(), destination, shipment.Placed, "assigned to Speedy", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	timeline := []*shipment.Event{placed}

	if current != shipment.Placed {
		next, eventErr := shipment.NewEvent(
			kernel.NewUUID(), destination, current, current.DefaultDescription(destination),
			time.Now().Add(-time.Minute))
		require.NoError(t, eventErr)
		timeline = append(timeline, next)
	}

	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), "ceramic vase", 2.5, destination, sellerID, partnerID,
		"client@example.com", nil, time.Now().Add(72*time.Hour), timeline, nil,
	)
	require.NoError(t, err)
	return s
}

func TestCancelShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	cancelled := sellerShipment(t, sellerID, &partnerID, shipment.InTransit)
	assignedPartner, err := partner.RestorePartner(
		partnerID, "Speedy", "ops@speedy.example", 5, 3,
		[]kernel.ZipCode{cancelled.Destination()})
	require.NoError(t, err)

	cmd, err := commands.NewCancelShipmentCommand(cancelled.ID(), sellerID)
	require.NoError(t, err)

	shipmentRepo := new(MockCancelShipmentRepository)
	partnerRepo := new(MockCancelPartnerRepository)
	uow := new(MockCancelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, cancelled.ID()).Return(cancelled, nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", ctx, partnerID).Return(assignedPartner, nil).Once(),
		partnerRepo.On("Update", ctx, assignedPartner).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, cancelled).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockStatusNotifier)
	notifier.On("NotifyStatusChange", ctx, cancelled, shipment.Cancelled, "").Return(nil).Once()

	handler := commands.NewCancelShipmentCommandHandler(factory, notifier, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Cancelled, cancelled.CurrentStatus())
	assert.Equal(t, 2, assignedPartner.ActiveShipments())
	shipmentRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCancelShipmentCommandHandler_Handle_NotOwningSeller(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	cancelled := sellerShipment(t, kernel.NewUUID(), &partnerID, shipment.Placed)

	cmd, err := commands.NewCancelShipmentCommand(cancelled.ID(), kernel.NewUUID())
	require.NoError(t, err)

	shipmentRepo := new(MockCancelShipmentRepository)
	uow := new(MockCancelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, cancelled.ID()).Return(cancelled, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockStatusNotifier)
	handler := commands.NewCancelShipmentCommandHandler(factory, notifier, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNotAuthorized)
	assert.Equal(t, shipment.Placed, cancelled.CurrentStatus())
	shipmentRepo.AssertNotCalled(t, "Update")
	notifier.AssertNotCalled(t, "NotifyStatusChange")
}

func TestCancelShipmentCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	cancelled := sellerShipment(t, sellerID, &partnerID, shipment.Delivered)

	cmd, err := commands.NewCancelShipmentCommand(cancelled.ID(), sellerID)
	require.NoError(t, err)

	shipmentRepo := new(MockCancelShipmentRepository)
	uow := new(MockCancelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, cancelled.ID()).Return(cancelled, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelShipmentCommandHandler(
		factory, new(MockStatusNotifier), discardLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrShipmentAlreadyDelivered)
	assert.Equal(t, shipment.Delivered, cancelled.CurrentStatus())
	shipmentRepo.AssertNotCalled(t, "Update")
}

func TestCancelShipmentCommandHandler_Handle_DuplicateCancelKeepsCapacity(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	cancelled := sellerShipment(t, sellerID, &partnerID, shipment.Cancelled)

	cmd, err := commands.NewCancelShipmentCommand(cancelled.ID(), sellerID)
	require.NoError(t, err)

	shipmentRepo := new(MockCancelShipmentRepository)
	partnerRepo := new(MockCancelPartnerRepository)
	uow := new(MockCancelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, cancelled.ID()).Return(cancelled, nil).Once(),
		shipmentRepo.On("Update", ctx, cancelled).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockStatusNotifier)
	notifier.On("NotifyStatusChange", ctx, cancelled, shipment.Cancelled, "").Return(nil).Once()

	handler := commands.NewCancelShipmentCommandHandler(factory, notifier, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, cancelled.Timeline(), 3)
	partnerRepo.AssertNotCalled(t, "Get")
	uow.AssertNotCalled(t, "PartnerRepository")
}

func TestCancelShipmentCommandHandler_Handle_UnassignedShipment(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	cancelled := sellerShipment(t, sellerID, nil, shipment.Placed)

	cmd, err := commands.NewCancelShipmentCommand(cancelled.ID(), sellerID)
	require.NoError(t, err)

	shipmentRepo := new(MockCancelShipmentRepository)
	uow := new(MockCancelUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, cancelled.ID()).Return(cancelled, nil).Once(),
		shipmentRepo.On("Update", ctx, cancelled).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockStatusNotifier)
	notifier.On("NotifyStatusChange", ctx, cancelled, shipment.Cancelled, "").Return(nil).Once()

	handler := commands.NewCancelShipmentCommandHandler(factory, notifier, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Cancelled, cancelled.CurrentStatus())
	uow.AssertNotCalled(t, "PartnerRepository")
}

func TestCancelShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelShipmentCommand{} // not constructed properly

	factory := new(MockCancelUoWFactory)
	handler := commands.NewCancelShipmentCommandHandler(
		factory, new(MockStatusNotifier), discardLogger())

	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCancelShipmentCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
