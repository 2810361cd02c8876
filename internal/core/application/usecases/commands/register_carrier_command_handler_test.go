package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCarrierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := mustPrincipal("carrier-1")
	cmd, _ := commands.NewRegisterCarrierCommand(id, "Fast Delivery Co", "Truck", 1000, "New York")

	repo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(repo).Once(),
		repo.On("Exists", mock.Anything, id).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*carrier.Carrier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCarrierCommandHandler(factory, FixedClock{Height: 10})
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterCarrierCommandHandler_Handle_AlreadyRegistered(t *testing.T) {
	ctx := t.Context()
	id := mustPrincipal("carrier-1")
	cmd, _ := commands.NewRegisterCarrierCommand(id, "Fast Delivery Co", "Truck", 1000, "New York")

	repo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(repo).Once(),
		repo.On("Exists", mock.Anything, id).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCarrierCommandHandler(factory, FixedClock{Height: 10})
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, carrier.ErrAlreadyRegistered)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterCarrierCommandHandler_Handle_InvalidCapacity(t *testing.T) {
	ctx := t.Context()
	id := mustPrincipal("carrier-1")
	cmd, _ := commands.NewRegisterCarrierCommand(id, "Fast Delivery Co", "Truck", 0, "New York")

	repo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(repo).Once(),
		repo.On("Exists", mock.Anything, id).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCarrierCommandHandler(factory, FixedClock{Height: 10})
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, carrier.ErrInvalidCapacity)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterCarrierCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.RegisterCarrierCommand // not constructed properly
	factory := new(MockCarrierUoWFactory)
	h := commands.NewRegisterCarrierCommandHandler(factory, FixedClock{Height: 10})
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRegisterCarrierCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	id := mustPrincipal("carrier-1")
	cmd, _ := commands.NewRegisterCarrierCommand(id, "Fast Delivery Co", "Truck", 1000, "New York")

	uow := new(MockUoW)
	factory := new(MockCarrierUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewRegisterCarrierCommandHandler(factory, FixedClock{Height: 10})
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRegisterCarrierCommandHandler_Handle_StampsClockHeight(t *testing.T) {
	ctx := t.Context()
	id := mustPrincipal("carrier-1")
	cmd, _ := commands.NewRegisterCarrierCommand(id, "Fast Delivery Co", "Truck", 1000, "New York")

	var added *carrier.Carrier
	repo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(repo).Once(),
		repo.On("Exists", mock.Anything, id).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*carrier.Carrier")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*carrier.Carrier)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCarrierCommandHandler(factory, FixedClock{Height: 42})
	require.NoError(t, h.Handle(ctx, cmd))
	require.NotNil(t, added)
	require.Equal(t, kernel.Height(42), added.RegisteredAt())
}
