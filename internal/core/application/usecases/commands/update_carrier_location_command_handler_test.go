package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateCarrierLocationCommand_EmptyLocation(t *testing.T) {
	id := mustPrincipal("carrier-1")
	_, err := commands.NewUpdateCarrierLocationCommand(id, "")
	require.Error(t, err)
}

func TestUpdateCarrierLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := mustPrincipal("carrier-1")
	cmd, _ := commands.NewUpdateCarrierLocationCommand(id, "Boston")

	existing, err := carrier.NewCarrier(id, "Fast Delivery Co", "Truck", 1000, "New York", 10)
	require.NoError(t, err)

	repo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCarrierLocationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, "Boston", existing.Location())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCarrierLocationCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := mustPrincipal("carrier-1")
	cmd, _ := commands.NewUpdateCarrierLocationCommand(id, "Boston")

	repo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("id", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCarrierLocationCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, carrier.ErrCarrierNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
