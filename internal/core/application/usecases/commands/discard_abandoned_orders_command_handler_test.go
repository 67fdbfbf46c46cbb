package commands_test

import (
	"errors"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDiscardAbandonedOrdersCommandHandler_Handle_DeletesEverySweptOrder(t *testing.T) {
	ctx := t.Context()
	first := pendingOrder(t)
	second := pendingOrder(t)
	cmd := commands.NewDiscardAbandonedOrdersCommand()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingWithoutItems", mock.Anything).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Delete", mock.Anything, first.ID()).Return(nil).Once(),
		repo.On("Delete", mock.Anything, second.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDiscardAbandonedOrdersCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDiscardAbandonedOrdersCommandHandler_Handle_NothingToSweep(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDiscardAbandonedOrdersCommand()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingWithoutItems", mock.Anything).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDiscardAbandonedOrdersCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDiscardAbandonedOrdersCommandHandler_Handle_SweepError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDiscardAbandonedOrdersCommand()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingWithoutItems", mock.Anything).
			Return(nil, errors.New("query error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDiscardAbandonedOrdersCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
