package commands

import (
	"context"

	"deliverytech/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles order status transitions.
//
// The write is guarded by the order's version counter, so two concurrent
// transitions from the same source status cannot both commit; the loser
// gets a VersionIsInvalidError and may retry against the fresh state.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the transition, persists the change
// and returns the updated order. An illegal transition is a
// BusinessRuleError and nothing is written.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = ord.ChangeStatus(command.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return ord, nil
}
