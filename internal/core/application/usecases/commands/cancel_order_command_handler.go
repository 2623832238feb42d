package commands

import (
	"context"

	"deliverytech/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles order cancellation.
//
// Cancellation is idempotent: canceling an already-canceled order
// succeeds without writing anything. A delivered order cannot be
// canceled.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation
// operations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, cancels it, persists the change and returns
// the updated order. When the order was already canceled the update is
// skipped entirely.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) (*order.Order, error) {
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

	alreadyCanceled := ord.Status() == order.Canceled

	if err = ord.Cancel(command.Reason()); err != nil {
		return nil, err
	}

	if !alreadyCanceled {
		if err = orderRepo.Update(ctx, ord); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return ord, nil
}
