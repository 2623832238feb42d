package commands

import (
	"context"
	"fmt"

	"deliverytech/internal/core/domain/model/product"
	"deliverytech/internal/pkg/errs"
)

// CreateProductCommandHandler handles adding menu items to restaurants.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation
// operations.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created product with its
// assigned identifier.
//
// The owning restaurant must exist and be active; adding items to a
// deactivated restaurant is a BusinessRuleError.
func (h CreateProductCommandHandler) Handle(
	ctx context.Context,
	command CreateProductCommand,
) (*product.Product, error) {
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

	rest, err := uow.RestaurantRepository().Get(ctx, command.RestaurantID())
	if err != nil {
		return nil, err
	}

	if !rest.IsActive() {
		return nil, errs.NewBusinessRuleError(fmt.Sprintf(
			"restaurant %s is not active", rest.ID()))
	}

	newProduct, err := product.NewProduct(
		rest.ID(), command.Name(), command.Description(), command.Category(), command.Price())
	if err != nil {
		return nil, err
	}

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newProduct, nil
}
