package queries_test

import (
	"context"
	"testing"
	"time"

	"deliverytech/internal/core/application/usecases/queries"
	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/product"
	"deliverytech/internal/core/domain/model/restaurant"
	"deliverytech/internal/core/domain/services"
	"deliverytech/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func quoteQuery(t *testing.T) queries.GetOrderQuoteQuery {
	t.Helper()
	item, err := services.NewItemRequest(kernel.ID(1), 2)
	require.NoError(t, err)

	q, err := queries.NewGetOrderQuoteQuery(kernel.ID(7), []services.ItemRequest{item})
	require.NoError(t, err)
	return q
}

func TestGetOrderQuoteQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	rest, err := restaurant.RestoreRestaurant(kernel.ID(7), "Napoli", "Pizza", "Via Roma 1",
		decimal.RequireFromString("5.00"), decimal.RequireFromString("4.5"), true, time.Now().UTC())
	require.NoError(t, err)

	prod, err := product.RestoreProduct(kernel.ID(1), kernel.ID(7), "Margherita", "", "Pizza",
		decimal.RequireFromString("19.90"), true)
	require.NoError(t, err)

	restaurants := new(MockRestaurantRepository)
	products := new(MockProductRepository)
	restaurants.On("Get", ctx, kernel.ID(7)).Return(rest, nil).Once()
	products.On("Get", ctx, kernel.ID(1)).Return(prod, nil).Once()

	h := queries.NewGetOrderQuoteQueryHandler(restaurants, products)
	quote, err := h.Handle(ctx, quoteQuery(t))

	require.NoError(t, err)
	require.Len(t, quote.Lines, 1)
	assert.True(t, quote.Lines[0].Subtotal.Equal(decimal.RequireFromString("39.80")))
	assert.True(t, quote.DeliveryFee.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, quote.Total.Equal(decimal.RequireFromString("44.80")),
		"got total %s", quote.Total)
	restaurants.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestGetOrderQuoteQueryHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()

	restaurants := new(MockRestaurantRepository)
	restaurants.On("Get", ctx, kernel.ID(7)).
		Return(nil, errs.NewObjectNotFoundError("restaurant", int64(7))).Once()

	h := queries.NewGetOrderQuoteQueryHandler(restaurants, new(MockProductRepository))
	_, err := h.Handle(ctx, quoteQuery(t))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderQuoteQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := queries.NewGetOrderQuoteQueryHandler(new(MockRestaurantRepository), new(MockProductRepository))

	_, err := h.Handle(ctx, queries.GetOrderQuoteQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderQuoteQueryIsNotConstructed)
}
