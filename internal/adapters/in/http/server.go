// Package http exposes the application's commands and queries over a
// JSON REST API. Handlers translate between transport shapes and
// application types; all business decisions stay in the use case layer.
package http

import (
	"net/http"
	"strconv"
	"time"

	"deliverytech/internal/core/application/usecases/commands"
	"deliverytech/internal/core/application/usecases/queries"
	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/order"
	"deliverytech/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CommandHandlers bundles the write-side use cases the server exposes.
type CommandHandlers struct {
	RegisterCustomer       commands.RegisterCustomerCommandHandler
	SetCustomerActive      commands.SetCustomerActiveCommandHandler
	CreateRestaurant       commands.CreateRestaurantCommandHandler
	SetRestaurantRating    commands.SetRestaurantRatingCommandHandler
	SetRestaurantActive    commands.SetRestaurantActiveCommandHandler
	CreateProduct          commands.CreateProductCommandHandler
	SetProductAvailability commands.SetProductAvailabilityCommandHandler
	CreateOrder            commands.CreateOrderCommandHandler
	ChangeOrderStatus      commands.ChangeOrderStatusCommandHandler
	CancelOrder            commands.CancelOrderCommandHandler
}

// QueryHandlers bundles the read-side use cases the server exposes.
type QueryHandlers struct {
	OrdersByCustomer     queries.GetOrdersByCustomerQueryHandler
	OrdersByRestaurant   queries.GetOrdersByRestaurantQueryHandler
	OrdersByStatus       queries.GetOrdersByStatusQueryHandler
	OrdersInProgress     queries.GetOrdersInProgressQueryHandler
	OrdersByPeriod       queries.GetOrdersByPeriodQueryHandler
	OrdersAboveValue     queries.GetOrdersAboveValueQueryHandler
	TodaysOrders         queries.GetTodaysOrdersQueryHandler
	RestaurantSalesTotal queries.GetRestaurantSalesTotalQueryHandler
	OrderQuote           queries.GetOrderQuoteQueryHandler
}

// Server wires HTTP routes to command and query handlers.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.RegisterCustomer)
	api.PATCH("/customers/:customerID/active", s.SetCustomerActive)
	api.GET("/customers/:customerID/orders", s.GetOrdersByCustomer)

	api.POST("/restaurants", s.CreateRestaurant)
	api.PATCH("/restaurants/:restaurantID/rating", s.SetRestaurantRating)
	api.PATCH("/restaurants/:restaurantID/active", s.SetRestaurantActive)
	api.GET("/restaurants/:restaurantID/orders", s.GetOrdersByRestaurant)
	api.GET("/restaurants/:restaurantID/sales-total", s.GetRestaurantSalesTotal)

	api.POST("/products", s.CreateProduct)
	api.PATCH("/products/:productID/availability", s.SetProductAvailability)

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/quote", s.QuoteOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/in-progress", s.GetOrdersInProgress)
	api.GET("/orders/today", s.GetTodaysOrders)
	api.GET("/orders/period", s.GetOrdersByPeriod)
	api.GET("/orders/above-value", s.GetOrdersAboveValue)
	api.PATCH("/orders/:orderID/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req RegisterCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterCustomerCommand(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.commands.RegisterCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCustomerResponse(created))
}

// SetCustomerActive handles PATCH /api/v1/customers/{id}/active.
func (s *Server) SetCustomerActive(ctx echo.Context) error {
	id, ok := parseIDParam(ctx, "customerID")
	if !ok {
		return writeBadRequest(ctx, "invalid customer id")
	}

	var req SetActiveRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetCustomerActiveCommand(id, req.Active)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.SetCustomerActive.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var req CreateRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateRestaurantCommand(
		req.Name, req.Category, req.Address, req.DeliveryFee, req.Rating)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.commands.CreateRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toRestaurantResponse(created))
}

// SetRestaurantRating handles PATCH /api/v1/restaurants/{id}/rating.
func (s *Server) SetRestaurantRating(ctx echo.Context) error {
	id, ok := parseIDParam(ctx, "restaurantID")
	if !ok {
		return writeBadRequest(ctx, "invalid restaurant id")
	}

	var req SetRatingRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetRestaurantRatingCommand(id, req.Rating)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.SetRestaurantRating.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetRestaurantActive handles PATCH /api/v1/restaurants/{id}/active.
func (s *Server) SetRestaurantActive(ctx echo.Context) error {
	id, ok := parseIDParam(ctx, "restaurantID")
	if !ok {
		return writeBadRequest(ctx, "invalid restaurant id")
	}

	var req SetActiveRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetRestaurantActiveCommand(id, req.Active)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.SetRestaurantActive.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.ID(req.RestaurantID), req.Name, req.Description, req.Category, req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.commands.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toProductResponse(created))
}

// SetProductAvailability handles PATCH /api/v1/products/{id}/availability.
func (s *Server) SetProductAvailability(ctx echo.Context) error {
	id, ok := parseIDParam(ctx, "productID")
	if !ok {
		return writeBadRequest(ctx, "invalid product id")
	}

	var req SetAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetProductAvailabilityCommand(id, req.Available)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.commands.SetProductAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	items, err := toItemRequests(req.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.ID(req.CustomerID), kernel.ID(req.RestaurantID), req.Notes, items)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// QuoteOrder handles POST /api/v1/orders/quote.
func (s *Server) QuoteOrder(ctx echo.Context) error {
	var req QuoteOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	items, err := toItemRequests(req.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuoteQuery(kernel.ID(req.RestaurantID), items)
	if err != nil {
		return writeError(ctx, err)
	}

	quote, err := s.queries.OrderQuote.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toQuoteResponse(quote))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/{id}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, ok := parseIDParam(ctx, "orderID")
	if !ok {
		return writeBadRequest(ctx, "invalid order id")
	}

	var req ChangeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.commands.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, ok := parseIDParam(ctx, "orderID")
	if !ok {
		return writeBadRequest(ctx, "invalid order id")
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(id, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// GetOrdersByCustomer handles GET /api/v1/customers/{id}/orders.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	id, ok := parseIDParam(ctx, "customerID")
	if !ok {
		return writeBadRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetOrdersByCustomerQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.queries.OrdersByCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// GetOrdersByRestaurant handles GET /api/v1/restaurants/{id}/orders.
func (s *Server) GetOrdersByRestaurant(ctx echo.Context) error {
	id, ok := parseIDParam(ctx, "restaurantID")
	if !ok {
		return writeBadRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetOrdersByRestaurantQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.queries.OrdersByRestaurant.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// GetRestaurantSalesTotal handles GET /api/v1/restaurants/{id}/sales-total.
func (s *Server) GetRestaurantSalesTotal(ctx echo.Context) error {
	id, ok := parseIDParam(ctx, "restaurantID")
	if !ok {
		return writeBadRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetRestaurantSalesTotalQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	total, err := s.queries.RestaurantSalesTotal.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSalesTotalResponse(total))
}

// GetOrdersByStatus handles GET /api/v1/orders?status=PENDING.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.ParseStatus(ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.queries.OrdersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// GetOrdersInProgress handles GET /api/v1/orders/in-progress.
func (s *Server) GetOrdersInProgress(ctx echo.Context) error {
	orders, err := s.queries.OrdersInProgress.Handle(
		ctx.Request().Context(), queries.NewGetOrdersInProgressQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// GetTodaysOrders handles GET /api/v1/orders/today.
func (s *Server) GetTodaysOrders(ctx echo.Context) error {
	orders, err := s.queries.TodaysOrders.Handle(
		ctx.Request().Context(), queries.NewGetTodaysOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// GetOrdersByPeriod handles GET /api/v1/orders/period?from=...&to=...
// with RFC 3339 bounds.
func (s *Server) GetOrdersByPeriod(ctx echo.Context) error {
	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return writeBadRequest(ctx, "invalid 'from' timestamp")
	}

	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return writeBadRequest(ctx, "invalid 'to' timestamp")
	}

	query, err := queries.NewGetOrdersByPeriodQuery(from, to)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.queries.OrdersByPeriod.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// GetOrdersAboveValue handles GET /api/v1/orders/above-value?min=50.00.
func (s *Server) GetOrdersAboveValue(ctx echo.Context) error {
	minValue, err := decimal.NewFromString(ctx.QueryParam("min"))
	if err != nil {
		return writeBadRequest(ctx, "invalid 'min' value")
	}

	query, err := queries.NewGetOrdersAboveValueQuery(minValue)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.queries.OrdersAboveValue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(ctx echo.Context, name string) (kernel.ID, bool) {
	raw, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || raw <= 0 {
		return 0, false
	}
	return kernel.ID(raw), true
}

// toItemRequests converts transport basket entries to domain item
// requests.
func toItemRequests(items []OrderItemRequest) ([]services.ItemRequest, error) {
	requests := make([]services.ItemRequest, 0, len(items))
	for _, item := range items {
		request, err := services.NewItemRequest(kernel.ID(item.ProductID), item.Quantity)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}
