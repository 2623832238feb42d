package cmd

import (
	"time"

	httpadapter "deliverytech/internal/adapters/in/http"
	"deliverytech/internal/adapters/out/postgres"
	"deliverytech/internal/core/application/usecases/commands"
	"deliverytech/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCustomerActiveCommandHandler() commands.SetCustomerActiveCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCustomerActiveCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRestaurantRatingCommandHandler() commands.SetRestaurantRatingCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRestaurantRatingCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRestaurantActiveCommandHandler() commands.SetRestaurantActiveCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRestaurantActiveCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateSetProductAvailabilityCommandHandler() commands.SetProductAvailabilityCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetProductAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQuoteQueryHandler() queries.GetOrderQuoteQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOrderQuoteQueryHandler(uow.RestaurantRepository(), uow.ProductRepository())
}

// CreateHTTPServer assembles the REST adapter over every command and
// query handler.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	commandHandlers := httpadapter.CommandHandlers{
		RegisterCustomer:       c.CreateRegisterCustomerCommandHandler(),
		SetCustomerActive:      c.CreateSetCustomerActiveCommandHandler(),
		CreateRestaurant:       c.CreateCreateRestaurantCommandHandler(),
		SetRestaurantRating:    c.CreateSetRestaurantRatingCommandHandler(),
		SetRestaurantActive:    c.CreateSetRestaurantActiveCommandHandler(),
		CreateProduct:          c.CreateCreateProductCommandHandler(),
		SetProductAvailability: c.CreateSetProductAvailabilityCommandHandler(),
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:      c.CreateChangeOrderStatusCommandHandler(),
		CancelOrder:            c.CreateCancelOrderCommandHandler(),
	}

	queryHandlers := httpadapter.QueryHandlers{
		OrdersByCustomer:     queries.NewGetOrdersByCustomerQueryHandler(c.gormDB),
		OrdersByRestaurant:   queries.NewGetOrdersByRestaurantQueryHandler(c.gormDB),
		OrdersByStatus:       queries.NewGetOrdersByStatusQueryHandler(c.gormDB),
		OrdersInProgress:     queries.NewGetOrdersInProgressQueryHandler(c.gormDB),
		OrdersByPeriod:       queries.NewGetOrdersByPeriodQueryHandler(c.gormDB),
		OrdersAboveValue:     queries.NewGetOrdersAboveValueQueryHandler(c.gormDB),
		TodaysOrders:         queries.NewGetTodaysOrdersQueryHandler(c.gormDB, time.Local),
		RestaurantSalesTotal: queries.NewGetRestaurantSalesTotalQueryHandler(c.gormDB),
		OrderQuote:           c.CreateGetOrderQuoteQueryHandler(),
	}

	return httpadapter.NewServer(commandHandlers, queryHandlers)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
