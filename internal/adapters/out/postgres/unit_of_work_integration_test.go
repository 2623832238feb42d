package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "deliverytech/internal/adapters/out/postgres"
	"deliverytech/internal/adapters/out/postgres/customerrepo"
	"deliverytech/internal/adapters/out/postgres/orderrepo"
	"deliverytech/internal/adapters/out/postgres/productrepo"
	"deliverytech/internal/adapters/out/postgres/restaurantrepo"
	"deliverytech/internal/core/domain/model/customer"
	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/order"
	"deliverytech/internal/core/domain/model/product"
	"deliverytech/internal/core/domain/model/restaurant"
	"deliverytech/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&restaurantrepo.RestaurantDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, products, restaurants, customers RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow1.RestaurantRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderPlacementWorkflow walks the whole placement flow inside
// one transaction: customer, restaurant, product and the order referencing all
// three.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderPlacementWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testCustomer := suite.createTestCustomer()
	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	testRestaurant := suite.createTestRestaurant()
	err = uow.RestaurantRepository().Add(ctx, testRestaurant)
	suite.Require().NoError(err)

	testProduct := suite.createTestProduct(testRestaurant.ID())
	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	testOrder := suite.createTestOrder(testCustomer.ID(), testRestaurant.ID(), testProduct)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.Require().NoError(testOrder.Confirm())
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrievedOrder.Status())
	suite.Equal(testCustomer.ID(), retrievedOrder.CustomerID())
	suite.Equal(testRestaurant.ID(), retrievedOrder.RestaurantID())
	suite.Require().Len(retrievedOrder.Lines(), 1)
	suite.Equal(testProduct.ID(), retrievedOrder.Lines()[0].ProductID())

	retrievedProduct, err := newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testRestaurant.ID(), retrievedProduct.RestaurantID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testCustomer := suite.createTestCustomer()
	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	testRestaurant := suite.createTestRestaurant()
	err = uow.RestaurantRepository().Add(ctx, testRestaurant)
	suite.Require().NoError(err)

	// Both visible inside the transaction.
	_, err = uow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	_, err = uow.RestaurantRepository().Get(ctx, testRestaurant.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().Error(err, "Customer should not exist after rollback")

	_, err = newUow.RestaurantRepository().Get(ctx, testRestaurant.ID())
	suite.Require().Error(err, "Restaurant should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	customer1 := suite.createTestCustomer()
	customer2 := suite.createTestCustomer()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.CustomerRepository().Add(ctx, customer1)
	suite.Require().NoError(err)

	err = uow2.CustomerRepository().Add(ctx, customer2)
	suite.Require().NoError(err)

	// Each transaction sees only its own rows.
	_, err = uow1.CustomerRepository().Get(ctx, customer1.ID())
	suite.Require().NoError(err)

	_, err = uow2.CustomerRepository().Get(ctx, customer2.ID())
	suite.Require().NoError(err)

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.CustomerRepository().Get(ctx, customer1.ID())
	suite.Require().NoError(err, "Customer1 should persist after commit")

	_, err = newUow.CustomerRepository().Get(ctx, customer2.ID())
	suite.Require().Error(err, "Customer2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCustomer := suite.createTestCustomer()

	// No Begin: operations run against the main connection and commit
	// immediately.
	err := uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	retrieved, err := uow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.Equal(testCustomer.ID(), retrieved.ID())

	newUow := suite.factory.Create()
	retrieved, err = newUow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.Equal(testCustomer.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureScenario() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Existing customer added outside the transaction.
	existingCustomer := suite.createTestCustomer()
	err := uow.CustomerRepository().Add(ctx, existingCustomer)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	newRestaurant := suite.createTestRestaurant()
	err = uow.RestaurantRepository().Add(ctx, newRestaurant)
	suite.Require().NoError(err)

	// Duplicate email violates the unique index.
	duplicate, err := customer.NewCustomer(
		"Someone Else", existingCustomer.Email(), "11 90000-0000", "Elsewhere 1")
	suite.Require().NoError(err)

	err = uow.CustomerRepository().Add(ctx, duplicate)
	suite.Require().Error(err, "Adding a customer with a taken email should fail")

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.CustomerRepository().Get(ctx, existingCustomer.ID())
	suite.Require().NoError(err, "Existing customer should still exist")

	_, err = newUow.RestaurantRepository().Get(ctx, newRestaurant.ID())
	suite.Require().Error(err, "Restaurant should not exist after rollback")
}

// createTestCustomer creates a valid customer with a unique email.
func (suite *UnitOfWorkIntegrationTestSuite) createTestCustomer() *customer.Customer {
	email := "test-" + uuid.NewString() + "@example.com"
	testCustomer, err := customer.NewCustomer("Test Customer", email, "11 91234-5678", "Rua A, 100")
	suite.Require().NoError(err)
	return testCustomer
}

// createTestRestaurant creates a valid restaurant with a 5.00 delivery fee.
func (suite *UnitOfWorkIntegrationTestSuite) createTestRestaurant() *restaurant.Restaurant {
	testRestaurant, err := restaurant.NewRestaurant(
		"Test Restaurant", "Italian", "Rua B, 200",
		decimal.NewFromFloat(5.00), decimal.NewFromFloat(4.5))
	suite.Require().NoError(err)
	return testRestaurant
}

// createTestProduct creates a valid product priced at 19.90.
func (suite *UnitOfWorkIntegrationTestSuite) createTestProduct(restaurantID kernel.ID) *product.Product {
	testProduct, err := product.NewProduct(
		restaurantID, "Margherita", "Tomato and mozzarella", "Pizza",
		decimal.NewFromFloat(19.90))
	suite.Require().NoError(err)
	return testProduct
}

// createTestOrder creates an order with one line of two units.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(
	customerID, restaurantID kernel.ID, testProduct *product.Product,
) *order.Order {
	line, err := order.NewLine(testProduct.ID(), testProduct.Price(), 2)
	suite.Require().NoError(err)

	total := testProduct.Price().Mul(decimal.NewFromInt(2)).Add(decimal.NewFromFloat(5.00))
	testOrder, err := order.NewOrder(customerID, restaurantID, "", []order.Line{line}, total)
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
