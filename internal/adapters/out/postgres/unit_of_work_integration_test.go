package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgresadapter "littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// checkoutUoWFactory narrows the full unit of work factory to what the
// checkout handler needs.
type checkoutUoWFactory struct {
	factory *postgresadapter.GormUnitOfWorkFactory
}

func (f checkoutUoWFactory) Create() commands.CheckoutUoW {
	return f.factory.Create()
}

// UnitOfWorkIntegrationTestSuite verifies transaction lifecycle and the
// checkout atomicity that rides on it: order written and cart cleared as one
// unit, or neither.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgresadapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	))

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE cart_items, orders, order_items").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedCartRow(customerID, menuItemID uint, quantity int, unitPrice string) {
	item, err := cart.NewItem(customerID, menuItemID, quantity, decimal.RequireFromString(unitPrice))
	suite.Require().NoError(err)
	repo := cartrepo.NewGormCartRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), item))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.CartRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.MenuItemRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "repeated begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	item, err := cart.NewItem(7, 5, 1, decimal.RequireFromString("4.25"))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CartRepository().Add(ctx, item))
	suite.Require().NoError(uow.Rollback(ctx))

	rows, err := suite.cartView().GetByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	item, err := cart.NewItem(7, 5, 1, decimal.RequireFromString("4.25"))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.CartRepository().Add(ctx, item))
	suite.Require().NoError(uow.Commit(ctx))

	rows, err := suite.cartView().GetByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Len(rows, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCheckout_EndToEnd() {
	ctx := context.Background()
	suite.seedCartRow(7, 1, 2, "9.50")
	suite.seedCartRow(7, 5, 1, "4.25")

	handler := commands.NewCheckoutCommandHandler(checkoutUoWFactory{factory: suite.factory})

	cmd, err := commands.NewCheckoutCommand(7)
	suite.Require().NoError(err)

	orderID, err := handler.Handle(ctx, cmd)
	suite.Require().NoError(err)
	suite.NotZero(orderID)

	// the order carries the cart's captured prices
	aggregate, err := orderrepo.NewGormOrderRepository(suite.db).Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.True(aggregate.Total().Equal(decimal.RequireFromString("23.25")))
	suite.Require().Len(aggregate.Items(), 2)
	suite.True(aggregate.Status().IsPending())

	// and the cart is gone
	rows, err := suite.cartView().GetByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCheckout_ConcurrentSameCustomer() {
	ctx := context.Background()
	suite.seedCartRow(7, 1, 2, "9.50")
	suite.seedCartRow(7, 5, 1, "4.25")

	handler := commands.NewCheckoutCommandHandler(checkoutUoWFactory{factory: suite.factory})

	cmd, err := commands.NewCheckoutCommand(7)
	suite.Require().NoError(err)

	errCh := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, handleErr := handler.Handle(ctx, cmd)
			errCh <- handleErr
		}()
	}

	var succeeded, lost int
	for i := 0; i < 2; i++ {
		switch handleErr := <-errCh; {
		case handleErr == nil:
			succeeded++
		case errors.Is(handleErr, errs.ErrPreconditionFailed):
			lost++
		default:
			suite.Require().NoError(handleErr)
		}
	}

	// the row locks serialize the two checkouts: the loser re-reads an empty
	// cart and fails without writing anything
	suite.Equal(1, succeeded)
	suite.Equal(1, lost)

	var orderCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Equal(int64(1), orderCount)

	var itemCount, pairCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).
		Distinct("customer_id", "menu_item_id").Count(&pairCount).Error)
	suite.Equal(int64(2), itemCount)
	suite.Equal(itemCount, pairCount, "no duplicate (customer, menu item) rows")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCheckout_EmptyCart_NoWrites() {
	ctx := context.Background()

	handler := commands.NewCheckoutCommandHandler(checkoutUoWFactory{factory: suite.factory})

	cmd, err := commands.NewCheckoutCommand(7)
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, cmd)
	suite.Require().ErrorIs(err, errs.ErrPreconditionFailed)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) cartView() ports.CartRepository {
	return cartrepo.NewGormCartRepository(suite.db)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
