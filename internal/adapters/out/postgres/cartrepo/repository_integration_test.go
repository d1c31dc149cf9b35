package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CartRepositoryIntegrationTestSuite exercises GormCartRepository against a
// real PostgreSQL instance, covering the composite key conflict and the stale
// row purge.
type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cartrepo.GormCartRepository
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&cartrepo.CartItemDTO{}))
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE cart_items").Error)
	suite.repository = cartrepo.NewGormCartRepository(suite.db)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartRepositoryIntegrationTestSuite) addItem(customerID, menuItemID uint, quantity int, unitPrice string) *cart.Item {
	item, err := cart.NewItem(customerID, menuItemID, quantity, decimal.RequireFromString(unitPrice))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), item))
	return item
}

func (suite *CartRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	suite.addItem(7, 5, 2, "9.50")

	items, err := suite.repository.GetByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)

	suite.Equal(uint(7), items[0].CustomerID())
	suite.Equal(uint(5), items[0].MenuItemID())
	suite.Equal(2, items[0].Quantity())
	suite.True(items[0].UnitPrice().Equal(decimal.RequireFromString("9.50")))
	suite.True(items[0].Price().Equal(decimal.RequireFromString("19.00")))
}

func (suite *CartRepositoryIntegrationTestSuite) TestAdd_DuplicateMenuItem_ReturnsConflict() {
	ctx := context.Background()
	suite.addItem(7, 5, 2, "9.50")

	duplicate, err := cart.NewItem(7, 5, 4, decimal.RequireFromString("9.50"))
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	// the original row is untouched
	items, err := suite.repository.GetByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal(2, items[0].Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestAdd_SameMenuItemDifferentCustomers() {
	ctx := context.Background()
	suite.addItem(7, 5, 1, "9.50")
	suite.addItem(8, 5, 3, "9.50")

	items, err := suite.repository.GetByCustomer(ctx, 8)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal(3, items[0].Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestRemove() {
	ctx := context.Background()
	suite.addItem(7, 5, 2, "9.50")
	suite.addItem(7, 6, 1, "4.25")

	suite.Require().NoError(suite.repository.Remove(ctx, 7, 5))

	items, err := suite.repository.GetByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal(uint(6), items[0].MenuItemID())
}

func (suite *CartRepositoryIntegrationTestSuite) TestRemove_MissingRow_ReturnsNotFound() {
	err := suite.repository.Remove(context.Background(), 7, 404)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CartRepositoryIntegrationTestSuite) TestClear() {
	ctx := context.Background()
	suite.addItem(7, 5, 2, "9.50")
	suite.addItem(7, 6, 1, "4.25")
	suite.addItem(8, 5, 1, "9.50")

	suite.Require().NoError(suite.repository.Clear(ctx, 7))

	items, err := suite.repository.GetByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Empty(items)

	// other carts are unaffected
	others, err := suite.repository.GetByCustomer(ctx, 8)
	suite.Require().NoError(err)
	suite.Len(others, 1)
}

func (suite *CartRepositoryIntegrationTestSuite) TestClear_EmptyCartIsNoError() {
	suite.Require().NoError(suite.repository.Clear(context.Background(), 7))
}

func (suite *CartRepositoryIntegrationTestSuite) TestRemoveItems_LeavesUnlistedRows() {
	ctx := context.Background()
	suite.addItem(7, 5, 2, "9.50")
	suite.addItem(7, 6, 1, "4.25")
	suite.addItem(7, 9, 3, "2.00")
	suite.addItem(8, 5, 1, "9.50")

	suite.Require().NoError(suite.repository.RemoveItems(ctx, 7, []uint{5, 6}))

	// the row not named in the delete survives, as does the other customer's
	items, err := suite.repository.GetByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal(uint(9), items[0].MenuItemID())

	others, err := suite.repository.GetByCustomer(ctx, 8)
	suite.Require().NoError(err)
	suite.Len(others, 1)
}

func (suite *CartRepositoryIntegrationTestSuite) TestRemoveItems_EmptyListIsNoOp() {
	ctx := context.Background()
	suite.addItem(7, 5, 2, "9.50")

	suite.Require().NoError(suite.repository.RemoveItems(ctx, 7, nil))

	items, err := suite.repository.GetByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Len(items, 1)
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetByCustomer_OrderedByMenuItem() {
	ctx := context.Background()
	suite.addItem(7, 6, 1, "4.25")
	suite.addItem(7, 5, 2, "9.50")

	items, err := suite.repository.GetByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal(uint(5), items[0].MenuItemID())
	suite.Equal(uint(6), items[1].MenuItemID())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetByCustomerForUpdate_InsideTransaction() {
	ctx := context.Background()
	suite.addItem(7, 5, 2, "9.50")

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	repo := cartrepo.NewGormCartRepository(tx)
	items, err := repo.GetByCustomerForUpdate(ctx, 7)
	suite.Require().NoError(err)
	suite.Len(items, 1)
}

func (suite *CartRepositoryIntegrationTestSuite) TestDeleteOlderThan() {
	ctx := context.Background()
	suite.addItem(7, 5, 2, "9.50")
	suite.addItem(8, 6, 1, "4.25")

	// age one row past the cutoff
	stale := time.Now().Add(-48 * time.Hour)
	err := suite.db.Model(&cartrepo.CartItemDTO{}).
		Where("customer_id = ?", 7).
		Update("created_at", stale).Error
	suite.Require().NoError(err)

	removed, err := suite.repository.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	remaining, err := suite.repository.GetByCustomer(ctx, 8)
	suite.Require().NoError(err)
	suite.Len(remaining, 1)
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
