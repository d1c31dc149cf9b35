package cmd

import (
	"littlelemon/internal/adapters/in/http"
	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires the application's handlers over a shared unit of work
// factory and database connection.
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

// CreateUserRepository builds the identity read adapter used by the HTTP
// middleware.
func (c *CompositionRoot) CreateUserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(c.gormDB)
}

// CreateHTTPHandlers assembles the full handler set for the HTTP server.
func (c *CompositionRoot) CreateHTTPHandlers() http.Handlers {
	return http.Handlers{
		AddCartItem:    c.CreateAddCartItemCommandHandler(),
		RemoveCartItem: c.CreateRemoveCartItemCommandHandler(),
		ClearCart:      c.CreateClearCartCommandHandler(),
		Checkout:       c.CreateCheckoutCommandHandler(),
		UpdateOrder:    c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:    c.CreateDeleteOrderCommandHandler(),
		CreateMenuItem: c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem: c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem: c.CreateDeleteMenuItemCommandHandler(),
		CreateCategory: c.CreateCreateCategoryCommandHandler(),
		UpdateCategory: c.CreateUpdateCategoryCommandHandler(),
		DeleteCategory: c.CreateDeleteCategoryCommandHandler(),

		GetCart:       queries.NewGetCartQueryHandler(c.gormDB),
		GetOrder:      queries.NewGetOrderQueryHandler(c.gormDB),
		GetOrders:     queries.NewGetOrdersQueryHandler(c.gormDB),
		GetMenuItems:  queries.NewGetMenuItemsQueryHandler(c.gormDB),
		GetMenuItem:   queries.NewGetMenuItemQueryHandler(c.gormDB),
		GetCategories: queries.NewGetCategoriesQueryHandler(c.gormDB),
		GetCategory:   queries.NewGetCategoryQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCategoryCommandHandler() commands.UpdateCategoryCommandHandler {
	return commands.NewUpdateCategoryCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCategoryCommandHandler() commands.DeleteCategoryCommandHandler {
	return commands.NewDeleteCategoryCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreatePurgeStaleCartsCommandHandler() commands.PurgeStaleCartsCommandHandler {
	return commands.NewPurgeStaleCartsCommandHandler(c.cartUoWFactory())
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}
