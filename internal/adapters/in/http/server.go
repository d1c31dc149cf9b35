// Package http is the inbound adapter: an Echo server translating the REST
// surface into commands and queries. Role checks for the order engine live in
// the command handlers; the catalog endpoints gate mutations to managers here
// at the edge, mirroring how the routes are authorized.
package http

import (
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every command and query handler the server dispatches to.
type Handlers struct {
	AddCartItem    commands.AddCartItemCommandHandler
	RemoveCartItem commands.RemoveCartItemCommandHandler
	ClearCart      commands.ClearCartCommandHandler
	Checkout       commands.CheckoutCommandHandler
	UpdateOrder    commands.UpdateOrderCommandHandler
	DeleteOrder    commands.DeleteOrderCommandHandler
	CreateMenuItem commands.CreateMenuItemCommandHandler
	UpdateMenuItem commands.UpdateMenuItemCommandHandler
	DeleteMenuItem commands.DeleteMenuItemCommandHandler
	CreateCategory commands.CreateCategoryCommandHandler
	UpdateCategory commands.UpdateCategoryCommandHandler
	DeleteCategory commands.DeleteCategoryCommandHandler

	GetCart       queries.GetCartQueryHandler
	GetOrder      queries.GetOrderQueryHandler
	GetOrders     queries.GetOrdersQueryHandler
	GetMenuItems  queries.GetMenuItemsQueryHandler
	GetMenuItem   queries.GetMenuItemQueryHandler
	GetCategories queries.GetCategoriesQueryHandler
	GetCategory   queries.GetCategoryQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates the HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API under /api with the identity middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, users ports.UserRepository) {
	api := e.Group("/api", IdentityMiddleware(users))

	api.GET("/users/me", s.GetCurrentUser)

	api.GET("/menu-items", s.GetMenuItems)
	api.POST("/menu-items", s.CreateMenuItem)
	api.GET("/menu-items/category", s.GetCategories)
	api.POST("/menu-items/category", s.CreateCategory)
	api.GET("/menu-items/category/:id", s.GetCategory)
	api.PATCH("/menu-items/category/:id", s.UpdateCategory)
	api.DELETE("/menu-items/category/:id", s.DeleteCategory)
	api.GET("/menu-items/:id", s.GetMenuItem)
	api.PATCH("/menu-items/:id", s.UpdateMenuItem)
	api.DELETE("/menu-items/:id", s.DeleteMenuItem)

	api.GET("/cart/menu-items", s.GetCart)
	api.POST("/cart/menu-items", s.AddCartItem)
	api.DELETE("/cart/menu-items", s.RemoveFromCart)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.Checkout)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
}
