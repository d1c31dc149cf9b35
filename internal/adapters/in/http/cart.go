package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type addCartItemRequest struct {
	Item     uint `json:"item"`
	Quantity int  `json:"quantity"`
}

type removeCartItemRequest struct {
	Item *uint `json:"item"`
}

// GetCart handles GET /api/cart/menu-items.
func (s *Server) GetCart(c echo.Context) error {
	query, err := queries.NewGetCartQuery(currentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}

	rows, err := s.handlers.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	views := make([]cartItemView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCartItemView(row))
	}

	return c.JSON(http.StatusOK, views)
}

// AddCartItem handles POST /api/cart/menu-items.
func (s *Server) AddCartItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewAddCartItemCommand(currentUser(c).ID, req.Item, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.AddCartItem.Handle(c.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Item already exists in cart"})
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "Item added in cart successfully"})
}

// RemoveFromCart handles DELETE /api/cart/menu-items. With an {item} body it
// removes that row; without one it clears the whole cart.
func (s *Server) RemoveFromCart(c echo.Context) error {
	var req removeCartItemRequest
	// A missing or empty body means "clear everything", so decode errors are
	// treated as no item given.
	_ = json.NewDecoder(c.Request().Body).Decode(&req)

	if req.Item == nil {
		cmd, err := commands.NewClearCartCommand(currentUser(c).ID)
		if err != nil {
			return respondError(c, err)
		}

		if err = s.handlers.ClearCart.Handle(c.Request().Context(), cmd); err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, messageResponse{Message: "All items removed from cart successfully"})
	}

	cmd, err := commands.NewRemoveCartItemCommand(currentUser(c).ID, *req.Item)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.RemoveCartItem.Handle(c.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Item does not exist in cart"})
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Item removed from cart successfully"})
}
