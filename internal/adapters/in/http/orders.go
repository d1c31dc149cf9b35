package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type orderItemChange struct {
	Item     uint `json:"item"`
	Quantity int  `json:"quantity"`
}

// GetOrders handles GET /api/orders. Managers may filter by customer,
// deliver_crew and status, and sort with ?ordering=; for everyone else the
// list is scoped to their own orders and the filters are ignored.
func (s *Server) GetOrders(c echo.Context) error {
	var status *int
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid status filter"})
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(
		currentUser(c).ID,
		currentRole(c),
		c.QueryParam("customer"),
		c.QueryParam("deliver_crew"),
		status,
		c.QueryParam("ordering"),
	)
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.handlers.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}

	return c.JSON(http.StatusOK, views)
}

// Checkout handles POST /api/orders: turns the caller's cart into an order.
func (s *Server) Checkout(c echo.Context) error {
	cmd, err := commands.NewCheckoutCommand(currentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}

	if _, err = s.handlers.Checkout.Handle(c.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrPreconditionFailed) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Cart is empty"})
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "Order created successfully"})
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, ok := orderIDParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Order does not exist"})
	}

	query, err := queries.NewGetOrderQuery(orderID, currentUser(c).ID, currentRole(c))
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Order does not exist"})
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderView(resp))
}

// UpdateOrder handles PATCH /api/orders/:id. The payload's top-level field
// count is part of the role gates, so the body is parsed as raw JSON fields
// before anything is typed.
func (s *Server) UpdateOrder(c echo.Context) error {
	orderID, ok := orderIDParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Order does not exist"})
	}

	payload, err := parseUpdatePayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, currentUser(c).ID, currentRole(c), payload)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondUpdateOrderError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Order updated successfully"})
}

// DeleteOrder handles DELETE /api/orders/:id. Manager only.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, ok := orderIDParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Order does not exist"})
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, currentRole(c))
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrUnauthorized):
			return c.JSON(http.StatusUnauthorized,
				messageResponse{Message: "You are not authorized to delete this order"})
		case errors.Is(err, errs.ErrObjectNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Order does not exist"})
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Order deleted successfully"})
}

func orderIDParam(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseUpdatePayload decodes the PATCH body keeping the top-level field count
// intact; unknown fields still count against the role gates.
func parseUpdatePayload(c echo.Context) (commands.UpdatePayload, error) {
	fields := make(map[string]json.RawMessage)
	if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil {
		return commands.UpdatePayload{}, err
	}

	payload := commands.UpdatePayload{FieldCount: len(fields)}

	if raw, ok := fields["status"]; ok {
		var status int
		if err := json.Unmarshal(raw, &status); err != nil {
			return commands.UpdatePayload{}, err
		}
		payload.HasStatus = true
		payload.Status = order.Status(status)
	}

	if raw, ok := fields["deliver_crew"]; ok {
		var crewID uint
		if err := json.Unmarshal(raw, &crewID); err != nil {
			return commands.UpdatePayload{}, err
		}
		payload.HasDeliveryCrew = true
		payload.DeliveryCrewID = crewID
	}

	if raw, ok := fields["date"]; ok {
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return commands.UpdatePayload{}, err
		}

		date, err := time.Parse("2006-01-02", value)
		if err != nil {
			date, err = time.Parse(time.RFC3339, value)
			if err != nil {
				return commands.UpdatePayload{}, err
			}
		}
		payload.HasDate = true
		payload.Date = date
	}

	if raw, ok := fields["items"]; ok {
		var changes []orderItemChange
		if err := json.Unmarshal(raw, &changes); err != nil {
			return commands.UpdatePayload{}, err
		}

		payload.HasItems = true
		payload.Items = make([]commands.ItemChange, 0, len(changes))
		for _, change := range changes {
			payload.Items = append(payload.Items, commands.ItemChange{
				MenuItemID: change.Item,
				Quantity:   change.Quantity,
			})
		}
	}

	return payload, nil
}

// respondUpdateOrderError translates transition errors into the contract's
// wording per role gate.
func respondUpdateOrderError(c echo.Context, err error) error {
	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) && invalid.ParamName == "payload" {
		return c.JSON(http.StatusBadRequest,
			messageResponse{Message: "You can only update the status of the order"})
	}

	var required *errs.ValueIsRequiredError
	if errors.As(err, &required) && required.ParamName == "status" {
		return c.JSON(http.StatusBadRequest,
			messageResponse{Message: "There's no status in the request"})
	}

	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized,
			messageResponse{Message: "Unauthorized to update the order"})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Order does not exist"})
	}

	return respondError(c, err)
}
