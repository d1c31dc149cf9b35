package http

import (
	"net/http"
	"strconv"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createMenuItemRequest struct {
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Featured bool            `json:"featured"`
	Category uint            `json:"category"`
}

type updateMenuItemRequest struct {
	Title    *string          `json:"title"`
	Price    *decimal.Decimal `json:"price"`
	Featured *bool            `json:"featured"`
	Category *uint            `json:"category"`
}

type categoryRequest struct {
	Name string `json:"name"`
}

// menuItemsQueryFromRequest reads the filter, ordering and paging query
// parameters of GET /api/menu-items.
func menuItemsQueryFromRequest(c echo.Context) (queries.GetMenuItemsQuery, error) {
	var toPrice *decimal.Decimal
	if raw := c.QueryParam("to_price"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return queries.GetMenuItemsQuery{}, errs.NewValueIsInvalidErrorWithCause("to_price", err)
		}
		toPrice = &parsed
	}

	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	page, _ := strconv.Atoi(c.QueryParam("page"))

	return queries.NewGetMenuItemsQuery(
		c.QueryParam("category"),
		toPrice,
		c.QueryParam("search"),
		c.QueryParam("ordering"),
		perPage,
		page,
	)
}

// GetMenuItems handles GET /api/menu-items with filtering, ordering and
// paging query parameters.
func (s *Server) GetMenuItems(c echo.Context) error {
	query, err := menuItemsQueryFromRequest(c)
	if err != nil {
		return respondError(c, err)
	}

	items, err := s.handlers.GetMenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	views := make([]menuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, toMenuItemView(item))
	}

	return c.JSON(http.StatusOK, views)
}

// GetMenuItem handles GET /api/menu-items/:id.
func (s *Server) GetMenuItem(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Menu item does not exist"})
	}

	query, err := queries.NewGetMenuItemQuery(id)
	if err != nil {
		return respondError(c, err)
	}

	item, err := s.handlers.GetMenuItem.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toMenuItemView(item))
}

// CreateMenuItem handles POST /api/menu-items. Manager only.
func (s *Server) CreateMenuItem(c echo.Context) error {
	if currentRole(c) != kernel.RoleManager {
		return c.JSON(http.StatusForbidden,
			messageResponse{Message: "You do not have permission to add menu items"})
	}

	var req createMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	cmd := commands.NewCreateMenuItemCommand(req.Title, req.Price, req.Category, req.Featured)
	if _, err := s.handlers.CreateMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "Menu item created successfully"})
}

// UpdateMenuItem handles PATCH /api/menu-items/:id. Manager only; absent
// fields keep their stored values.
func (s *Server) UpdateMenuItem(c echo.Context) error {
	if currentRole(c) != kernel.RoleManager {
		return forbidNonManager(c)
	}

	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Menu item does not exist"})
	}

	var req updateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewUpdateMenuItemCommand(id, req.Title, req.Price, req.Category, req.Featured)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Menu item updated successfully"})
}

// DeleteMenuItem handles DELETE /api/menu-items/:id. Manager only.
func (s *Server) DeleteMenuItem(c echo.Context) error {
	if currentRole(c) != kernel.RoleManager {
		return forbidNonManager(c)
	}

	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Menu item does not exist"})
	}

	cmd, err := commands.NewDeleteMenuItemCommand(id)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.DeleteMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Menu item deleted successfully"})
}

// GetCategories handles GET /api/menu-items/category.
func (s *Server) GetCategories(c echo.Context) error {
	categories, err := s.handlers.GetCategories.Handle(c.Request().Context(), queries.NewGetCategoriesQuery())
	if err != nil {
		return respondError(c, err)
	}

	views := make([]categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, categoryView{ID: category.ID, Name: category.Name})
	}

	return c.JSON(http.StatusOK, views)
}

// GetCategory handles GET /api/menu-items/category/:id.
func (s *Server) GetCategory(c echo.Context) error {
	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Category does not exist"})
	}

	query, err := queries.NewGetCategoryQuery(id)
	if err != nil {
		return respondError(c, err)
	}

	category, err := s.handlers.GetCategory.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, categoryView{ID: category.ID, Name: category.Name})
}

// CreateCategory handles POST /api/menu-items/category. Manager only.
func (s *Server) CreateCategory(c echo.Context) error {
	if currentRole(c) != kernel.RoleManager {
		return forbidNonManager(c)
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	cmd := commands.NewCreateCategoryCommand(req.Name)
	if _, err := s.handlers.CreateCategory.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "Category created successfully"})
}

// UpdateCategory handles PATCH /api/menu-items/category/:id. Manager only.
func (s *Server) UpdateCategory(c echo.Context) error {
	if currentRole(c) != kernel.RoleManager {
		return forbidNonManager(c)
	}

	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Category does not exist"})
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewUpdateCategoryCommand(id, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.UpdateCategory.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Category updated successfully"})
}

// DeleteCategory handles DELETE /api/menu-items/category/:id. Manager only.
func (s *Server) DeleteCategory(c echo.Context) error {
	if currentRole(c) != kernel.RoleManager {
		return forbidNonManager(c)
	}

	id, ok := idParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Category does not exist"})
	}

	cmd, err := commands.NewDeleteCategoryCommand(id)
	if err != nil {
		return respondError(c, err)
	}

	if err = s.handlers.DeleteCategory.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Category deleted successfully"})
}

func idParam(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// forbidNonManager writes the catalog mutation rejection.
func forbidNonManager(c echo.Context) error {
	return c.JSON(http.StatusForbidden,
		messageResponse{Message: "You do not have permission to perform this action"})
}
