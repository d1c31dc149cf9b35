package http

import (
	"time"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/identity"
)

// messageResponse is the body of every mutating endpoint.
type messageResponse struct {
	Message string `json:"message"`
}

// Money renders as a decimal string with 2 fraction digits, never as a float.

type cartItemView struct {
	Item      uint   `json:"item"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Price     string `json:"price"`
}

type userView struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}

type itemRefView struct {
	Title string `json:"title"`
	Price string `json:"price"`
}

type orderItemView struct {
	Item     itemRefView `json:"item"`
	Quantity int         `json:"quantity"`
}

type orderView struct {
	ID           uint            `json:"id"`
	CustomerID   uint            `json:"customer_id"`
	Customer     userView        `json:"customer"`
	DeliveryCrew *userView       `json:"deliver_crew"`
	Items        []orderItemView `json:"items"`
	Total        string          `json:"total"`
	Date         time.Time       `json:"date"`
	Status       int             `json:"status"`
}

type menuItemView struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Price        string `json:"price"`
	Featured     bool   `json:"featured"`
	Category     uint   `json:"category"`
	CategoryName string `json:"category_name"`
}

type categoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type userMeView struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func toCartItemView(row queries.GetCartQueryResponse) cartItemView {
	return cartItemView{
		Item:      row.MenuItemID,
		Title:     row.Title,
		Quantity:  row.Quantity,
		UnitPrice: row.UnitPrice.StringFixed(2),
		Price:     row.Price.StringFixed(2),
	}
}

func toOrderView(resp queries.GetOrderQueryResponse) orderView {
	items := make([]orderItemView, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, orderItemView{
			Item: itemRefView{
				Title: item.Title,
				Price: item.Price.StringFixed(2),
			},
			Quantity: item.Quantity,
		})
	}

	var crew *userView
	if resp.DeliveryCrew != nil {
		crew = &userView{
			FirstName: resp.DeliveryCrew.FirstName,
			Email:     resp.DeliveryCrew.Email,
		}
	}

	return orderView{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		Customer: userView{
			FirstName: resp.Customer.FirstName,
			Email:     resp.Customer.Email,
		},
		DeliveryCrew: crew,
		Items:        items,
		Total:        resp.Total.StringFixed(2),
		Date:         resp.Date,
		Status:       resp.Status,
	}
}

func toMenuItemView(item queries.GetMenuItemsQueryResponse) menuItemView {
	return menuItemView{
		ID:           item.ID,
		Title:        item.Title,
		Price:        item.Price.StringFixed(2),
		Featured:     item.Featured,
		Category:     item.CategoryID,
		CategoryName: item.CategoryName,
	}
}

func toUserMeView(user *identity.User, role string) userMeView {
	return userMeView{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		Email:     user.Email,
		Role:      role,
	}
}
