// Package projection expands stored references into the denormalized views the
// admin console lists. Every function here is pure: lookups are passed in and a
// reference that cannot be resolved becomes a nil field rather than an error.
package projection

import (
	"food-admin/internal/model"

	"github.com/google/uuid"
)

// UserLookup resolves a user id. ok is false when the user no longer exists.
type UserLookup func(id uuid.UUID) (user model.User, ok bool)

// ProductLookup resolves a product id.
type ProductLookup func(id uuid.UUID) (product model.Product, ok bool)

// CategoryLookup resolves a category id.
type CategoryLookup func(id uuid.UUID) (category model.Category, ok bool)

// Order expands the user and every line item product of o.
// Line item prices stay the frozen order-time values; the expanded product carries
// the current catalogue price alongside.
func Order(o model.Order, users UserLookup, products ProductLookup) model.OrderView {
	view := model.OrderView{
		ID:          o.ID,
		Items:       make([]model.OrderItemView, len(o.Items)),
		TotalAmount: o.TotalAmount,
		OrderDate:   o.OrderDate,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}

	if u, ok := users(o.UserID); ok {
		view.User = &model.UserSummary{
			ID:     u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Mobile: u.Mobile,
		}
	}

	for i, item := range o.Items {
		iv := model.OrderItemView{
			ID:       item.ID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
		if p, ok := products(item.ProductID); ok {
			iv.Product = &model.ProductSummary{
				ID:         p.ID,
				Name:       p.Name,
				Price:      p.Price,
				CategoryID: p.CategoryID,
			}
		}
		view.Items[i] = iv
	}

	return view
}

// Orders expands each order in turn, preserving order.
func Orders(orders []model.Order, users UserLookup, products ProductLookup) []model.OrderView {
	views := make([]model.OrderView, len(orders))
	for i, o := range orders {
		views[i] = Order(o, users, products)
	}
	return views
}

// Product expands the category reference of p.
func Product(p model.Product, categories CategoryLookup) model.ProductView {
	view := model.ProductView{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if c, ok := categories(p.CategoryID); ok {
		view.Category = &c
	}
	return view
}

// Products expands each product in turn, preserving order.
func Products(products []model.Product, categories CategoryLookup) []model.ProductView {
	views := make([]model.ProductView, len(products))
	for i, p := range products {
		views[i] = Product(p, categories)
	}
	return views
}
