package model

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a placed customer order. Orders are never modified after creation.
type Order struct {
	ID          uuid.UUID   `json:"_id" db:"id"`
	UserID      uuid.UUID   `json:"userId" db:"user_id"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount" db:"total_amount"`
	OrderDate   time.Time   `json:"orderDate" db:"order_date"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line item in an order.
// Price is the unit price frozen at order time, independent of the live product price.
type OrderItem struct {
	ID        uuid.UUID `json:"_id" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     float64   `json:"price" db:"price"`
}

// OrderRequest represents the request payload for creating an order.
// Ids are kept as sent and parsed during validation, after the items check.
type OrderRequest struct {
	UserID string             `json:"userId"`
	Items  []OrderItemRequest `json:"items"`
}

// OrderItemRequest represents a single item in an order request.
type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// UserSummary is the subset of a user shown next to an order.
type UserSummary struct {
	ID     uuid.UUID `json:"_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Mobile string    `json:"mobile,omitempty"`
}

// ProductSummary is the subset of a product shown next to an order line.
type ProductSummary struct {
	ID         uuid.UUID `json:"_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	CategoryID uuid.UUID `json:"categoryId"`
}

// OrderView is an order with its user and products expanded for listing.
// User and item products are nil when the referenced record is gone.
type OrderView struct {
	ID          uuid.UUID       `json:"_id"`
	User        *UserSummary    `json:"userId"`
	Items       []OrderItemView `json:"items"`
	TotalAmount float64         `json:"totalAmount"`
	OrderDate   time.Time       `json:"orderDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// OrderItemView is a line item with its product expanded.
type OrderItemView struct {
	ID       uuid.UUID       `json:"_id"`
	Product  *ProductSummary `json:"productId"`
	Quantity int             `json:"quantity"`
	Price    float64         `json:"price"`
}
