package model

import (
	"time"

	"github.com/google/uuid"
)

// Product statuses.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product represents a food product in the catalogue.
type Product struct {
	ID         uuid.UUID `json:"_id" db:"id"`
	Name       string    `json:"name" db:"name"`
	CategoryID uuid.UUID `json:"categoryId" db:"category_id"`
	Price      float64   `json:"price" db:"price"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductView is a product with its category expanded for listing.
// Category is nil when the referenced category no longer exists.
type ProductView struct {
	ID        uuid.UUID `json:"_id"`
	Name      string    `json:"name"`
	Category  *Category `json:"categoryId"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductRequest is the payload for creating a product.
type ProductRequest struct {
	Name       string    `json:"name" validate:"required"`
	CategoryID uuid.UUID `json:"categoryId" validate:"required"`
	Price      *float64  `json:"price" validate:"required"`
	Status     string    `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ProductPatch lists the product fields an update may change.
type ProductPatch struct {
	Name       *string    `json:"name" validate:"omitnil,min=1"`
	CategoryID *uuid.UUID `json:"categoryId"`
	Price      *float64   `json:"price"`
	Status     *string    `json:"status" validate:"omitnil,oneof=active inactive"`
}

// Apply copies the set fields of the patch onto p.
func (pp *ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.CategoryID != nil {
		p.CategoryID = *pp.CategoryID
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
}
