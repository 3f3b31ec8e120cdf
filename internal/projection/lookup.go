package projection

import (
	"food-admin/internal/model"

	"github.com/google/uuid"
)

// UsersByID builds a UserLookup over an already fetched slice.
func UsersByID(users []model.User) UserLookup {
	m := make(map[uuid.UUID]model.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return func(id uuid.UUID) (model.User, bool) {
		u, ok := m[id]
		return u, ok
	}
}

// ProductsByID builds a ProductLookup over an already fetched slice.
func ProductsByID(products []model.Product) ProductLookup {
	m := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return func(id uuid.UUID) (model.Product, bool) {
		p, ok := m[id]
		return p, ok
	}
}

// CategoriesByID builds a CategoryLookup over an already fetched slice.
func CategoriesByID(categories []model.Category) CategoryLookup {
	m := make(map[uuid.UUID]model.Category, len(categories))
	for _, c := range categories {
		m[c.ID] = c
	}
	return func(id uuid.UUID) (model.Category, bool) {
		c, ok := m[id]
		return c, ok
	}
}

// OrderReferences collects the user and product ids referenced by orders.
func OrderReferences(orders []model.Order) (userIDs, productIDs []uuid.UUID) {
	for _, o := range orders {
		userIDs = append(userIDs, o.UserID)
		for _, item := range o.Items {
			productIDs = append(productIDs, item.ProductID)
		}
	}
	return userIDs, productIDs
}

// ProductReferences collects the category ids referenced by products.
func ProductReferences(products []model.Product) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.CategoryID)
	}
	return ids
}
