// Package seed loads catalogue and customer fixtures from gzipped NDJSON files,
// either from the local file system or from S3, and writes them to the store.
//
// Each line of a seed file is one JSON object tagged by kind:
//
//	{"kind":"category","name":"Starters","description":"Small plates"}
//	{"kind":"product","name":"Samosa","category":"Starters","price":2.5}
//	{"kind":"user","name":"Asha","email":"asha@example.com","mobile":"9999999999"}
//
// Products name their category; the name must match a category in the same file
// or one already stored.
package seed

import (
	"context"
	"errors"
)

// Record kinds.
const (
	KindCategory = "category"
	KindProduct  = "product"
	KindUser     = "user"
)

// ErrUnknownCategory is returned when a product names a category that neither
// the seed file nor the store contains.
var ErrUnknownCategory = errors.New("unknown category")

// CategoryRecord is a category line of a seed file.
type CategoryRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductRecord is a product line of a seed file.
type ProductRecord struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

// UserRecord is a user line of a seed file.
type UserRecord struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// Dataset is the decoded content of a seed file, in file order per kind.
type Dataset struct {
	Categories []CategoryRecord
	Products   []ProductRecord
	Users      []UserRecord
}

// Size returns the total number of records.
func (d *Dataset) Size() int {
	return len(d.Categories) + len(d.Products) + len(d.Users)
}

// Loader defines the interface for loading seed files.
type Loader interface {
	// Load reads a gzipped NDJSON seed file and returns its records.
	Load(ctx context.Context, path string) (*Dataset, error)
}
