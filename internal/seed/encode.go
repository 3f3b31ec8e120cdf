package seed

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
)

// Encode writes ds to w in the gzipped NDJSON format Decode reads:
// categories first, then products, then users.
func Encode(w io.Writer, ds *Dataset) error {
	gzipWriter := gzip.NewWriter(w)
	enc := json.NewEncoder(gzipWriter)

	for _, rec := range ds.Categories {
		if err := enc.Encode(struct {
			Kind string `json:"kind"`
			CategoryRecord
		}{KindCategory, rec}); err != nil {
			return fmt.Errorf("failed to encode category %q: %w", rec.Name, err)
		}
	}
	for _, rec := range ds.Products {
		if err := enc.Encode(struct {
			Kind string `json:"kind"`
			ProductRecord
		}{KindProduct, rec}); err != nil {
			return fmt.Errorf("failed to encode product %q: %w", rec.Name, err)
		}
	}
	for _, rec := range ds.Users {
		if err := enc.Encode(struct {
			Kind string `json:"kind"`
			UserRecord
		}{KindUser, rec}); err != nil {
			return fmt.Errorf("failed to encode user %q: %w", rec.Email, err)
		}
	}

	return gzipWriter.Close()
}
