package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"food-admin/internal/seed"
)

// Writes a small sample catalogue for local development:
// three categories, a handful of products per category and two users.
func main() {
	out := flag.String("out", "data/seed/catalogue.ndjson.gz", "output file")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	ds := &seed.Dataset{
		Categories: []seed.CategoryRecord{
			{Name: "Starters", Description: "Small plates to share"},
			{Name: "Mains", Description: "Curries, biryanis and thalis"},
			{Name: "Desserts", Description: "Something sweet"},
		},
		Products: []seed.ProductRecord{
			{Name: "Samosa", Category: "Starters", Price: 2.5},
			{Name: "Paneer Tikka", Category: "Starters", Price: 6},
			{Name: "Onion Bhaji", Category: "Starters", Price: 3.25},
			{Name: "Chicken Biryani", Category: "Mains", Price: 11.5},
			{Name: "Veg Thali", Category: "Mains", Price: 9},
			{Name: "Dal Makhani", Category: "Mains", Price: 7.75, Status: "inactive"},
			{Name: "Gulab Jamun", Category: "Desserts", Price: 3},
			{Name: "Kulfi", Category: "Desserts", Price: 3.5},
		},
		Users: []seed.UserRecord{
			{Name: "Asha Rao", Email: "asha@example.com", Mobile: "9800000001"},
			{Name: "Vikram Nair", Email: "vikram@example.com"},
		},
	}

	file, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer file.Close()

	if err := seed.Encode(file, ds); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	fmt.Printf("Created %s with %d records\n", *out, ds.Size())
}
