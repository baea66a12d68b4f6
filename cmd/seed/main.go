package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tastio/tastio-backend/config"
	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Imports categories and menu items from an XLSX workbook.
//
// Expected sheets:
//   Categories: name | image_url
//   Menu:       name | price | category | photo_url | description | seller_email | restaurant_id
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	fmt.Printf("Reading XLSX file: %s\n", filePath)

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		log.Fatal("Failed to open XLSX file:", err)
	}
	defer f.Close()

	categories, err := readCategories(f)
	if err != nil {
		log.Fatal("Failed to read categories:", err)
	}
	items, err := readMenuItems(f)
	if err != nil {
		log.Fatal("Failed to read menu items:", err)
	}

	fmt.Printf("Categories to import: %d\n", len(categories))
	fmt.Printf("Menu items to import: %d\n", len(items))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	if len(categories) > 0 {
		if err := db.GetDB().CreateInBatches(categories, 100).Error; err != nil {
			log.Fatal("Failed to import categories:", err)
		}
	}
	if len(items) > 0 {
		if err := db.GetDB().CreateInBatches(items, 500).Error; err != nil {
			log.Fatal("Failed to import menu items:", err)
		}
	}

	fmt.Println("Import completed successfully!")
}

func readCategories(f *excelize.File) ([]model.Category, error) {
	rows, err := f.GetRows("Categories")
	if err != nil {
		// Sheet is optional
		return nil, nil
	}

	seen := make(map[string]bool)
	var categories []model.Category

	for i, row := range rows {
		if i == 0 || len(row) < 1 {
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		category := model.Category{Name: name}
		if len(row) > 1 {
			category.ImageURL = strings.TrimSpace(row[1])
		}
		categories = append(categories, category)
	}

	return categories, nil
}

func readMenuItems(f *excelize.File) ([]model.MenuItem, error) {
	rows, err := f.GetRows("Menu")
	if err != nil {
		return nil, nil
	}

	var items []model.MenuItem
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Menu headers: %v\n", row)
			continue
		}
		if len(row) < 7 {
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil || price <= 0 {
			skipped++
			continue
		}
		restaurantID, err := strconv.ParseUint(strings.TrimSpace(row[6]), 10, 32)
		if err != nil {
			skipped++
			continue
		}

		items = append(items, model.MenuItem{
			Name:         strings.TrimSpace(row[0]),
			Price:        price,
			Category:     strings.TrimSpace(row[2]),
			PhotoURL:     strings.TrimSpace(row[3]),
			Description:  strings.TrimSpace(row[4]),
			SellerEmail:  strings.TrimSpace(row[5]),
			RestaurantID: uint(restaurantID),
		})
	}

	if skipped > 0 {
		fmt.Printf("Skipped %d invalid menu rows\n", skipped)
	}

	return items, nil
}
