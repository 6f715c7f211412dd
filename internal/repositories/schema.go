package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// Migrate creates the two tables if they do not exist. It is safe to run
// repeatedly.
func Migrate(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			description TEXT,
			image_url VARCHAR(255) DEFAULT '/images/placeholder-category.svg'
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			category_id INTEGER REFERENCES categories(id) ON DELETE CASCADE,
			description TEXT,
			price DECIMAL(10,2) NOT NULL,
			stock_quantity INTEGER NOT NULL DEFAULT 0,
			image_url VARCHAR(255) DEFAULT '/images/placeholder-item.svg'
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating tables: %w", err)
		}
	}

	return nil
}

type seedItem struct {
	name     string
	category string
	desc     string
	price    string
	stock    int
	imageURL string
}

var seedCategories = []struct {
	name     string
	desc     string
	imageURL string
}{
	{"Produce", "Fresh fruits and vegetables", "/images/produce-category.jpg"},
	{"Dairy", "Milk, cheese, and eggs", "/images/dairy-category.jpg"},
	{"Bakery", "Bread, pastries, and cakes", "/images/bakery-category.jpg"},
	{"Meat", "Fresh and frozen meats", "/images/meat-category.jpg"},
	{"Pantry", "Canned goods and dry goods", "/images/pantry-category.jpg"},
}

var seedItems = []seedItem{
	{"Apples", "Produce", "Fresh red apples", "1.99", 100, "/images/apples.jpg"},
	{"Bananas", "Produce", "Ripe yellow bananas", "0.99", 150, "/images/bananas.jpg"},
	{"Milk", "Dairy", "Whole milk, 1 gallon", "3.49", 50, "/images/milk.jpg"},
	{"Cheese", "Dairy", "Cheddar cheese block", "4.99", 30, "/images/cheese.jpg"},
	{"Bread", "Bakery", "Whole wheat bread", "2.49", 40, "/images/bread.jpg"},
	{"Croissant", "Bakery", "Butter croissant", "1.99", 25, "/images/croissant.jpg"},
	{"Chicken Breast", "Meat", "Boneless, skinless", "5.99", 75, "/images/chicken.jpg"},
	{"Ground Beef", "Meat", "Lean ground beef", "6.49", 60, "/images/ground-beef.jpg"},
	{"Pasta", "Pantry", "Spaghetti, 1 lb package", "1.49", 100, "/images/pasta.jpg"},
	{"Canned Tomatoes", "Pantry", "Diced tomatoes", "1.29", 80, "/images/canned-tomatoes.jpg"},
}

// Seed clears both tables and loads the sample data set.
func Seed(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("clearing items: %w", err)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("clearing categories: %w", err)
	}

	categoryIDs := make(map[string]int64, len(seedCategories))

	for _, c := range seedCategories {
		var id int64

		err := db.QueryRowContext(ctx,
			`INSERT INTO categories (name, description, image_url) VALUES ($1, $2, $3) RETURNING id`,
			c.name, c.desc, c.imageURL,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seeding category %q: %w", c.name, err)
		}

		categoryIDs[c.name] = id
	}

	for _, i := range seedItems {
		price, err := decimal.NewFromString(i.price)
		if err != nil {
			return fmt.Errorf("seed item %q has a bad price: %w", i.name, err)
		}

		_, err = db.ExecContext(ctx,
			`INSERT INTO items (name, category_id, description, price, stock_quantity, image_url) VALUES ($1, $2, $3, $4, $5, $6)`,
			i.name, categoryIDs[i.category], i.desc, price, i.stock, i.imageURL,
		)
		if err != nil {
			return fmt.Errorf("seeding item %q: %w", i.name, err)
		}
	}

	return nil
}
