package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/freshmart/supermarket-inventory/internal/models"
	"github.com/freshmart/supermarket-inventory/internal/utils"
	"github.com/shopspring/decimal"
)

type ItemRepository interface {
	ListWithCategory(ctx context.Context) ([]*models.Item, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*models.Item, error)
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id int64) error
}

type itemRepository struct {
	DB *sql.DB
}

func NewItemRepo(db *sql.DB) ItemRepository {
	return &itemRepository{DB: db}
}

// Prices live in the store as DECIMAL(10,2). They are scanned into
// decimal.Decimal and surfaced as float64 on the model.

func (r *itemRepository) ListWithCategory(ctx context.Context) ([]*models.Item, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT i.id, i.name, i.category_id, COALESCE(i.description, ''), i.price, i.stock_quantity, COALESCE(i.image_url, ''), c.name AS category_name
		FROM items i
		JOIN categories c ON i.category_id = c.id
		ORDER BY i.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}

	defer rows.Close()

	var items []*models.Item

	for rows.Next() {
		item := &models.Item{}

		var price decimal.Decimal

		err := rows.Scan(&item.ID, &item.Name, &item.CategoryID, &item.Description, &price, &item.StockQuantity, &item.ImageURL, &item.CategoryName)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		item.Price = price.InexactFloat64()
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*models.Item, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, category_id, COALESCE(description, ''), price, stock_quantity, COALESCE(image_url, '')
		FROM items
		WHERE category_id = $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("querying items for category %d: %w", categoryID, err)
	}

	defer rows.Close()

	var items []*models.Item

	for rows.Next() {
		item := &models.Item{}

		var price decimal.Decimal

		err := rows.Scan(&item.ID, &item.Name, &item.CategoryID, &item.Description, &price, &item.StockQuantity, &item.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		item.Price = price.InexactFloat64()
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	item := &models.Item{}

	var price decimal.Decimal

	query := `
		SELECT i.id, i.name, i.category_id, COALESCE(i.description, ''), i.price, i.stock_quantity, COALESCE(i.image_url, ''), c.name AS category_name
		FROM items i
		JOIN categories c ON i.category_id = c.id
		WHERE i.id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&item.ID, &item.Name, &item.CategoryID, &item.Description, &price, &item.StockQuantity, &item.ImageURL, &item.CategoryName)
	if err != nil {
		return nil, fmt.Errorf("querying item %d: %w", id, err)
	}

	item.Price = price.InexactFloat64()

	return item, nil
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO items (name, category_id, description, price, stock_quantity, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	price := decimal.NewFromFloat(item.Price).Round(2)

	return r.DB.QueryRowContext(dbCtx, query, item.Name, item.CategoryID, item.Description, price, item.StockQuantity, item.ImageURL).Scan(&item.ID)
}

func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE items SET name = $1, category_id = $2, description = $3, price = $4, stock_quantity = $5, image_url = $6
		WHERE id = $7
	`

	price := decimal.NewFromFloat(item.Price).Round(2)

	_, err := r.DB.ExecContext(dbCtx, query, item.Name, item.CategoryID, item.Description, price, item.StockQuantity, item.ImageURL, item.ID)

	return err
}

// Delete is intentionally unconditional: deleting an id with no matching row
// is a no-op, not an error.
func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `DELETE FROM items WHERE id = $1`, id)

	return err
}
