package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/freshmart/supermarket-inventory/internal/models"
	"github.com/freshmart/supermarket-inventory/internal/utils"
)

type CategoryRepository interface {
	ListWithItemCounts(ctx context.Context) ([]*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
}

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepo(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

// ListWithItemCounts returns every category together with the number of items
// referencing it. The LEFT JOIN keeps zero-item categories in the result.
func (r *categoryRepository) ListWithItemCounts(ctx context.Context) ([]*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.name, COALESCE(c.description, ''), COALESCE(c.image_url, ''), COUNT(i.id) AS item_count
		FROM categories c
		LEFT JOIN items i ON c.id = i.category_id
		GROUP BY c.id
		ORDER BY c.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}

	defer rows.Close()

	var categories []*models.Category

	for rows.Next() {
		category := &models.Category{}

		err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.ImageURL, &category.ItemCount)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, COALESCE(description, ''), COALESCE(image_url, '')
		FROM categories
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}

	defer rows.Close()

	var categories []*models.Category

	for rows.Next() {
		category := &models.Category{}

		err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	category := &models.Category{}

	query := `
		SELECT id, name, COALESCE(description, ''), COALESCE(image_url, '')
		FROM categories
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&category.ID, &category.Name, &category.Description, &category.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("querying category %d: %w", id, err)
	}

	return category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO categories (name, description, image_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return r.DB.QueryRowContext(dbCtx, query, category.Name, category.Description, category.ImageURL).Scan(&category.ID)
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE categories SET name = $1, description = $2, image_url = $3
		WHERE id = $4
	`

	_, err := r.DB.ExecContext(dbCtx, query, category.Name, category.Description, category.ImageURL, category.ID)

	return err
}

// Delete removes the category; the ON DELETE CASCADE constraint removes its
// items with it.
func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `DELETE FROM categories WHERE id = $1`, id)

	return err
}
