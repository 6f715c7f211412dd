package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	appErrors "github.com/freshmart/supermarket-inventory/internal/errors"
	"github.com/freshmart/supermarket-inventory/internal/models"
	repository "github.com/freshmart/supermarket-inventory/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ItemService interface {
	List(ctx context.Context) ([]*models.Item, error)
	NewForm(ctx context.Context) ([]*models.Category, error)
	Get(ctx context.Context, rawID string) (*models.Item, error)
	EditForm(ctx context.Context, rawID string) (*models.ItemFormData, error)
	Create(ctx context.Context, form *models.ItemForm) (*models.Item, error)
	Update(ctx context.Context, rawID string, form *models.ItemForm) (*models.Item, error)
	Delete(ctx context.Context, rawID string) error
}

type itemService struct {
	items      repository.ItemRepository
	categories repository.CategoryRepository
	validate   *validator.Validate
	sanitizer  *bluemonday.Policy
}

func NewItemService(items repository.ItemRepository, categories repository.CategoryRepository) ItemService {
	return &itemService{
		items:      items,
		categories: categories,
		validate:   validator.New(),
		sanitizer:  bluemonday.UGCPolicy(),
	}
}

func (s *itemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.items.ListWithCategory(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch items").WithError(err)
	}

	return items, nil
}

// NewForm returns the category list backing the selection control on the
// new-item form.
func (s *itemService) NewForm(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}

func (s *itemService) Get(ctx context.Context, rawID string) (*models.Item, error) {
	id, err := parseID(rawID, "item")
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch item").WithError(err)
	}

	return item, nil
}

// EditForm fetches the category list and the target item concurrently; the
// two reads are independent.
func (s *itemService) EditForm(ctx context.Context, rawID string) (*models.ItemFormData, error) {
	id, err := parseID(rawID, "item")
	if err != nil {
		return nil, err
	}

	var (
		categories []*models.Category
		item       *models.Item
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		categories, err = s.categories.List(gctx)
		if err != nil {
			return appErrors.DatabaseError("Failed to fetch categories").WithError(err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		item, err = s.items.GetByID(gctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.NotFoundError("Item not found").WithError(err)
			}

			return appErrors.DatabaseError("Failed to fetch item").WithError(err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.ItemFormData{Categories: categories, Item: item}, nil
}

func (s *itemService) Create(ctx context.Context, form *models.ItemForm) (*models.Item, error) {
	item, err := s.itemFromForm(form)
	if err != nil {
		return nil, err
	}

	if err := s.items.Create(ctx, item); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, appErrors.InvalidCategoryError("Invalid category selected").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create item").WithError(err)
	}

	return item, nil
}

func (s *itemService) Update(ctx context.Context, rawID string, form *models.ItemForm) (*models.Item, error) {
	id, err := parseID(rawID, "item")
	if err != nil {
		return nil, err
	}

	item, err := s.itemFromForm(form)
	if err != nil {
		return nil, err
	}

	item.ID = id

	if err := s.items.Update(ctx, item); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, appErrors.InvalidCategoryError("Invalid category selected").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update item").WithError(err)
	}

	return item, nil
}

// Delete removes the item unconditionally; deleting a nonexistent id is a
// no-op.
func (s *itemService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID, "item")
	if err != nil {
		return err
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return appErrors.DatabaseError("Failed to delete item").WithError(err)
	}

	return nil
}

// itemFromForm validates the submitted values and coerces the numeric fields.
// Coercion failures are form-level validation errors, never server errors.
func (s *itemService) itemFromForm(form *models.ItemForm) (*models.Item, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.CategoryID = strings.TrimSpace(form.CategoryID)
	form.Price = strings.TrimSpace(form.Price)
	form.StockQuantity = strings.TrimSpace(form.StockQuantity)

	if err := s.validate.Struct(form); err != nil {
		return nil, appErrors.ValidationError("All fields except image URL are required").WithError(err)
	}

	categoryID, err := strconv.ParseInt(form.CategoryID, 10, 64)
	if err != nil || categoryID <= 0 {
		return nil, appErrors.InvalidCategoryError("Invalid category selected")
	}

	price, err := decimal.NewFromString(form.Price)
	if err != nil || price.IsNegative() {
		return nil, appErrors.ValidationError("Price must be a valid amount")
	}

	stock, err := strconv.Atoi(form.StockQuantity)
	if err != nil {
		return nil, appErrors.ValidationError("Stock quantity must be a whole number")
	}

	if stock < 0 {
		return nil, appErrors.ValidationError("Stock quantity cannot be negative")
	}

	return &models.Item{
		Name:          form.Name,
		CategoryID:    categoryID,
		Description:   s.sanitizer.Sanitize(form.Description),
		Price:         price.Round(2).InexactFloat64(),
		StockQuantity: stock,
		ImageURL:      imageOrPlaceholder(form.ImageURL, models.PlaceholderItemImage),
	}, nil
}
