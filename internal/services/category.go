package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	appErrors "github.com/freshmart/supermarket-inventory/internal/errors"
	"github.com/freshmart/supermarket-inventory/internal/models"
	repository "github.com/freshmart/supermarket-inventory/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

type CategoryService interface {
	List(ctx context.Context) ([]*models.Category, error)
	Get(ctx context.Context, rawID string) (*models.CategoryDetail, error)
	Create(ctx context.Context, form *models.CategoryForm) (*models.Category, error)
	Update(ctx context.Context, rawID string, form *models.CategoryForm) (*models.Category, error)
	Delete(ctx context.Context, rawID string) error
}

type categoryService struct {
	categories repository.CategoryRepository
	items      repository.ItemRepository
	validate   *validator.Validate
	sanitizer  *bluemonday.Policy
}

func NewCategoryService(categories repository.CategoryRepository, items repository.ItemRepository) CategoryService {
	return &categoryService{
		categories: categories,
		items:      items,
		validate:   validator.New(),
		sanitizer:  bluemonday.UGCPolicy(),
	}
}

func (s *categoryService) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categories.ListWithItemCounts(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}

func (s *categoryService) Get(ctx context.Context, rawID string) (*models.CategoryDetail, error) {
	id, err := parseID(rawID, "category")
	if err != nil {
		return nil, err
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Category not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch category").WithError(err)
	}

	items, err := s.items.ListByCategory(ctx, id)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch category items").WithError(err)
	}

	return &models.CategoryDetail{Category: category, Items: items}, nil
}

func (s *categoryService) Create(ctx context.Context, form *models.CategoryForm) (*models.Category, error) {
	form.Name = strings.TrimSpace(form.Name)

	if err := s.validate.Struct(form); err != nil {
		return nil, appErrors.ValidationError("Category name is required").WithError(err)
	}

	category := &models.Category{
		Name:        form.Name,
		Description: s.sanitizer.Sanitize(form.Description),
		ImageURL:    imageOrPlaceholder(form.ImageURL, models.PlaceholderCategoryImage),
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.DuplicateNameError("A category with this name already exists").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create category").WithError(err)
	}

	return category, nil
}

// Update overwrites name, description and image_url. Beyond name trimming and
// the image placeholder there is no validation here; constraint violations
// surface as store errors.
func (s *categoryService) Update(ctx context.Context, rawID string, form *models.CategoryForm) (*models.Category, error) {
	id, err := parseID(rawID, "category")
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		ID:          id,
		Name:        strings.TrimSpace(form.Name),
		Description: s.sanitizer.Sanitize(form.Description),
		ImageURL:    imageOrPlaceholder(form.ImageURL, models.PlaceholderCategoryImage),
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, appErrors.DatabaseError("Failed to update category").WithError(err)
	}

	return category, nil
}

// Delete removes the category; the store cascades the delete to its items.
func (s *categoryService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID, "category")
	if err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return appErrors.DatabaseError("Failed to delete category").WithError(err)
	}

	return nil
}
