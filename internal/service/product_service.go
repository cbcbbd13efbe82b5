package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/clonecoding/storefront/internal/apperrors"
	"github.com/clonecoding/storefront/internal/models"
	"github.com/clonecoding/storefront/internal/repository"
)

const (
	MinPageLimit = 1
	MaxPageLimit = 100
)

type ProductRepository interface {
	List(ctx context.Context, filter models.ListProductsFilter) (*models.ListProductsResult, error)
	ListBrands(ctx context.Context, filter models.ListBrandsFilter) (*models.ListBrandsResult, error)
	Upsert(ctx context.Context, product *models.Product) error
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) ListProducts(ctx context.Context, filter models.ListProductsFilter) (*models.ListProductsResult, error) {
	if err := validateLimit(filter.Limit); err != nil {
		return nil, err
	}
	if filter.SortBy != "" && !filter.SortBy.Valid() {
		return nil, apperrors.NewValidationError("sortby", fmt.Sprintf("unknown sort order %q", filter.SortBy))
	}
	for _, g := range filter.Genders {
		if !g.Valid() {
			return nil, apperrors.NewValidationError("gender", fmt.Sprintf("unknown gender %q", g))
		}
	}
	if filter.MinPrice != nil && *filter.MinPrice < 0 {
		return nil, apperrors.NewValidationError("minPrice", "must not be negative")
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, apperrors.NewValidationError("maxPrice", "must not be less than minPrice")
	}

	result, err := s.repo.List(ctx, filter)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewValidationError("startAfter", "unknown product")
		}
		return nil, err
	}
	return result, nil
}

func (s *ProductService) ListBrands(ctx context.Context, filter models.ListBrandsFilter) (*models.ListBrandsResult, error) {
	if err := validateLimit(filter.Limit); err != nil {
		return nil, err
	}
	return s.repo.ListBrands(ctx, filter)
}

// UpsertProduct is used by the seed command.
func (s *ProductService) UpsertProduct(ctx context.Context, product *models.Product) error {
	if product.Name == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	if !models.Gender(product.Gender).Valid() {
		return apperrors.NewValidationError("gender", fmt.Sprintf("unknown gender %q", product.Gender))
	}
	if product.Price < 0 {
		return apperrors.NewValidationError("price", "must not be negative")
	}
	category, err := models.ParseCategory(product.Category)
	if err != nil || category == models.CategoryAll {
		return apperrors.NewValidationError("category", fmt.Sprintf("unknown category %q", product.Category))
	}
	product.Category = string(category)
	return s.repo.Upsert(ctx, product)
}

func validateLimit(limit int) error {
	if limit < MinPageLimit || limit > MaxPageLimit {
		return apperrors.NewValidationError("limit", fmt.Sprintf("must be between %d and %d", MinPageLimit, MaxPageLimit))
	}
	return nil
}
