// Package data exposes the catalog and the comment store as datastate
// streams for the controllers.
package data

import (
	"context"

	"github.com/clonecoding/storefront/internal/catalogclient"
	"github.com/clonecoding/storefront/internal/datastate"
	"github.com/clonecoding/storefront/internal/models"
)

// CatalogAPI is the part of the catalog client the data layer uses.
type CatalogAPI interface {
	GetProducts(ctx context.Context, q catalogclient.ProductQuery) (*models.ProductsPage, error)
	GetUniqueBrands(ctx context.Context, q catalogclient.BrandQuery) (*models.BrandsPage, error)
}

type ProductRepository struct {
	api CatalogAPI
}

func NewProductRepository(api CatalogAPI) *ProductRepository {
	return &ProductRepository{api: api}
}

func (r *ProductRepository) FetchProducts(ctx context.Context, q catalogclient.ProductQuery) <-chan datastate.State[models.ProductsPage] {
	return datastate.Run(ctx, func(ctx context.Context) (models.ProductsPage, error) {
		page, err := r.api.GetProducts(ctx, q)
		if err != nil {
			return models.ProductsPage{}, err
		}
		return *page, nil
	})
}

func (r *ProductRepository) FetchBrands(ctx context.Context, q catalogclient.BrandQuery) <-chan datastate.State[models.BrandsPage] {
	return datastate.Run(ctx, func(ctx context.Context) (models.BrandsPage, error) {
		page, err := r.api.GetUniqueBrands(ctx, q)
		if err != nil {
			return models.BrandsPage{}, err
		}
		return *page, nil
	})
}
