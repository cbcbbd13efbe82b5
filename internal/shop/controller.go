package shop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/clonecoding/storefront/internal/catalogclient"
	"github.com/clonecoding/storefront/internal/datastate"
	"github.com/clonecoding/storefront/internal/models"
	"github.com/clonecoding/storefront/internal/paging"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultProductPageSize = 20
	DefaultBrandPageSize   = 40
)

// ProductSource is the catalog as datastate streams.
type ProductSource interface {
	FetchProducts(ctx context.Context, q catalogclient.ProductQuery) <-chan datastate.State[models.ProductsPage]
	FetchBrands(ctx context.Context, q catalogclient.BrandQuery) <-chan datastate.State[models.BrandsPage]
}

// State is a copy of everything the shop screen shows.
type State struct {
	Filter   Filter
	Category models.Category
	Products paging.Snapshot[models.Product]
	Brands   paging.Snapshot[string]
}

// Controller owns the product list, the brand list and the filter that the
// product list is loaded with. Any filter or category change restarts the
// product list from the first page.
type Controller struct {
	source ProductSource

	mu       sync.Mutex
	filter   Filter
	category models.Category

	products *paging.List[models.Product]
	brands   *paging.List[string]
}

func NewController(source ProductSource, productPageSize, brandPageSize int) *Controller {
	if productPageSize <= 0 {
		productPageSize = DefaultProductPageSize
	}
	if brandPageSize <= 0 {
		brandPageSize = DefaultBrandPageSize
	}

	c := &Controller{
		source: source,
		filter: DefaultFilter(),
	}
	c.products = paging.NewList(productPageSize, c.fetchProducts)
	c.brands = paging.NewList(brandPageSize, c.fetchBrands)
	return c
}

func (c *Controller) fetchProducts(ctx context.Context, cursor paging.Cursor) <-chan datastate.State[paging.Page[models.Product]] {
	c.mu.Lock()
	q := BuildProductQuery(c.filter, c.category, cursor)
	c.mu.Unlock()

	slog.DebugContext(ctx, "fetching products", "sortby", q.SortBy, "category", q.Category, "start_after", q.StartAfter)
	return datastate.Map(c.source.FetchProducts(ctx, q), func(p models.ProductsPage) paging.Page[models.Product] {
		return paging.Page[models.Product]{Items: p.Products, NextStartAfter: p.NextStartAfter}
	})
}

func (c *Controller) fetchBrands(ctx context.Context, cursor paging.Cursor) <-chan datastate.State[paging.Page[string]] {
	q := catalogclient.BrandQuery{Limit: cursor.PageSize, StartAfter: cursor.StartAfter()}
	return datastate.Map(c.source.FetchBrands(ctx, q), func(p models.BrandsPage) paging.Page[string] {
		return paging.Page[string]{Items: p.Brands, NextStartAfter: p.NextStartAfter}
	})
}

// Start loads the first page of products and of brands concurrently. It
// reports the failures of either load; the lists keep whatever succeeded.
func (c *Controller) Start(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		c.products.Next(ctx)
		return failure("products", c.products.Snapshot())
	})
	g.Go(func() error {
		c.brands.Next(ctx)
		return failure("brands", c.brands.Snapshot())
	})
	return g.Wait()
}

// ApplyFilter replaces the filter and reloads products from the first page.
func (c *Controller) ApplyFilter(ctx context.Context, f Filter) bool {
	c.mu.Lock()
	category := c.category
	c.mu.Unlock()
	return c.Select(ctx, f, category)
}

// ChangeCategory switches category and reloads products from the first page.
func (c *Controller) ChangeCategory(ctx context.Context, category models.Category) bool {
	c.mu.Lock()
	f := c.filter
	c.mu.Unlock()
	return c.Select(ctx, f, category)
}

// Select sets filter and category together and reloads products from the
// first page.
func (c *Controller) Select(ctx context.Context, f Filter, category models.Category) bool {
	c.mu.Lock()
	c.filter = f.Normalize()
	c.category = category
	c.mu.Unlock()

	c.products.Reset()
	return c.products.Next(ctx)
}

// LoadMoreProducts fetches the next product page, typically when the view
// nears the end of the list. It is dropped while a load is running.
func (c *Controller) LoadMoreProducts(ctx context.Context) bool {
	return c.products.Next(ctx)
}

func (c *Controller) LoadMoreBrands(ctx context.Context) bool {
	return c.brands.Next(ctx)
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	f, cat := c.filter, c.category
	c.mu.Unlock()

	return State{
		Filter:   f,
		Category: cat,
		Products: c.products.Snapshot(),
		Brands:   c.brands.Snapshot(),
	}
}

func failure[T any](what string, s paging.Snapshot[T]) error {
	if s.Status != paging.StatusFailed {
		return nil
	}
	return fmt.Errorf("load %s: %s", what, s.LastError)
}
