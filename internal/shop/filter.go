// Package shop drives the product and brand listings of the shop screen.
package shop

import (
	"slices"

	"github.com/clonecoding/storefront/internal/catalogclient"
	"github.com/clonecoding/storefront/internal/models"
	"github.com/clonecoding/storefront/internal/paging"
)

// Filter is the user's current product filter. Genders and Brands are sets;
// order is kept only so that requests are stable.
type Filter struct {
	SortOrder models.SortOrder
	Genders   []models.Gender
	Brands    []string
	MinPrice  *int
	MaxPrice  *int
}

func DefaultFilter() Filter {
	return Filter{SortOrder: models.SortByLikes}
}

// Normalize drops duplicate and empty set members.
func (f Filter) Normalize() Filter {
	out := f
	out.Genders = uniq(f.Genders)
	out.Brands = uniq(f.Brands)
	return out
}

func (f Filter) Equal(o Filter) bool {
	return f.SortOrder == o.SortOrder &&
		slices.Equal(f.Genders, o.Genders) &&
		slices.Equal(f.Brands, o.Brands) &&
		equalInt(f.MinPrice, o.MinPrice) &&
		equalInt(f.MaxPrice, o.MaxPrice)
}

// BuildProductQuery merges the filter, the category and the cursor into one
// catalog request. Set members are joined with ";".
func BuildProductQuery(f Filter, category models.Category, cursor paging.Cursor) catalogclient.ProductQuery {
	f = f.Normalize()

	genders := make([]string, len(f.Genders))
	for i, g := range f.Genders {
		genders[i] = string(g)
	}

	return catalogclient.ProductQuery{
		SortBy:     string(f.SortOrder),
		Gender:     models.JoinValues(genders),
		Brand:      models.JoinValues(f.Brands),
		Category:   string(category),
		MinPrice:   f.MinPrice,
		MaxPrice:   f.MaxPrice,
		Limit:      cursor.PageSize,
		StartAfter: cursor.StartAfter(),
	}
}

func uniq[T comparable](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	var zero T
	out := make([]T, 0, len(in))
	for _, v := range in {
		if v != zero && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func equalInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
