package shop

import (
	"testing"

	"github.com/clonecoding/storefront/internal/models"
	"github.com/clonecoding/storefront/internal/paging"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestBuildProductQuery(t *testing.T) {
	f := Filter{
		SortOrder: models.SortPriceAsc,
		Genders:   []models.Gender{models.GenderMale, models.GenderUnisex, models.GenderMale},
		Brands:    []string{"Nike", "", "Adidas"},
		MinPrice:  intPtr(10000),
		MaxPrice:  intPtr(50000),
	}
	cursor := paging.NewCursor(20).Advance(strPtr("prod_20"))

	q := BuildProductQuery(f, models.CategoryShoes, cursor)

	assert.Equal(t, "priceAsc", q.SortBy)
	assert.Equal(t, "M;FM", q.Gender)
	assert.Equal(t, "Nike;Adidas", q.Brand)
	assert.Equal(t, "Shoes", q.Category)
	assert.Equal(t, 10000, *q.MinPrice)
	assert.Equal(t, 50000, *q.MaxPrice)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, "prod_20", q.StartAfter)
}

func TestBuildProductQueryDefaults(t *testing.T) {
	q := BuildProductQuery(DefaultFilter(), models.CategoryAll, paging.NewCursor(20))

	assert.Equal(t, "like", q.SortBy)
	assert.Empty(t, q.Gender)
	assert.Empty(t, q.Brand)
	assert.Empty(t, q.Category)
	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.MaxPrice)
	assert.Empty(t, q.StartAfter)
}

func TestFilterEqual(t *testing.T) {
	a := Filter{SortOrder: models.SortByName, Brands: []string{"Nike"}, MinPrice: intPtr(1)}
	b := Filter{SortOrder: models.SortByName, Brands: []string{"Nike"}, MinPrice: intPtr(1)}
	assert.True(t, a.Equal(b))

	b.MinPrice = intPtr(2)
	assert.False(t, a.Equal(b))

	b.MinPrice = nil
	assert.False(t, a.Equal(b))
}
