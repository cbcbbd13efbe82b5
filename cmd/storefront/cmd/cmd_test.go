package cmd

import (
	"bytes"
	"testing"

	"github.com/clonecoding/storefront/internal/models"
	"github.com/clonecoding/storefront/internal/paging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopFilterFromFlags(t *testing.T) {
	saved := shopOpts
	t.Cleanup(func() { shopOpts = saved })

	shopOpts.sort = "priceDesc"
	shopOpts.genders = []string{"F", "FM"}
	shopOpts.brands = []string{"Nike"}
	shopOpts.category = "bag"
	shopOpts.minPrice = -1
	shopOpts.maxPrice = 50000

	f, category, err := shopFilter()
	require.NoError(t, err)
	assert.Equal(t, models.SortPriceDesc, f.SortOrder)
	assert.Equal(t, []models.Gender{models.GenderFemale, models.GenderUnisex}, f.Genders)
	assert.Equal(t, models.CategoryBag, category)
	assert.Nil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 50000, *f.MaxPrice)

	shopOpts.genders = []string{"X"}
	_, _, err = shopFilter()
	assert.Error(t, err)
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, "valid", verdict(true, true))
	assert.Equal(t, "incomplete", verdict(false, true))
	assert.Equal(t, "invalid", verdict(false, false))
}

func TestParseNewsID(t *testing.T) {
	id, err := parseNewsID("7")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	_, err = parseNewsID("0")
	assert.Error(t, err)
	_, err = parseNewsID("seven")
	assert.Error(t, err)
}

func TestPrintProducts(t *testing.T) {
	next := "prod_2"
	var buf bytes.Buffer
	printProducts(&buf, paging.Snapshot[models.Product]{
		Items:  []models.Product{{ID: "prod_2", Name: "Samba", Brand: "Adidas", Gender: "FM", Category: "Shoes", Price: 129000}},
		Cursor: paging.NewCursor(20).Advance(&next),
	})

	out := buf.String()
	assert.Contains(t, out, "129,000원")
	assert.Contains(t, out, `1 products, next start after "prod_2"`)
}
