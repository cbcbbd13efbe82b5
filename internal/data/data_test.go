package data

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clonecoding/storefront/internal/catalogclient"
	"github.com/clonecoding/storefront/internal/datastate"
	"github.com/clonecoding/storefront/internal/models"
	"github.com/clonecoding/storefront/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	productQueries []catalogclient.ProductQuery
	products       *models.ProductsPage
	brands         *models.BrandsPage
	err            error
}

func (f *fakeCatalog) GetProducts(_ context.Context, q catalogclient.ProductQuery) (*models.ProductsPage, error) {
	f.productQueries = append(f.productQueries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeCatalog) GetUniqueBrands(_ context.Context, _ catalogclient.BrandQuery) (*models.BrandsPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.brands, nil
}

func drain[T any](ch <-chan datastate.State[T]) []datastate.State[T] {
	var out []datastate.State[T]
	for st := range ch {
		out = append(out, st)
	}
	return out
}

func kinds[T any](states []datastate.State[T]) []string {
	out := make([]string, len(states))
	for i, st := range states {
		out[i] = st.Kind.String()
	}
	return out
}

type failingStore struct{}

func (failingStore) Insert(context.Context, *models.NewsComment) (int64, error) {
	return 0, errors.New("disk full")
}

func (failingStore) ListByNewsID(context.Context, int) ([]models.NewsComment, error) {
	return nil, errors.New("disk full")
}

func TestFetchProducts(t *testing.T) {
	next := "p2"
	api := &fakeCatalog{products: &models.ProductsPage{
		Products:       []models.Product{{ID: "p1"}, {ID: "p2"}},
		NextStartAfter: &next,
	}}
	repo := NewProductRepository(api)

	states := drain(repo.FetchProducts(t.Context(), catalogclient.ProductQuery{Limit: 20}))
	assert.Equal(t, []string{"loading", "success", "loading"}, kinds(states))
	assert.True(t, states[0].Loading)
	assert.False(t, states[2].Loading)
	assert.Len(t, states[1].Data.Products, 2)
	assert.Equal(t, 20, api.productQueries[0].Limit)
}

func TestFetchBrandsError(t *testing.T) {
	repo := NewProductRepository(&fakeCatalog{err: errors.New("bad gateway")})

	states := drain(repo.FetchBrands(t.Context(), catalogclient.BrandQuery{Limit: 40}))
	assert.Equal(t, []string{"loading", "error", "loading"}, kinds(states))
	assert.Equal(t, "bad gateway", states[1].Message)
}

func TestCommentsNewestFirst(t *testing.T) {
	repo := NewNewsRepository(memory.NewCommentStore())
	t1 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Second)

	for _, c := range []models.NewsComment{
		{NewsID: 7, Writer: "Tester", Comment: "C1", Datetime: &t1},
		{NewsID: 7, Writer: "Tester", Comment: "C2", Datetime: &t2},
	} {
		states := drain(repo.AddComment(t.Context(), c))
		require.Equal(t, []string{"loading", "success", "loading"}, kinds(states))
		assert.True(t, states[1].Data)
	}

	res := datastate.Collect(repo.ListComments(t.Context(), 7), nil)
	require.True(t, res.OK)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "C2", res.Data[0].Comment)
	assert.Equal(t, "C1", res.Data[1].Comment)
}

func TestCommentStoreFailure(t *testing.T) {
	repo := NewNewsRepository(failingStore{})

	add := drain(repo.AddComment(t.Context(), models.NewsComment{NewsID: 1}))
	assert.Equal(t, []string{"loading", "error", "loading"}, kinds(add))
	assert.Equal(t, "disk full", add[1].Message)

	list := datastate.Collect(repo.ListComments(t.Context(), 1), nil)
	assert.False(t, list.OK)
	assert.Equal(t, "disk full", list.Message)
}

func TestListCommentsEmpty(t *testing.T) {
	res := datastate.Collect(NewNewsRepository(memory.NewCommentStore()).ListComments(t.Context(), 3), nil)
	require.True(t, res.OK)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}
