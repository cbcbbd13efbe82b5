package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/clonecoding/storefront/internal/id"
	"github.com/clonecoding/storefront/internal/models"
	"github.com/jackc/pgx/v5"
)

const productColumns = "id, name, gender, price, brand, category, img_path, like_count"

// productOrder describes one sort order: its ORDER BY clause and the
// keyset condition that selects rows after a cursor row.
type productOrder struct {
	column string
	desc   bool
}

var productOrders = map[models.SortOrder]productOrder{
	models.SortByLikes:   {column: "like_count", desc: true},
	models.SortByName:    {column: "name"},
	models.SortPriceAsc:  {column: "price"},
	models.SortPriceDesc: {column: "price", desc: true},
}

func (o productOrder) orderBy() string {
	dir := "ASC"
	if o.desc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s, id ASC", o.column, dir)
}

// after builds "column beyond the cursor, or tied and a later id".
func (o productOrder) after(key, idArg string) string {
	cmp := ">"
	if o.desc {
		cmp = "<"
	}
	return fmt.Sprintf("(%s %s %s OR (%s = %s AND id > %s))", o.column, cmp, key, o.column, key, idArg)
}

// cursorKey is the sort column value of the cursor row.
func (o productOrder) cursorKey(p *models.Product) any {
	switch o.column {
	case "name":
		return p.Name
	case "price":
		return p.Price
	default:
		return p.LikeCount
	}
}

type statement struct {
	conds []string
	args  []any
}

func (s *statement) arg(v any) string {
	s.args = append(s.args, v)
	return "$" + strconv.Itoa(len(s.args))
}

func (s *statement) where(cond string) {
	s.conds = append(s.conds, cond)
}

func (s *statement) whereClause() string {
	if len(s.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(s.conds, " AND ")
}

type ProductRepository struct {
	db Querier
}

func NewProductRepository(db Querier) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns one page of products. Paging is keyset based: StartAfter is
// the id of the last product of the previous page. One extra row is read to
// learn whether another page follows.
func (r *ProductRepository) List(ctx context.Context, filter models.ListProductsFilter) (*models.ListProductsResult, error) {
	order, ok := productOrders[filter.SortBy]
	if !ok {
		order = productOrders[models.SortByLikes]
	}

	var st statement
	if len(filter.Genders) > 0 {
		genders := make([]string, len(filter.Genders))
		for i, g := range filter.Genders {
			genders[i] = string(g)
		}
		st.where("gender = ANY(" + st.arg(genders) + ")")
	}
	if len(filter.Brands) > 0 {
		st.where("brand = ANY(" + st.arg(filter.Brands) + ")")
	}
	if filter.Category != models.CategoryAll {
		st.where("category = " + st.arg(string(filter.Category)))
	}
	if filter.MinPrice != nil {
		st.where("price >= " + st.arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		st.where("price <= " + st.arg(*filter.MaxPrice))
	}
	if filter.StartAfter != nil && *filter.StartAfter != "" {
		cursor, err := r.GetByID(ctx, *filter.StartAfter)
		if err != nil {
			return nil, err
		}
		st.where(order.after(st.arg(order.cursorKey(cursor)), st.arg(cursor.ID)))
	}

	sql := "SELECT " + productColumns + " FROM products" + st.whereClause() +
		" ORDER BY " + order.orderBy() + " LIMIT " + st.arg(filter.Limit+1)

	rows, err := r.db.Query(ctx, sql, st.args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, filter.Limit+1)
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	hasMore := len(products) > filter.Limit
	if hasMore {
		products = products[:filter.Limit]
	}

	var nextCursor *string
	if hasMore {
		last := products[len(products)-1].ID
		nextCursor = &last
	}

	return &models.ListProductsResult{
		Products:   products,
		HasMore:    hasMore,
		NextCursor: nextCursor,
	}, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	row := r.db.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", productID)

	var p models.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListBrands returns distinct brand names in ascending order, starting after
// the StartAfter brand.
func (r *ProductRepository) ListBrands(ctx context.Context, filter models.ListBrandsFilter) (*models.ListBrandsResult, error) {
	var st statement
	if filter.StartAfter != nil && *filter.StartAfter != "" {
		st.where("brand > " + st.arg(*filter.StartAfter))
	}
	sql := "SELECT DISTINCT brand FROM products" + st.whereClause() +
		" ORDER BY brand ASC LIMIT " + st.arg(filter.Limit+1)

	rows, err := r.db.Query(ctx, sql, st.args...)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	brands := make([]string, 0, filter.Limit+1)
	for rows.Next() {
		var brand string
		if err := rows.Scan(&brand); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, brand)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}

	hasMore := len(brands) > filter.Limit
	if hasMore {
		brands = brands[:filter.Limit]
	}

	var nextCursor *string
	if hasMore {
		last := brands[len(brands)-1]
		nextCursor = &last
	}

	return &models.ListBrandsResult{
		Brands:     brands,
		HasMore:    hasMore,
		NextCursor: nextCursor,
	}, nil
}

// Upsert inserts product or replaces the row with the same id. A product
// without an id gets a new one.
func (r *ProductRepository) Upsert(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = id.NewProductID()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			gender = EXCLUDED.gender,
			price = EXCLUDED.price,
			brand = EXCLUDED.brand,
			category = EXCLUDED.category,
			img_path = EXCLUDED.img_path,
			like_count = EXCLUDED.like_count`,
		product.ID, product.Name, product.Gender, product.Price,
		product.Brand, product.Category, product.ImgPath, product.LikeCount,
	)
	if err != nil {
		return fmt.Errorf("upsert product %s: %w", product.ID, err)
	}
	return nil
}

func scanProduct(row pgx.Row, p *models.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Gender, &p.Price, &p.Brand, &p.Category, &p.ImgPath, &p.LikeCount)
}
