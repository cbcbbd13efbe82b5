package models

type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Price     int    `json:"price"`
	Brand     string `json:"brand"`
	Category  string `json:"category"`
	ImgPath   string `json:"imgPath"`
	LikeCount int    `json:"likeCount"`
}

// ProductsPage is one page of a product listing. NextStartAfter is nil when
// the catalog did not hand out a usable cursor.
type ProductsPage struct {
	Products       []Product
	NextStartAfter *string
}

type BrandsPage struct {
	Brands         []string
	NextStartAfter *string
}

// ListProductsFilter is the server-side form of a product listing request.
type ListProductsFilter struct {
	SortBy     SortOrder
	Genders    []Gender
	Brands     []string
	Category   Category
	MinPrice   *int
	MaxPrice   *int
	Limit      int
	StartAfter *string
}

type ListBrandsFilter struct {
	Limit      int
	StartAfter *string
}

type ListProductsResult struct {
	Products   []Product
	HasMore    bool
	NextCursor *string
}

type ListBrandsResult struct {
	Brands     []string
	HasMore    bool
	NextCursor *string
}
