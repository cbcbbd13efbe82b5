package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/clonecoding/storefront/internal/catalogclient"
	"github.com/clonecoding/storefront/internal/data"
	"github.com/clonecoding/storefront/internal/format"
	"github.com/clonecoding/storefront/internal/models"
	"github.com/clonecoding/storefront/internal/paging"
	"github.com/clonecoding/storefront/internal/shop"
	"github.com/spf13/cobra"
)

var shopOpts struct {
	sort     string
	genders  []string
	brands   []string
	category string
	minPrice int
	maxPrice int
	pages    int
}

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse products from the catalog with filters",
	RunE:  runShop,
}

var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List catalog brands",
	RunE:  runBrands,
}

func init() {
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(brandsCmd)

	f := shopCmd.Flags()
	f.StringVar(&shopOpts.sort, "sort", string(models.SortByLikes), "like, name, priceAsc or priceDesc")
	f.StringSliceVar(&shopOpts.genders, "gender", nil, "M, F or FM; repeatable")
	f.StringSliceVar(&shopOpts.brands, "brand", nil, "brand name; repeatable")
	f.StringVar(&shopOpts.category, "category", "", "category name, empty for all")
	f.IntVar(&shopOpts.minPrice, "min-price", -1, "lowest price, negative for none")
	f.IntVar(&shopOpts.maxPrice, "max-price", -1, "highest price, negative for none")
	f.IntVar(&shopOpts.pages, "pages", 1, "number of pages to load")

	brandsCmd.Flags().IntVar(&shopOpts.pages, "pages", 1, "number of pages to load")
}

func newShopController() *shop.Controller {
	client := catalogclient.NewClient(cfg.CatalogBaseURL)
	return shop.NewController(data.NewProductRepository(client), cfg.ProductPageSize, cfg.BrandPageSize)
}

func shopFilter() (shop.Filter, models.Category, error) {
	category, err := models.ParseCategory(shopOpts.category)
	if err != nil {
		return shop.Filter{}, "", err
	}

	sortOrder := models.SortOrder(shopOpts.sort)
	if !sortOrder.Valid() {
		return shop.Filter{}, "", fmt.Errorf("unknown sort order %q", shopOpts.sort)
	}

	f := shop.Filter{SortOrder: sortOrder, Brands: shopOpts.brands}
	for _, g := range shopOpts.genders {
		gender := models.Gender(g)
		if !gender.Valid() {
			return shop.Filter{}, "", fmt.Errorf("unknown gender %q", g)
		}
		f.Genders = append(f.Genders, gender)
	}
	if shopOpts.minPrice >= 0 {
		f.MinPrice = &shopOpts.minPrice
	}
	if shopOpts.maxPrice >= 0 {
		f.MaxPrice = &shopOpts.maxPrice
	}
	return f, category, nil
}

func runShop(cmd *cobra.Command, _ []string) error {
	filter, category, err := shopFilter()
	if err != nil {
		return err
	}

	ctx := context.Background()
	c := newShopController()
	c.Select(ctx, filter, category)
	for i := 1; i < shopOpts.pages; i++ {
		c.LoadMoreProducts(ctx)
	}

	st := c.Snapshot()
	if st.Products.Status == paging.StatusFailed {
		return fmt.Errorf("failed to load products: %s", st.Products.LastError)
	}
	printProducts(cmd.OutOrStdout(), st.Products)
	return nil
}

func runBrands(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	c := newShopController()
	for range max(shopOpts.pages, 1) {
		c.LoadMoreBrands(ctx)
	}

	st := c.Snapshot().Brands
	if st.Status == paging.StatusFailed {
		return fmt.Errorf("failed to load brands: %s", st.LastError)
	}
	out := cmd.OutOrStdout()
	for _, b := range st.Items {
		fmt.Fprintln(out, b)
	}
	fmt.Fprintf(out, "\n%d brands, next start after %q\n", len(st.Items), st.Cursor.StartAfter())
	return nil
}

func printProducts(out io.Writer, s paging.Snapshot[models.Product]) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBRAND\tGENDER\tCATEGORY\tPRICE\tLIKES")
	for _, p := range s.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			p.ID, p.Name, p.Brand, p.Gender, p.Category, format.Won(p.Price), p.LikeCount)
	}
	_ = tw.Flush()
	fmt.Fprintf(out, "\n%d products, next start after %q\n", len(s.Items), s.Cursor.StartAfter())
}
