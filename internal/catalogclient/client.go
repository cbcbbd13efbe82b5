// Package catalogclient talks to the catalog endpoints getProducts and
// getUniqueBrands.
package catalogclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/clonecoding/storefront/internal/apperrors"
	"github.com/clonecoding/storefront/internal/id"
	"github.com/clonecoding/storefront/internal/models"
)

// DefaultTimeout applies to the whole exchange, connect to body.
const DefaultTimeout = 60 * time.Second

const (
	productsPath = "/getProducts"
	brandsPath   = "/getUniqueBrands"

	maxErrorBody = 64 << 10
)

// ProductQuery holds the getProducts parameters. Empty strings and nil
// pointers are left out of the request.
type ProductQuery struct {
	SortBy     string
	Gender     string
	Brand      string
	Category   string
	MinPrice   *int
	MaxPrice   *int
	Limit      int
	StartAfter string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	setString(v, "sortby", q.SortBy)
	setString(v, "gender", q.Gender)
	setString(v, "brand", q.Brand)
	setString(v, "category", q.Category)
	setInt(v, "minPrice", q.MinPrice)
	setInt(v, "maxPrice", q.MaxPrice)
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	setString(v, "startAfter", q.StartAfter)
	return v
}

type BrandQuery struct {
	Limit      int
	StartAfter string
}

func (q BrandQuery) values() url.Values {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	setString(v, "startAfter", q.StartAfter)
	return v
}

type productsResponse struct {
	Products       []models.Product `json:"products"`
	NextStartAfter *string          `json:"nextStartAfter"`
}

type brandsResponse struct {
	Brands         []string `json:"brands"`
	NextStartAfter *string  `json:"nextStartAfter"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport client. Its Timeout is left as given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) GetProducts(ctx context.Context, q ProductQuery) (*models.ProductsPage, error) {
	var resp productsResponse
	if err := c.get(ctx, productsPath, q.values(), &resp); err != nil {
		return nil, err
	}

	products := resp.Products
	if products == nil {
		products = []models.Product{}
	}
	return &models.ProductsPage{
		Products:       products,
		NextStartAfter: resp.NextStartAfter,
	}, nil
}

func (c *Client) GetUniqueBrands(ctx context.Context, q BrandQuery) (*models.BrandsPage, error) {
	var resp brandsResponse
	if err := c.get(ctx, brandsPath, q.values(), &resp); err != nil {
		return nil, err
	}

	brands := resp.Brands
	if brands == nil {
		brands = []string{}
	}
	return &models.BrandsPage{
		Brands:         brands,
		NextStartAfter: resp.NextStartAfter,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	operation := strings.TrimPrefix(path, "/")
	endpoint := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	requestID := id.NewRequestID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	logger := slog.With("operation", operation, "request_id", requestID)
	logger.DebugContext(ctx, "catalog request", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return apperrors.NewTimeoutError(operation)
		}
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.WarnContext(ctx, "catalog returned error status", "status", resp.StatusCode)
		return apperrors.NewUpstreamError(operation, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value *int) {
	if value != nil {
		v.Set(key, strconv.Itoa(*value))
	}
}
