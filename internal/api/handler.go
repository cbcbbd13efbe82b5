package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/clonecoding/storefront/internal/apperrors"
	"github.com/clonecoding/storefront/internal/format"
	"github.com/clonecoding/storefront/internal/models"
	"github.com/clonecoding/storefront/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/nhalm/canonlog"
)

const (
	defaultProductLimit = 20
	defaultBrandLimit   = 40
)

// ProductService defines only the methods the API layer needs from the product service.
type ProductService interface {
	ListProducts(ctx context.Context, filter models.ListProductsFilter) (*models.ListProductsResult, error)
	ListBrands(ctx context.Context, filter models.ListBrandsFilter) (*models.ListBrandsResult, error)
}

type CommentService interface {
	AddComment(ctx context.Context, newsID int, writer, text string) (*models.NewsComment, error)
	ListComments(ctx context.Context, newsID int) ([]models.NewsComment, error)
}

type Handler struct {
	productSvc ProductService
	commentSvc CommentService
	now        func() time.Time
}

func NewHandler(productSvc ProductService, commentSvc CommentService) *Handler {
	return &Handler{
		productSvc: productSvc,
		commentSvc: commentSvc,
		now:        time.Now,
	}
}

// GetProducts godoc
// @Summary List products
// @Tags catalog
// @Produce json
// @Param sortby query string false "like, name, priceAsc or priceDesc"
// @Param gender query string false "M, F, FM joined with ;"
// @Param brand query string false "brands joined with ;"
// @Param category query string false "category name"
// @Param minPrice query int false "lowest price"
// @Param maxPrice query int false "highest price"
// @Param limit query int false "page size" default(20)
// @Param startAfter query string false "id of the last product of the previous page"
// @Success 200 {object} ProductsResponse
// @Failure 400 {object} ErrorResponse
// @Router /getProducts [get]
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := intParam(q.Get("limit"), "limit", defaultProductLimit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	minPrice, err := optionalIntParam(q.Get("minPrice"), "minPrice")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	maxPrice, err := optionalIntParam(q.Get("maxPrice"), "maxPrice")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	category, err := models.ParseCategory(q.Get("category"))
	if err != nil {
		invalidParam(w, r, err, "category")
		return
	}

	var genders []models.Gender
	for _, g := range models.SplitValues(q.Get("gender")) {
		genders = append(genders, models.Gender(g))
	}

	filter := models.ListProductsFilter{
		SortBy:     models.SortOrder(q.Get("sortby")),
		Genders:    genders,
		Brands:     models.SplitValues(q.Get("brand")),
		Category:   category,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Limit:      limit,
		StartAfter: ptrOrNil(q.Get("startAfter")),
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"sortby":   string(filter.SortBy),
		"category": string(filter.Category),
		"limit":    filter.Limit,
	})

	result, err := h.productSvc.ListProducts(r.Context(), filter)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProductsResponse{
		Products:       result.Products,
		NextStartAfter: derefOrEmpty(result.NextCursor),
	})
}

// GetUniqueBrands godoc
// @Summary List brands
// @Tags catalog
// @Produce json
// @Param limit query int false "page size" default(40)
// @Param startAfter query string false "last brand of the previous page"
// @Success 200 {object} BrandsResponse
// @Failure 400 {object} ErrorResponse
// @Router /getUniqueBrands [get]
func (h *Handler) GetUniqueBrands(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r.URL.Query().Get("limit"), "limit", defaultBrandLimit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	result, err := h.productSvc.ListBrands(r.Context(), models.ListBrandsFilter{
		Limit:      limit,
		StartAfter: ptrOrNil(r.URL.Query().Get("startAfter")),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, BrandsResponse{
		Brands:         result.Brands,
		NextStartAfter: derefOrEmpty(result.NextCursor),
	})
}

// ListComments godoc
// @Summary List the comments of a news item, newest first
// @Tags news
// @Produce json
// @Param newsId path int true "news id"
// @Success 200 {object} CommentsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/news/{newsId}/comments [get]
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	newsID, err := newsIDParam(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	comments, err := h.commentSvc.ListComments(r.Context(), newsID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	now := h.now()
	responses := make([]CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = convertToCommentResponse(c, now)
	}

	writeJSON(w, http.StatusOK, CommentsResponse{
		NewsID:   newsID,
		Count:    len(responses),
		Comments: responses,
	})
}

// CreateComment godoc
// @Summary Comment on a news item
// @Tags news
// @Accept json
// @Produce json
// @Param newsId path int true "news id"
// @Param request body CreateCommentRequest true "comment"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/news/{newsId}/comments [post]
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	newsID, err := newsIDParam(r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	var req CreateCommentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"news_id": newsID,
		"writer":  req.Writer,
	})

	comment, err := h.commentSvc.AddComment(r.Context(), newsID, req.Writer, req.Comment)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, convertToCommentResponse(*comment, h.now()))
}

// ValidateCard godoc
// @Summary Classify and format a card number
// @Tags validation
// @Accept json
// @Produce json
// @Param request body CardValidationRequest true "card number"
// @Success 200 {object} CardValidationResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/validate/card [post]
func (h *Handler) ValidateCard(w http.ResponseWriter, r *http.Request) {
	var req CardValidationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	summary := validation.DescribeCard(req.Number)
	canonlog.AddRequestFields(r.Context(), map[string]any{
		"card_type": summary.Type.String(),
	})

	writeJSON(w, http.StatusOK, CardValidationResponse{
		Type:      summary.Type.String(),
		Matched:   summary.Matched,
		Digits:    summary.Digits,
		Formatted: summary.Formatted,
		Complete:  summary.Complete,
	})
}

// ValidateAccount godoc
// @Summary Check sign-up fields
// @Tags validation
// @Accept json
// @Produce json
// @Param request body AccountValidationRequest true "account fields"
// @Success 200 {object} AccountValidationResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/validate/account [post]
func (h *Handler) ValidateAccount(w http.ResponseWriter, r *http.Request) {
	var req AccountValidationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var resp AccountValidationResponse
	if req.Email != nil {
		resp.Email = &FieldValidation{
			Valid:      validation.IsValidEmail(*req.Email),
			InProgress: validation.EmailInProgress(*req.Email),
		}
	}
	if req.Password != nil {
		resp.Password = &FieldValidation{
			Valid:      validation.IsValidPassword(*req.Password),
			InProgress: validation.PasswordInProgress(*req.Password),
		}
	}
	if req.Nickname != nil {
		resp.Nickname = &FieldValidation{
			Valid:      validation.IsValidNickname(*req.Nickname),
			InProgress: validation.NicknameInProgress(*req.Nickname),
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func convertToCommentResponse(c models.NewsComment, now time.Time) CommentResponse {
	resp := CommentResponse{
		ID:       c.ID,
		NewsID:   c.NewsID,
		Writer:   c.Writer,
		Comment:  c.Comment,
		Datetime: models.ToEpochMillis(c.Datetime),
	}
	if c.Datetime != nil {
		resp.ReviewTime = format.ReviewTime(now, *c.Datetime)
	}
	return resp
}

func newsIDParam(r *http.Request) (int, error) {
	newsID, err := strconv.Atoi(chi.URLParam(r, "newsId"))
	if err != nil {
		return 0, apperrors.NewValidationError("newsId", "must be an integer")
	}
	return newsID, nil
}

func intParam(raw, name string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(name, fmt.Sprintf("must be an integer, got %q", raw))
	}
	return v, nil
}

func optionalIntParam(raw, name string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := intParam(raw, name, 0)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func ptrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
