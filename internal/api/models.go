package api

import "github.com/clonecoding/storefront/internal/models"

// ProductsResponse is one page of the getProducts listing.
// @Description Product page
type ProductsResponse struct {
	Products       []models.Product `json:"products"`
	NextStartAfter string           `json:"nextStartAfter"`
}

// BrandsResponse is one page of the getUniqueBrands listing.
// @Description Brand page
type BrandsResponse struct {
	Brands         []string `json:"brands"`
	NextStartAfter string   `json:"nextStartAfter"`
}

// CreateCommentRequest represents the request body for commenting on a news item.
// @Description Request payload for adding a comment
type CreateCommentRequest struct {
	Writer  string `json:"writer" validate:"required,nickname"`
	Comment string `json:"comment" validate:"required,max=500"`
}

// CommentResponse represents a news comment in API responses.
// @Description News comment
type CommentResponse struct {
	ID         int64  `json:"id"`
	NewsID     int    `json:"newsId"`
	Writer     string `json:"writer"`
	Comment    string `json:"comment"`
	Datetime   *int64 `json:"datetime"`
	ReviewTime string `json:"reviewTime,omitempty"`
}

// CardValidationRequest carries a card number as typed.
// @Description Card number to classify
type CardValidationRequest struct {
	Number string `json:"number" validate:"max=32"`
}

// CardValidationResponse describes a card number.
// @Description Card classification
type CardValidationResponse struct {
	Type      string `json:"type"`
	Matched   bool   `json:"matched"`
	Digits    int    `json:"digits"`
	Formatted string `json:"formatted"`
	Complete  bool   `json:"complete"`
}

// AccountValidationRequest carries sign-up fields. Absent fields are not checked.
// @Description Account fields to check
type AccountValidationRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Nickname *string `json:"nickname"`
}

// FieldValidation is the verdict on one field.
// @Description Field verdict
type FieldValidation struct {
	Valid      bool `json:"valid"`
	InProgress bool `json:"inProgress"`
}

// AccountValidationResponse holds a verdict for each field that was sent.
// @Description Account field verdicts
type AccountValidationResponse struct {
	Email    *FieldValidation `json:"email,omitempty"`
	Password *FieldValidation `json:"password,omitempty"`
	Nickname *FieldValidation `json:"nickname,omitempty"`
}
