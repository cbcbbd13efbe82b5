package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/clonecoding/storefront/internal/apperrors"
	"github.com/clonecoding/storefront/internal/models"
)

const MaxCommentLength = 500

type CommentStore interface {
	Insert(ctx context.Context, comment *models.NewsComment) (int64, error)
	ListByNewsID(ctx context.Context, newsID int) ([]models.NewsComment, error)
}

type CommentService struct {
	store CommentStore
	now   func() time.Time
}

func NewCommentService(store CommentStore) *CommentService {
	return &CommentService{store: store, now: time.Now}
}

// AddComment stores a comment on a news item, stamping it with the current
// time.
func (s *CommentService) AddComment(ctx context.Context, newsID int, writer, text string) (*models.NewsComment, error) {
	if newsID <= 0 {
		return nil, apperrors.NewValidationError("newsId", "must be positive")
	}
	writer = strings.TrimSpace(writer)
	if writer == "" {
		return nil, apperrors.NewValidationError("writer", "is required")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("comment", "is required")
	}
	if utf8.RuneCountInString(text) > MaxCommentLength {
		return nil, apperrors.NewValidationError("comment", "is too long")
	}

	now := s.now()
	comment := &models.NewsComment{
		NewsID:   newsID,
		Writer:   writer,
		Comment:  text,
		Datetime: &now,
	}
	if _, err := s.store.Insert(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, newsID int) ([]models.NewsComment, error) {
	if newsID <= 0 {
		return nil, apperrors.NewValidationError("newsId", "must be positive")
	}
	return s.store.ListByNewsID(ctx, newsID)
}
