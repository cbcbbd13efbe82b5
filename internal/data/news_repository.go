package data

import (
	"context"

	"github.com/clonecoding/storefront/internal/datastate"
	"github.com/clonecoding/storefront/internal/models"
)

// CommentStore persists news comments. ListByNewsID returns the newest
// comment first.
type CommentStore interface {
	Insert(ctx context.Context, comment *models.NewsComment) (int64, error)
	ListByNewsID(ctx context.Context, newsID int) ([]models.NewsComment, error)
}

type NewsRepository struct {
	store CommentStore
}

func NewNewsRepository(store CommentStore) *NewsRepository {
	return &NewsRepository{store: store}
}

// AddComment stores comment and reports Success(true) once it is persisted.
func (r *NewsRepository) AddComment(ctx context.Context, comment models.NewsComment) <-chan datastate.State[bool] {
	return datastate.Run(ctx, func(ctx context.Context) (bool, error) {
		if _, err := r.store.Insert(ctx, &comment); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (r *NewsRepository) ListComments(ctx context.Context, newsID int) <-chan datastate.State[[]models.NewsComment] {
	return datastate.Run(ctx, func(ctx context.Context) ([]models.NewsComment, error) {
		comments, err := r.store.ListByNewsID(ctx, newsID)
		if err != nil {
			return nil, err
		}
		if comments == nil {
			comments = []models.NewsComment{}
		}
		return comments, nil
	})
}
