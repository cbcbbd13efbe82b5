// Package memory is an in-process comment store for tests and for running
// without a database.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/clonecoding/storefront/internal/models"
)

type CommentStore struct {
	mu       sync.RWMutex
	nextID   int64
	comments []models.NewsComment
}

func NewCommentStore() *CommentStore {
	return &CommentStore{nextID: 1}
}

// Insert assigns the next id to comment and stores a copy of it.
func (s *CommentStore) Insert(ctx context.Context, comment *models.NewsComment) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment.ID = s.nextID
	s.nextID++

	stored := *comment
	if comment.Datetime != nil {
		ts := *comment.Datetime
		stored.Datetime = &ts
	}
	s.comments = append(s.comments, stored)
	return comment.ID, nil
}

// ListByNewsID returns the comments of one news item, newest first. Comments
// without a timestamp come last; ties go to the later insert.
func (s *CommentStore) ListByNewsID(ctx context.Context, newsID int) ([]models.NewsComment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]models.NewsComment, 0, len(s.comments))
	for _, c := range s.comments {
		if c.NewsID == newsID {
			out = append(out, c)
		}
	}
	s.mu.RUnlock()

	slices.SortStableFunc(out, newestFirst)
	return out, nil
}

func newestFirst(a, b models.NewsComment) int {
	switch {
	case a.Datetime == nil && b.Datetime == nil:
	case a.Datetime == nil:
		return 1
	case b.Datetime == nil:
		return -1
	default:
		if c := b.Datetime.Compare(*a.Datetime); c != 0 {
			return c
		}
	}
	switch {
	case a.ID > b.ID:
		return -1
	case a.ID < b.ID:
		return 1
	}
	return 0
}
