package repository

import (
	"context"
	"fmt"

	"github.com/clonecoding/storefront/internal/models"
)

// CommentRepository stores news comments in the news_comments table.
// Timestamps are kept as epoch milliseconds.
type CommentRepository struct {
	db Querier
}

func NewCommentRepository(db Querier) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Insert(ctx context.Context, comment *models.NewsComment) (int64, error) {
	var commentID int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO news_comments (news_id, writer, comment, datetime)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		comment.NewsID, comment.Writer, comment.Comment, models.ToEpochMillis(comment.Datetime),
	).Scan(&commentID)
	if err != nil {
		return 0, fmt.Errorf("insert comment: %w", err)
	}

	comment.ID = commentID
	return commentID, nil
}

func (r *CommentRepository) ListByNewsID(ctx context.Context, newsID int) ([]models.NewsComment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, news_id, writer, comment, datetime
		FROM news_comments
		WHERE news_id = $1
		ORDER BY datetime DESC NULLS LAST, id DESC`,
		newsID,
	)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := []models.NewsComment{}
	for rows.Next() {
		var (
			c      models.NewsComment
			millis *int64
		)
		if err := rows.Scan(&c.ID, &c.NewsID, &c.Writer, &c.Comment, &millis); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.Datetime = models.FromEpochMillis(millis)
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
