// Package news drives the comment section of a news item.
package news

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/clonecoding/storefront/internal/apperrors"
	"github.com/clonecoding/storefront/internal/datastate"
	"github.com/clonecoding/storefront/internal/models"
)

// DefaultNickname is the writer of submitted comments until accounts exist.
const DefaultNickname = "Tester"

type CommentSource interface {
	AddComment(ctx context.Context, comment models.NewsComment) <-chan datastate.State[bool]
	ListComments(ctx context.Context, newsID int) <-chan datastate.State[[]models.NewsComment]
}

type State struct {
	NewsID    int
	Selected  bool
	Input     string
	Comments  []models.NewsComment
	Loading   bool
	LastError string
}

// Controller keeps the comments of the selected news item and the comment
// being typed. Submitting does not insert optimistically: the list is
// reloaded from the store once the comment is saved.
type Controller struct {
	source   CommentSource
	nickname string
	now      func() time.Time

	mu        sync.Mutex
	newsID    int
	selected  bool
	input     string
	comments  []models.NewsComment
	loading   bool
	lastError string
}

func NewController(source CommentSource, nickname string) *Controller {
	if nickname == "" {
		nickname = DefaultNickname
	}
	return &Controller{
		source:   source,
		nickname: nickname,
		now:      time.Now,
	}
}

// Select shows the comments of newsID.
func (c *Controller) Select(ctx context.Context, newsID int) bool {
	c.mu.Lock()
	if !c.selected || c.newsID != newsID {
		c.comments = nil
	}
	c.newsID = newsID
	c.selected = true
	c.mu.Unlock()

	return c.Refresh(ctx)
}

func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = text
}

// Refresh reloads the comments of the selected news item. It does nothing
// and returns false when no item is selected.
func (c *Controller) Refresh(ctx context.Context) bool {
	c.mu.Lock()
	if !c.selected {
		c.mu.Unlock()
		return false
	}
	newsID := c.newsID
	c.mu.Unlock()

	res := datastate.Collect(c.source.ListComments(ctx, newsID), c.setLoading)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.newsID != newsID {
		return true
	}
	if !res.OK {
		c.lastError = res.Message
		return true
	}
	c.comments = res.Data
	c.lastError = ""
	return true
}

// Submit saves the typed comment under the configured nickname, clears the
// input and reloads the list. On failure the input is kept.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if !c.selected {
		c.mu.Unlock()
		return apperrors.NewValidationError("newsId", "no news item selected")
	}
	text := strings.TrimSpace(c.input)
	if text == "" {
		c.mu.Unlock()
		return apperrors.NewValidationError("comment", "is required")
	}
	now := c.now()
	comment := models.NewsComment{
		NewsID:   c.newsID,
		Writer:   c.nickname,
		Comment:  text,
		Datetime: &now,
	}
	c.mu.Unlock()

	res := datastate.Collect(c.source.AddComment(ctx, comment), c.setLoading)
	if !res.OK || !res.Data {
		c.mu.Lock()
		c.lastError = res.Message
		c.mu.Unlock()
		return &SubmitError{Message: res.Message}
	}

	c.mu.Lock()
	c.input = ""
	c.mu.Unlock()

	c.Refresh(ctx)
	return nil
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	comments := make([]models.NewsComment, len(c.comments))
	copy(comments, c.comments)
	return State{
		NewsID:    c.newsID,
		Selected:  c.selected,
		Input:     c.input,
		Comments:  comments,
		Loading:   c.loading,
		LastError: c.lastError,
	}
}

func (c *Controller) setLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = loading
}

// SubmitError is a comment the store did not accept.
type SubmitError struct {
	Message string
}

func (e *SubmitError) Error() string {
	if e.Message == "" {
		return "comment was not saved"
	}
	return "comment was not saved: " + e.Message
}
