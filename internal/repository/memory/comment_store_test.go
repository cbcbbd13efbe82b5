package memory

import (
	"context"
	"testing"
	"time"

	"github.com/clonecoding/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(ts time.Time) *time.Time { return &ts }

func TestInsertAssignsIDs(t *testing.T) {
	s := NewCommentStore()

	c1 := models.NewsComment{NewsID: 7, Writer: "Tester", Comment: "first"}
	id1, err := s.Insert(t.Context(), &c1)
	require.NoError(t, err)
	c2 := models.NewsComment{NewsID: 7, Writer: "Tester", Comment: "second"}
	id2, err := s.Insert(t.Context(), &c2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)
	assert.Equal(t, id1, c1.ID)
}

func TestListByNewsIDNewestFirst(t *testing.T) {
	s := NewCommentStore()
	t1 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	for _, c := range []models.NewsComment{
		{NewsID: 7, Comment: "at t1", Datetime: at(t1)},
		{NewsID: 8, Comment: "other news", Datetime: at(t2)},
		{NewsID: 7, Comment: "no time"},
		{NewsID: 7, Comment: "at t2", Datetime: at(t2)},
		{NewsID: 7, Comment: "also t1", Datetime: at(t1)},
	} {
		_, err := s.Insert(t.Context(), &c)
		require.NoError(t, err)
	}

	got, err := s.ListByNewsID(t.Context(), 7)
	require.NoError(t, err)

	var texts []string
	for _, c := range got {
		texts = append(texts, c.Comment)
	}
	assert.Equal(t, []string{"at t2", "also t1", "at t1", "no time"}, texts)
}

func TestListByNewsIDEmpty(t *testing.T) {
	got, err := NewCommentStore().ListByNewsID(t.Context(), 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStoredCommentIsACopy(t *testing.T) {
	s := NewCommentStore()
	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	c := models.NewsComment{NewsID: 1, Comment: "original", Datetime: &ts}
	_, err := s.Insert(t.Context(), &c)
	require.NoError(t, err)

	c.Comment = "changed"
	ts = ts.Add(time.Hour)

	got, err := s.ListByNewsID(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "original", got[0].Comment)
	assert.Equal(t, 9, got[0].Datetime.Hour())
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewCommentStore()
	_, err := s.Insert(ctx, &models.NewsComment{NewsID: 1})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.ListByNewsID(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
