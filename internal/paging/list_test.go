package paging

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/clonecoding/storefront/internal/datastate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

type pageResult struct {
	page Page[int]
	err  error
}

type scriptedFetcher struct {
	mu      sync.Mutex
	results []pageResult
	cursors []Cursor
	gate    chan struct{}
	started chan struct{}
}

func (f *scriptedFetcher) fetch(ctx context.Context, cursor Cursor) <-chan datastate.State[Page[int]] {
	f.mu.Lock()
	f.cursors = append(f.cursors, cursor)
	var r pageResult
	if len(f.results) > 0 {
		r, f.results = f.results[0], f.results[1:]
	}
	gate, started := f.gate, f.started
	f.mu.Unlock()

	return datastate.Run(ctx, func(context.Context) (Page[int], error) {
		if started != nil {
			started <- struct{}{}
		}
		if gate != nil {
			<-gate
		}
		return r.page, r.err
	})
}

func (f *scriptedFetcher) calls() []Cursor {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Cursor(nil), f.cursors...)
}

func TestCursorAdvance(t *testing.T) {
	c := NewCursor(20)
	assert.True(t, c.IsFirstPage())
	assert.Equal(t, "", c.StartAfter())

	c = c.Advance(ptr("p20"))
	assert.Equal(t, "p20", c.StartAfter())
	assert.Equal(t, 20, c.PageSize)

	assert.Equal(t, c, c.Advance(nil))
	assert.Equal(t, c, c.Advance(ptr("")))

	reset := c.Reset()
	assert.True(t, reset.IsFirstPage())
	assert.Equal(t, 20, reset.PageSize)
}

func TestListAppendsPagesInOrder(t *testing.T) {
	f := &scriptedFetcher{results: []pageResult{
		{page: Page[int]{Items: []int{1, 2}, NextStartAfter: ptr("2")}},
		{page: Page[int]{Items: []int{3, 4}, NextStartAfter: ptr("4")}},
	}}
	l := NewList(2, f.fetch)

	require.True(t, l.Next(t.Context()))
	require.True(t, l.Next(t.Context()))

	snap := l.Snapshot()
	assert.Equal(t, []int{1, 2, 3, 4}, snap.Items)
	assert.Equal(t, StatusAppended, snap.Status)
	assert.Equal(t, "4", snap.Cursor.StartAfter())

	calls := f.calls()
	require.Len(t, calls, 2)
	assert.True(t, calls[0].IsFirstPage())
	assert.Equal(t, "2", calls[1].StartAfter())
}

func TestListRetainsCursorOnTerminalPages(t *testing.T) {
	f := &scriptedFetcher{results: []pageResult{
		{page: Page[int]{Items: []int{1}, NextStartAfter: ptr("1")}},
		{page: Page[int]{Items: []int{2}}},
		{page: Page[int]{NextStartAfter: ptr("")}},
		{page: Page[int]{}},
	}}
	l := NewList(1, f.fetch)

	l.Next(t.Context())
	before := l.Snapshot().Cursor

	for range 3 {
		l.Next(t.Context())
		assert.Equal(t, before, l.Snapshot().Cursor)
	}

	for _, c := range f.calls()[1:] {
		assert.Equal(t, "1", c.StartAfter(), "terminal fetches must not restart from page one")
	}
	assert.Equal(t, []int{1, 2}, l.Snapshot().Items)
}

func TestListFailureKeepsData(t *testing.T) {
	f := &scriptedFetcher{results: []pageResult{
		{page: Page[int]{Items: []int{1, 2}, NextStartAfter: ptr("2")}},
		{err: errors.New("503 service unavailable")},
		{page: Page[int]{Items: []int{3}, NextStartAfter: ptr("3")}},
	}}
	l := NewList(2, f.fetch)

	l.Next(t.Context())
	l.Next(t.Context())

	snap := l.Snapshot()
	assert.Equal(t, StatusFailed, snap.Status)
	assert.Equal(t, "503 service unavailable", snap.LastError)
	assert.Equal(t, []int{1, 2}, snap.Items)
	assert.Equal(t, "2", snap.Cursor.StartAfter())

	l.Next(t.Context())
	snap = l.Snapshot()
	assert.Equal(t, StatusAppended, snap.Status)
	assert.Empty(t, snap.LastError)
	assert.Equal(t, []int{1, 2, 3}, snap.Items)
	assert.Equal(t, "2", f.calls()[2].StartAfter(), "retry resumes from the same cursor")
}

func TestListDropsTriggersWhileLoading(t *testing.T) {
	f := &scriptedFetcher{
		results: []pageResult{{page: Page[int]{Items: []int{7}, NextStartAfter: ptr("7")}}},
		gate:    make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	l := NewList(1, f.fetch)

	done := make(chan bool)
	go func() { done <- l.Next(context.Background()) }()
	<-f.started

	assert.True(t, l.Loading())
	assert.False(t, l.Next(t.Context()))
	assert.Len(t, f.calls(), 1)
	assert.Empty(t, l.Snapshot().Items)

	close(f.gate)
	select {
	case ok := <-done:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("first fetch did not finish")
	}
	assert.Equal(t, []int{7}, l.Snapshot().Items)
	assert.Len(t, f.calls(), 1)
}

func TestListResetDiscardsInFlightPage(t *testing.T) {
	f := &scriptedFetcher{
		results: []pageResult{
			{page: Page[int]{Items: []int{1}, NextStartAfter: ptr("stale")}},
		},
		gate:    make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	l := NewList(1, f.fetch)

	done := make(chan struct{})
	go func() {
		l.Next(context.Background())
		close(done)
	}()
	<-f.started

	l.Reset()
	assert.Equal(t, StatusIdle, l.Snapshot().Status)

	close(f.gate)
	<-done

	snap := l.Snapshot()
	assert.Empty(t, snap.Items)
	assert.True(t, snap.Cursor.IsFirstPage())
	assert.Equal(t, StatusIdle, snap.Status)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "appended", StatusAppended.String())
	assert.Equal(t, "failed", StatusFailed.String())
}
