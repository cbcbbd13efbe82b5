package paging

import (
	"context"
	"sync"

	"github.com/clonecoding/storefront/internal/datastate"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusAppended
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusAppended:
		return "appended"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Page is what one fetch contributes to a list.
type Page[T any] struct {
	Items          []T
	NextStartAfter *string
}

// FetchFunc loads the page at cursor and reports it as a datastate stream.
type FetchFunc[T any] func(ctx context.Context, cursor Cursor) <-chan datastate.State[Page[T]]

// Snapshot is a copy of a list's state.
type Snapshot[T any] struct {
	Items     []T
	Status    Status
	Cursor    Cursor
	LastError string
}

// List accumulates pages fetched one after another. At most one fetch is in
// flight; triggers that arrive while loading are dropped.
type List[T any] struct {
	fetch FetchFunc[T]

	mu         sync.Mutex
	cursor     Cursor
	items      []T
	status     Status
	lastError  string
	generation uint64
}

func NewList[T any](pageSize int, fetch FetchFunc[T]) *List[T] {
	return &List[T]{
		fetch:  fetch,
		cursor: NewCursor(pageSize),
	}
}

// Next fetches the page after the current cursor and appends it. It returns
// false without fetching when a fetch is already running. On failure the
// items and cursor are left as they were so a later Next resumes from the
// same place.
func (l *List[T]) Next(ctx context.Context) bool {
	l.mu.Lock()
	if l.status == StatusLoading {
		l.mu.Unlock()
		return false
	}
	l.status = StatusLoading
	generation := l.generation
	cursor := l.cursor
	l.mu.Unlock()

	res := datastate.Collect(l.fetch(ctx, cursor), nil)

	l.mu.Lock()
	defer l.mu.Unlock()

	// reset while loading: this page belongs to a list that no longer exists
	if generation != l.generation {
		return true
	}

	if !res.OK {
		l.status = StatusFailed
		l.lastError = res.Message
		return true
	}

	l.items = append(l.items, res.Data.Items...)
	l.cursor = l.cursor.Advance(res.Data.NextStartAfter)
	l.status = StatusAppended
	l.lastError = ""
	return true
}

// Reset drops the accumulated items and returns the cursor to the first page.
func (l *List[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.generation++
	l.items = nil
	l.cursor = l.cursor.Reset()
	l.status = StatusIdle
	l.lastError = ""
}

func (l *List[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status == StatusLoading
}

func (l *List[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]T, len(l.items))
	copy(items, l.items)
	return Snapshot[T]{
		Items:     items,
		Status:    l.status,
		Cursor:    l.cursor,
		LastError: l.lastError,
	}
}
