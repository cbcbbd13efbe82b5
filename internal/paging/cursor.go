// Package paging tracks start-after cursors and the accumulated results of
// incrementally loaded lists.
package paging

// Cursor is the position of the next page. A nil Token means the first page.
type Cursor struct {
	Token    *string
	PageSize int
}

func NewCursor(pageSize int) Cursor {
	return Cursor{PageSize: pageSize}
}

// Advance moves to the token the server returned. A missing or empty token
// keeps the current position: the catalog answers the last page without a
// token, and clearing ours would restart the list from page one on the next
// fetch.
func (c Cursor) Advance(next *string) Cursor {
	if next == nil || *next == "" {
		return c
	}
	token := *next
	return Cursor{Token: &token, PageSize: c.PageSize}
}

// Reset returns to the first page, keeping the page size.
func (c Cursor) Reset() Cursor {
	return Cursor{PageSize: c.PageSize}
}

// StartAfter is the token as a plain string, empty on the first page.
func (c Cursor) StartAfter() string {
	if c.Token == nil {
		return ""
	}
	return *c.Token
}

func (c Cursor) IsFirstPage() bool {
	return c.Token == nil
}
