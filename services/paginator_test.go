package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPaginator(itemCount int) *Paginator[int] {
	items := make([]int, itemCount)
	for i := range items {
		items[i] = i + 1
	}
	return NewPaginator("Case Directory", ColorBlue, items, DefaultPageSize, func(n int) Field {
		return Field{Name: fmt.Sprintf("Item %d", n)}
	})
}

func TestPaginatorPageCount(t *testing.T) {
	tests := []struct {
		name     string
		items    int
		expected int
	}{
		{name: "single item", items: 1, expected: 1},
		{name: "exactly one page", items: 5, expected: 1},
		{name: "one over a page", items: 6, expected: 2},
		{name: "twelve items", items: 12, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, testPaginator(tt.items).MaxPages())
		})
	}
}

func TestPaginatorNextStopsAtLastPage(t *testing.T) {
	view := testPaginator(12)
	assert.Equal(t, 0, view.CurrentPage())

	_, err := view.Next()
	require.NoError(t, err)
	_, err = view.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, view.CurrentPage())

	// Past the last page: boundary notice, state unchanged
	for i := 0; i < 2; i++ {
		_, err = view.Next()
		assert.ErrorIs(t, err, ErrPageBoundary)
		assert.Equal(t, 2, view.CurrentPage())
	}
}

func TestPaginatorPreviousStopsAtFirstPage(t *testing.T) {
	view := testPaginator(12)

	_, err := view.Previous()
	assert.ErrorIs(t, err, ErrPageBoundary)
	assert.Equal(t, 0, view.CurrentPage())
}

func TestPaginatorRender(t *testing.T) {
	view := testPaginator(12)

	page := view.Render()
	assert.Equal(t, "Case Directory", page.Title)
	assert.Equal(t, ColorBlue, page.Color)
	assert.Equal(t, "Page 1 of 3", page.Footer)
	require.Len(t, page.Fields, 5)
	assert.Equal(t, "Item 1", page.Fields[0].Name)

	// Last page holds the remainder
	page, err := view.Next()
	require.NoError(t, err)
	page, err = view.Next()
	require.NoError(t, err)
	assert.Equal(t, "Page 3 of 3", page.Footer)
	require.Len(t, page.Fields, 2)
	assert.Equal(t, "Item 11", page.Fields[0].Name)
}

func TestDirectorySessionsNavigation(t *testing.T) {
	sessions := NewDirectorySessions(time.Minute)
	token := sessions.Open(testPaginator(12))

	page, err := sessions.Next(token)
	require.NoError(t, err)
	assert.Equal(t, "Page 2 of 3", page.Footer)

	page, err = sessions.Previous(token)
	require.NoError(t, err)
	assert.Equal(t, "Page 1 of 3", page.Footer)

	_, err = sessions.Previous(token)
	assert.ErrorIs(t, err, ErrPageBoundary)
}

func TestDirectorySessionsUnknownToken(t *testing.T) {
	sessions := NewDirectorySessions(time.Minute)

	_, err := sessions.Next("no-such-token")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestDirectorySessionsIdleExpiry(t *testing.T) {
	sessions := NewDirectorySessions(20 * time.Millisecond)
	token := sessions.Open(testPaginator(12))

	time.Sleep(40 * time.Millisecond)

	_, err := sessions.Next(token)
	assert.ErrorIs(t, err, ErrSessionExpired)

	// Expired tokens stay dead even after re-issue of other listings
	_, err = sessions.Previous(token)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestDirectorySessionsSweep(t *testing.T) {
	sessions := NewDirectorySessions(20 * time.Millisecond)
	sessions.Open(testPaginator(12))
	sessions.Open(testPaginator(7))

	assert.Equal(t, 0, sessions.Sweep())

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, 2, sessions.Sweep())
	assert.Equal(t, 0, sessions.Sweep())
}
