package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultPageSize is the fixed page size for directory views
const DefaultPageSize = 5

// PageView is the navigation surface of a paginator, independent of the
// item type it pages over
type PageView interface {
	Render() Render
	Previous() (Render, error)
	Next() (Render, error)
}

// Paginator is an ephemeral fixed-page view over an already-materialized,
// already-ordered result set. Callers must not construct one over an empty
// set - the listing command rejects that upstream with a nothing-to-show
// response.
type Paginator[T any] struct {
	title       string
	color       string
	items       []T
	pageSize    int
	currentPage int
	maxPages    int
	renderItem  func(T) Field
}

// NewPaginator creates a paginator starting on the first page
func NewPaginator[T any](title, color string, items []T, pageSize int, renderItem func(T) Field) *Paginator[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator[T]{
		title:      title,
		color:      color,
		items:      items,
		pageSize:   pageSize,
		maxPages:   (len(items)-1)/pageSize + 1,
		renderItem: renderItem,
	}
}

// CurrentPage returns the zero-based current page index
func (p *Paginator[T]) CurrentPage() int {
	return p.currentPage
}

// MaxPages returns the total number of pages (at least 1)
func (p *Paginator[T]) MaxPages() int {
	return p.maxPages
}

// Render produces the current page: one compact field per item and a
// page-position footer
func (p *Paginator[T]) Render() Render {
	start := p.currentPage * p.pageSize
	end := start + p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}

	fields := make([]Field, 0, end-start)
	for _, item := range p.items[start:end] {
		fields = append(fields, p.renderItem(item))
	}

	return Render{
		Title:  p.title,
		Color:  p.color,
		Fields: fields,
		Footer: fmt.Sprintf("Page %d of %d", p.currentPage+1, p.maxPages),
	}
}

// Previous moves back one page. At the first page the view is unchanged
// and a boundary notice is returned.
func (p *Paginator[T]) Previous() (Render, error) {
	if p.currentPage > 0 {
		p.currentPage--
		return p.Render(), nil
	}
	return Render{}, fmt.Errorf("first page reached: %w", ErrPageBoundary)
}

// Next moves forward one page. At the last page the view is unchanged and
// a boundary notice is returned.
func (p *Paginator[T]) Next() (Render, error) {
	if p.currentPage+1 < p.maxPages {
		p.currentPage++
		return p.Render(), nil
	}
	return Render{}, fmt.Errorf("last page reached: %w", ErrPageBoundary)
}

// directorySession pairs a view with its idle-expiry deadline
type directorySession struct {
	view     PageView
	lastSeen time.Time
}

// DirectorySessions is the registry of live directory views, keyed by an
// opaque token handed back to the command surface. Views expire after the
// idle timeout; navigating an expired or unknown token fails with
// ErrSessionExpired and the caller must re-issue the listing command,
// which re-reads the backing store.
type DirectorySessions struct {
	mu       sync.Mutex
	sessions map[string]*directorySession
	timeout  time.Duration
}

// NewDirectorySessions creates a session registry with the given idle
// timeout
func NewDirectorySessions(timeout time.Duration) *DirectorySessions {
	return &DirectorySessions{
		sessions: make(map[string]*directorySession),
		timeout:  timeout,
	}
}

// Open registers a fresh view and returns its navigation token
func (d *DirectorySessions) Open(view PageView) string {
	token := uuid.New().String()

	d.mu.Lock()
	d.sessions[token] = &directorySession{view: view, lastSeen: time.Now()}
	d.mu.Unlock()

	return token
}

// Previous navigates the identified view back one page
func (d *DirectorySessions) Previous(token string) (Render, error) {
	view, err := d.touch(token)
	if err != nil {
		return Render{}, err
	}
	return view.Previous()
}

// Next navigates the identified view forward one page
func (d *DirectorySessions) Next(token string) (Render, error) {
	view, err := d.touch(token)
	if err != nil {
		return Render{}, err
	}
	return view.Next()
}

// touch looks up a session, expiring it if idle too long, and refreshes
// its deadline
func (d *DirectorySessions) touch(token string) (PageView, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	session, ok := d.sessions[token]
	if !ok {
		return nil, ErrSessionExpired
	}
	now := time.Now()
	if now.Sub(session.lastSeen) > d.timeout {
		delete(d.sessions, token)
		return nil, ErrSessionExpired
	}
	session.lastSeen = now
	return session.view, nil
}

// Sweep evicts idle sessions and returns how many were removed. Run it
// periodically so abandoned views do not accumulate.
func (d *DirectorySessions) Sweep() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	removed := 0
	for token, session := range d.sessions {
		if now.Sub(session.lastSeen) > d.timeout {
			delete(d.sessions, token)
			removed++
		}
	}
	return removed
}
