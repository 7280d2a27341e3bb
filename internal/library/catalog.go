// Package library implements the in-memory catalog of library items: the
// duplicate-free insertion rule, enumeration and filtering by kind, and the
// inventory report.
package library

import (
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Entry pairs a stored item with the ID assigned when it was added.
type Entry struct {
	ID   string
	Item types.Item
}

// Catalog owns an ordered collection of items. No two items share the same
// title, publisher and publication year. Items are copied on the way in and
// on the way out, so callers never hold a reference to stored state.
// Catalog is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	entries []Entry
	logger  *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for add and reject events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCatalog returns an empty catalog.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddItem appends item and returns its entry ID (UUID v7).
// Returns types.ErrNilItem if item is nil, or a *types.DuplicateEntryError
// if an item with the same title, publisher and publication year is already
// stored. The catalog is unchanged on error.
func (c *Catalog) AddItem(item types.Item) (string, error) {
	if types.IsNil(item) {
		return "", types.ErrNilItem
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if types.SameIdentity(e.Item, item) {
			c.logger.Debug("rejected duplicate item",
				"kind", item.Kind(),
				"title", item.Title(),
				"existing_id", e.ID)
			return "", &types.DuplicateEntryError{
				Title:           item.Title(),
				Publisher:       item.Publisher(),
				PublicationYear: item.PublicationYear(),
			}
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	c.entries = append(c.entries, Entry{ID: id.String(), Item: item.Clone()})

	c.logger.Debug("added item",
		"id", id.String(),
		"kind", item.Kind(),
		"title", item.Title(),
		"count", len(c.entries))
	return id.String(), nil
}

// Count returns the number of stored items.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Entries returns copies of all entries in insertion order.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = Entry{ID: e.ID, Item: e.Item.Clone()}
	}
	return out
}

// Items returns copies of all items in insertion order.
func (c *Catalog) Items() []types.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]types.Item, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Item.Clone()
	}
	return out
}

// ItemsOfKind returns copies of the items of the given kind, in insertion
// order. Returns an empty slice (not nil) when none match.
func (c *Catalog) ItemsOfKind(kind types.Kind) []types.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []types.Item{}
	for _, e := range c.entries {
		if e.Item.Kind() == kind {
			out = append(out, e.Item.Clone())
		}
	}
	return out
}

// Books returns copies of the stored books in insertion order.
func (c *Catalog) Books() []*types.Book {
	items := c.ItemsOfKind(types.KindBook)
	out := make([]*types.Book, 0, len(items))
	for _, item := range items {
		out = append(out, item.(*types.Book))
	}
	return out
}

// Magazines returns copies of the stored magazines in insertion order.
func (c *Catalog) Magazines() []*types.Magazine {
	items := c.ItemsOfKind(types.KindMagazine)
	out := make([]*types.Magazine, 0, len(items))
	for _, item := range items {
		out = append(out, item.(*types.Magazine))
	}
	return out
}
