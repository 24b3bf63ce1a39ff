// Package resource implements the query/mutation layer shared by every
// dashboard resource type. One generic Client is instantiated per type, so
// the cache-invalidation contract cannot drift between types: reads are
// cached and coalesced, writes invalidate the type's list entries plus the
// touched entity entry.
package resource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode"

	"tmsdash/internal/upstream"
)

// ErrMissingID is returned by id-keyed operations called with a zero id,
// typically a detail view rendered before its id is known.
var ErrMissingID = errors.New("resource: missing id")

// Client provides list/get/create/update/delete for one resource type
type Client[T any] struct {
	api      *upstream.Client
	cache    *Cache
	name     string // plural resource name, e.g. "drivers"; cache-key namespace
	basePath string // upstream collection path, e.g. "/v1/drivers"
	label    string // singular display label for notifications, e.g. "driver"
	notify   Notifier
}

// NewClient builds the client for one resource type rooted at /v1/{name}
func NewClient[T any](api *upstream.Client, cache *Cache, name, label string, notify Notifier) *Client[T] {
	if notify == nil {
		notify = LogNotifier{}
	}
	return &Client[T]{
		api:      api,
		cache:    cache,
		name:     name,
		basePath: "/v1/" + name,
		label:    label,
		notify:   notify,
	}
}

// List fetches one page, served from cache when present. Concurrent calls
// for the same (page, limit) are coalesced into a single upstream request.
// Failures are never retried here; the caller renders the error state.
func (c *Client[T]) List(ctx context.Context, page, limit int) (Page[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	key := listKey(c.name, page, limit)
	if v, ok := c.cache.get(key); ok {
		return v.(Page[T]), nil
	}

	v, err, _ := c.cache.flight.Do(key, func() (any, error) {
		pg, err := c.fetchList(ctx, c.basePath, page, limit)
		if err != nil {
			return nil, err
		}
		c.cache.set(key, pg)
		return pg, nil
	})
	if err != nil {
		return Page[T]{}, err
	}
	return v.(Page[T]), nil
}

func (c *Client[T]) fetchList(ctx context.Context, base string, page, limit int) (Page[T], error) {
	skip := (page - 1) * limit
	var raw json.RawMessage
	if err := c.api.Get(ctx, fmt.Sprintf("%s?skip=%d&limit=%d", base, skip, limit), &raw); err != nil {
		return Page[T]{}, err
	}
	return decodePage[T](raw, page, limit)
}

// Get fetches a single entity by id, cached under (type, id)
func (c *Client[T]) Get(ctx context.Context, id int) (T, error) {
	var zero T
	if id <= 0 {
		return zero, ErrMissingID
	}

	key := entityKey(c.name, id)
	if v, ok := c.cache.get(key); ok {
		return v.(T), nil
	}

	v, err, _ := c.cache.flight.Do(key, func() (any, error) {
		var out T
		if err := c.api.Get(ctx, fmt.Sprintf("%s/%d", c.basePath, id), &out); err != nil {
			return nil, err
		}
		c.cache.set(key, out)
		return out, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// Create posts a new entity and invalidates the type's list entries
func (c *Client[T]) Create(ctx context.Context, payload any) (T, error) {
	var out T
	if err := c.api.Post(ctx, c.basePath, payload, &out); err != nil {
		return out, c.fail(err, "Failed to create "+c.label)
	}
	c.cache.InvalidateLists(c.name)
	c.notify.Success(capitalize(c.label) + " created successfully")
	return out, nil
}

// Update puts changes to an entity and invalidates the type's list entries
// plus the entity's own cache entry
func (c *Client[T]) Update(ctx context.Context, id int, payload any) (T, error) {
	var out T
	if id <= 0 {
		return out, ErrMissingID
	}
	if err := c.api.Put(ctx, fmt.Sprintf("%s/%d", c.basePath, id), payload, &out); err != nil {
		return out, c.fail(err, "Failed to update "+c.label)
	}
	c.cache.InvalidateLists(c.name)
	c.cache.InvalidateEntity(c.name, id)
	c.notify.Success(capitalize(c.label) + " updated successfully")
	return out, nil
}

// Delete removes an entity and invalidates the type's list entries
func (c *Client[T]) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrMissingID
	}
	if err := c.api.Delete(ctx, fmt.Sprintf("%s/%d", c.basePath, id)); err != nil {
		return c.fail(err, "Failed to delete "+c.label)
	}
	c.cache.InvalidateLists(c.name)
	c.cache.InvalidateEntity(c.name, id)
	c.notify.Success(capitalize(c.label) + " deleted successfully")
	return nil
}

// fail notifies and returns the human-readable form of a mutation error:
// the upstream's string detail verbatim, field errors joined as
// "loc.path: msg" pairs, or the generic per-resource fallback.
func (c *Client[T]) fail(err error, fallback string) error {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message(fallback)
		c.notify.Error(msg)
		return errors.New(msg)
	}
	c.notify.Error(fallback)
	return fmt.Errorf("%s: %w", fallback, err)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
