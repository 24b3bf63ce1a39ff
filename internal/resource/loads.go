package resource

import (
	"context"
	"log"

	"tmsdash/internal/model"
	"tmsdash/internal/upstream"
)

// LoadsClient is the loads resource client with its documented degraded
// mode: when the primary versioned endpoint fails, the list call falls back
// to the unversioned /loads endpoint and finally to /demo/loads, which
// serves canned demo data. Each downgrade is logged and a demo-sourced page
// is flagged so callers can surface the degradation instead of presenting
// demo data as real.
type LoadsClient struct {
	*Client[model.Load]
}

func NewLoadsClient(api *upstream.Client, cache *Cache, notify Notifier) *LoadsClient {
	return &LoadsClient{Client: NewClient[model.Load](api, cache, "loads", "load", notify)}
}

// List fetches a page of loads, degrading through the fallback endpoints.
// Demo pages are not cached, so recovery of the real endpoints is picked up
// on the next call.
func (c *LoadsClient) List(ctx context.Context, page, limit int) (Page[model.Load], error) {
	pg, err := c.Client.List(ctx, page, limit)
	if err == nil {
		return pg, nil
	}
	log.Printf("loads: primary list failed, trying unversioned endpoint: %v", err)

	if pg, uerr := c.fetchList(ctx, "/loads", page, limit); uerr == nil {
		return pg, nil
	}
	log.Printf("loads: unversioned list failed, serving demo data")

	pg, derr := c.fetchList(ctx, "/demo/loads", page, limit)
	if derr != nil {
		// Fully degraded: report the primary failure, not the demo one
		return Page[model.Load]{}, err
	}
	pg.Demo = true
	return pg, nil
}
