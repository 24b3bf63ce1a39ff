package resource

import (
	"tmsdash/internal/model"
	"tmsdash/internal/upstream"
)

// Registry holds the one client per resource type the dashboard exposes.
// All clients share one cache, so invalidation by one type's mutations is
// visible to every reader of that session.
type Registry struct {
	Customers *Client[model.Customer]
	Drivers   *Client[model.Driver]
	Trucks    *Client[model.Truck]
	Loads     *LoadsClient
	Lanes     *Client[model.Lane]
	Invoices  *Client[model.Invoice]
	Payroll   *Client[model.Payroll]
	Expenses  *Client[model.Expense]
	Shippers  *Client[model.Shipper]
	Receivers *Client[model.Receiver]

	cache *Cache
}

// NewRegistry instantiates every resource client over the given api client
// and cache. The cache identifies one session; see CachePool.
func NewRegistry(api *upstream.Client, cache *Cache, notify Notifier) *Registry {
	return &Registry{
		Customers: NewClient[model.Customer](api, cache, "customers", "customer", notify),
		Drivers:   NewClient[model.Driver](api, cache, "drivers", "driver", notify),
		Trucks:    NewClient[model.Truck](api, cache, "trucks", "truck", notify),
		Loads:     NewLoadsClient(api, cache, notify),
		Lanes:     NewClient[model.Lane](api, cache, "lanes", "lane", notify),
		Invoices:  NewClient[model.Invoice](api, cache, "invoices", "invoice", notify),
		Payroll:   NewClient[model.Payroll](api, cache, "payroll", "payroll entry", notify),
		Expenses:  NewClient[model.Expense](api, cache, "expenses", "expense", notify),
		Shippers:  NewClient[model.Shipper](api, cache, "shippers", "shipper", notify),
		Receivers: NewClient[model.Receiver](api, cache, "receivers", "receiver", notify),
		cache:     cache,
	}
}

// Flush drops all cached data; called on logout
func (r *Registry) Flush() {
	r.cache.Flush()
}
