// Package nav declares the dashboard navigation and filters it by the
// requesting user's permissions, so the shell only renders entries the user
// can actually open.
package nav

import (
	"tmsdash/internal/auth"
	"tmsdash/internal/model"
)

// Entry is one navigation item
type Entry struct {
	Name       string `json:"name"`
	Href       string `json:"href"`
	Icon       string `json:"icon"`
	Permission string `json:"-"` // empty means visible to any authenticated user
}

// entries is the full navigation in display order
var entries = []Entry{
	{Name: "Dashboard", Href: "/dashboard", Icon: "home"},
	{Name: "Loads", Href: "/loads", Icon: "package", Permission: auth.PermViewLoads},
	{Name: "Lanes", Href: "/lanes", Icon: "route", Permission: auth.PermViewLoads},
	{Name: "Trucks", Href: "/trucks", Icon: "truck", Permission: auth.PermViewTrucks},
	{Name: "Drivers", Href: "/drivers", Icon: "users", Permission: auth.PermViewDrivers},
	{Name: "Customers", Href: "/customers", Icon: "building", Permission: auth.PermViewCustomers},
	{Name: "Shippers", Href: "/shippers", Icon: "warehouse", Permission: auth.PermViewCustomers},
	{Name: "Receivers", Href: "/receivers", Icon: "warehouse", Permission: auth.PermViewCustomers},
	{Name: "Invoices", Href: "/invoices", Icon: "file-text", Permission: auth.PermViewInvoices},
	{Name: "Payroll", Href: "/payroll", Icon: "dollar-sign", Permission: auth.PermViewReports},
	{Name: "Expenses", Href: "/expenses", Icon: "dollar-sign", Permission: auth.PermViewReports},
	{Name: "Reports", Href: "/reports", Icon: "dollar-sign", Permission: auth.PermViewReports},
	{Name: "Settings", Href: "/settings", Icon: "settings"},
}

// Visible returns the entries u may see, in display order
func Visible(u *model.User) []Entry {
	if u == nil {
		return nil
	}
	visible := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Permission == "" || auth.HasPermission(u, e.Permission) {
			visible = append(visible, e)
		}
	}
	return visible
}
