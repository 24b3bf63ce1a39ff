package handler

import (
	"tmsdash/internal/auth"
	"tmsdash/internal/guard"
	"tmsdash/internal/model"
	"tmsdash/internal/resource"

	"github.com/gin-gonic/gin"
)

// RegisterResources mounts the CRUD surface for every resource type under
// the given group, each gated by its view/manage permissions.
func RegisterResources(router *gin.RouterGroup, deps *Deps, g *guard.Guard) {
	NewResourceHandler(deps, "customers", auth.PermViewCustomers, auth.PermManageCustomers,
		func(r *resource.Registry) resourceClient[model.Customer] { return r.Customers }).RegisterRoutes(router, g)

	NewResourceHandler(deps, "drivers", auth.PermViewDrivers, auth.PermManageDrivers,
		func(r *resource.Registry) resourceClient[model.Driver] { return r.Drivers }).RegisterRoutes(router, g)

	NewResourceHandler(deps, "trucks", auth.PermViewTrucks, auth.PermManageTrucks,
		func(r *resource.Registry) resourceClient[model.Truck] { return r.Trucks }).RegisterRoutes(router, g)

	NewResourceHandler(deps, "loads", auth.PermViewLoads, auth.PermEditLoads,
		func(r *resource.Registry) resourceClient[model.Load] { return r.Loads }).RegisterRoutes(router, g)

	NewResourceHandler(deps, "lanes", auth.PermViewLoads, auth.PermEditLoads,
		func(r *resource.Registry) resourceClient[model.Lane] { return r.Lanes }).RegisterRoutes(router, g)

	NewResourceHandler(deps, "invoices", auth.PermViewInvoices, auth.PermManageInvoices,
		func(r *resource.Registry) resourceClient[model.Invoice] { return r.Invoices }).RegisterRoutes(router, g)

	NewResourceHandler(deps, "payroll", auth.PermViewReports, auth.PermViewReports,
		func(r *resource.Registry) resourceClient[model.Payroll] { return r.Payroll }).RegisterRoutes(router, g)

	NewResourceHandler(deps, "expenses", auth.PermViewReports, auth.PermViewReports,
		func(r *resource.Registry) resourceClient[model.Expense] { return r.Expenses }).RegisterRoutes(router, g)

	NewResourceHandler(deps, "shippers", auth.PermViewCustomers, auth.PermManageCustomers,
		func(r *resource.Registry) resourceClient[model.Shipper] { return r.Shippers }).RegisterRoutes(router, g)

	NewResourceHandler(deps, "receivers", auth.PermViewCustomers, auth.PermManageCustomers,
		func(r *resource.Registry) resourceClient[model.Receiver] { return r.Receivers }).RegisterRoutes(router, g)
}
