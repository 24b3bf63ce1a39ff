package auth

import "tmsdash/internal/model"

// Permission name constants
const (
	PermViewLoads       = "can_view_loads"
	PermCreateLoads     = "can_create_loads"
	PermEditLoads       = "can_edit_loads"
	PermDeleteLoads     = "can_delete_loads"
	PermViewDrivers     = "can_view_drivers"
	PermManageDrivers   = "can_manage_drivers"
	PermViewTrucks      = "can_view_trucks"
	PermManageTrucks    = "can_manage_trucks"
	PermViewCustomers   = "can_view_customers"
	PermManageCustomers = "can_manage_customers"
	PermViewInvoices    = "can_view_invoices"
	PermManageInvoices  = "can_manage_invoices"
	PermViewReports     = "can_view_reports"
	PermManageUsers     = "can_manage_users"
	PermManageCompany   = "can_manage_company"
)

// elevatedRoles bypass the fine-grained permissions map entirely
var elevatedRoles = map[string]bool{
	model.RoleAdmin:        true,
	model.RoleCompanyAdmin: true,
	model.RoleSuperAdmin:   true,
}

// HasPermission reports whether u holds the named permission. Nil user is
// never permitted; superusers and elevated roles always are; everyone else
// falls through to the explicit permissions map, defaulting to false.
// Pure and deterministic: safe to call on every request without caching.
func HasPermission(u *model.User, permission string) bool {
	if u == nil {
		return false
	}
	if u.IsSuperuser {
		return true
	}
	if elevatedRoles[u.Role] {
		return true
	}
	return u.Permissions[permission]
}

// HasAllPermissions reports whether u holds every named permission
func HasAllPermissions(u *model.User, permissions ...string) bool {
	for _, p := range permissions {
		if !HasPermission(u, p) {
			return false
		}
	}
	return true
}

// HasRole reports whether u's role is one of the allowed roles
func HasRole(u *model.User, roles ...string) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
