package model

// Role enum constants
const (
	RoleDriver       = "driver"
	RoleCustomer     = "customer"
	RoleDispatcher   = "dispatcher"
	RoleCompanyAdmin = "company_admin"
	RoleSuperAdmin   = "super_admin"
	RoleAdmin        = "admin"
)

// User represents the authenticated dashboard user as returned by the
// upstream API, after normalization (see auth.NormalizeUser).
type User struct {
	ID          int             `json:"id"`
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Role        string          `json:"role"` // driver, customer, dispatcher, company_admin, super_admin, admin
	CompanyID   int             `json:"company_id"`
	IsActive    bool            `json:"is_active"`
	IsSuperuser bool            `json:"is_superuser"` // derived: role == super_admin
	Permissions map[string]bool `json:"permissions"`
}

// FullName joins first and last name for display
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
