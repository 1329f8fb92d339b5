package domain

// Role labels carried on users and in access tokens.
const (
	RoleEmployee = "Employee"
	RoleManager  = "Manager"
	RoleAdmin    = "Admin"
)

// UserAdminRoles may manage users when authentication is enforced.
var UserAdminRoles = []string{RoleManager, RoleAdmin}
