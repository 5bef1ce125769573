package user

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // HR manager - sees company-wide figures
	RoleEmployee Role = "employee" // Regular employee
	RolePending  Role = "pending"  // Still in onboarding
)

// Caller is the authenticated user behind a request, taken from token claims.
type Caller struct {
	UserID     string
	EmployeeID *string
	Role       Role
}

// IsManager checks if the caller is manager or owner
func (c Caller) IsManager() bool {
	return HasPermission(c.Role, PermissionDashboardViewCompany)
}
