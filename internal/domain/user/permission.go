package user

type Permission string

const (
	// Own dashboard tiles: attendance, leave, tasks, personal details
	PermissionDashboardViewOwn Permission = "dashboard.view_own"
	// Company-wide tiles: attendance/leave by gender, all projects and tasks
	PermissionDashboardViewCompany Permission = "dashboard.view_company"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermissionDashboardViewOwn,
		PermissionDashboardViewCompany,
	},
	RoleManager: {
		PermissionDashboardViewOwn,
		PermissionDashboardViewCompany,
	},
	RoleEmployee: {
		PermissionDashboardViewOwn,
	},
	RolePending: {
		// Pending role has no permissions
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
