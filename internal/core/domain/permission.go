package domain

// Role is the fixed enumeration governing permission checks.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// DefaultRole applies when a profile has no role set.
const DefaultRole = RoleViewer

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleManager, RoleOperator, RoleViewer:
		return true
	}
	return false
}

// Permission names the closed set of grantable actions.
type Permission string

const (
	PermCreateUser    Permission = "create_user"
	PermDeleteUser    Permission = "delete_user"
	PermEditUser      Permission = "edit_user"
	PermViewUser      Permission = "view_user"
	PermCreateClient  Permission = "create_client"
	PermEditClient    Permission = "edit_client"
	PermDeleteClient  Permission = "delete_client"
	PermViewClient    Permission = "view_client"
	PermCreateOrder   Permission = "create_order"
	PermEditOrder     Permission = "edit_order"
	PermDeleteOrder   Permission = "delete_order"
	PermViewOrder     Permission = "view_order"
	PermViewAnalytics Permission = "view_analytics"
)

// rolePermissions lists each role's grants explicitly. The sets form a
// superset hierarchy but are deliberately not computed by inheritance, so
// a change to one role cannot silently drift into another.
var rolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermCreateUser, PermDeleteUser, PermEditUser, PermViewUser,
		PermCreateClient, PermEditClient, PermDeleteClient, PermViewClient,
		PermCreateOrder, PermEditOrder, PermDeleteOrder, PermViewOrder,
		PermViewAnalytics,
	},
	RoleAdmin: {
		PermCreateUser, PermEditUser, PermViewUser,
		PermCreateClient, PermEditClient, PermDeleteClient, PermViewClient,
		PermCreateOrder, PermEditOrder, PermDeleteOrder, PermViewOrder,
		PermViewAnalytics,
	},
	RoleManager: {
		PermCreateClient, PermEditClient, PermViewClient,
		PermCreateOrder, PermEditOrder, PermViewOrder,
		PermViewAnalytics,
	},
	RoleOperator: {
		PermCreateOrder, PermViewClient, PermViewOrder,
	},
	RoleViewer: {
		PermViewClient, PermViewOrder, PermViewAnalytics,
	},
}

// HasPermission reports whether role may perform permission. A role not in
// the table behaves as the default role; an empty role likewise. Unknown
// permissions are simply not granted.
func HasPermission(role Role, permission Permission) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		perms = rolePermissions[DefaultRole]
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
