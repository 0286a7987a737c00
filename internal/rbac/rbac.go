package rbac

// Role is one of the three fixed staff roles. The set is closed: custom
// roles are not supported, which keeps the permission table static data.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Permission is an atomic capability gating one class of operation.
type Permission string

const (
	PermContentRead      Permission = "content:read"
	PermContentWrite     Permission = "content:write"
	PermRequestsRead     Permission = "requests:read"
	PermUsersRead        Permission = "users:read"
	PermUsersWrite       Permission = "users:write"
	PermAuditRead        Permission = "audit:read"
	PermBackupsRead      Permission = "backups:read"
	PermExtensionsManage Permission = "extensions:manage"
	PermLicenseRead      Permission = "license:read"
	PermLicenseWrite     Permission = "license:write"
	PermThemeRead        Permission = "theme:read"
	PermThemeWrite       Permission = "theme:write"
	PermPaymentsRead     Permission = "payments:read"
)

// AllPermissions lists every known permission, in a stable order.
var AllPermissions = []Permission{
	PermContentRead,
	PermContentWrite,
	PermRequestsRead,
	PermUsersRead,
	PermUsersWrite,
	PermAuditRead,
	PermBackupsRead,
	PermExtensionsManage,
	PermLicenseRead,
	PermLicenseWrite,
	PermThemeRead,
	PermThemeWrite,
	PermPaymentsRead,
}

// rolePermissions is the authoritative role→permission table. Viewer is
// read-only over public-facing data, editor adds content writes, admin holds
// everything including user management, audit, backups, license and theme.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleViewer: permSet(
		PermContentRead,
		PermRequestsRead,
	),
	RoleEditor: permSet(
		PermContentRead,
		PermContentWrite,
		PermRequestsRead,
	),
	RoleAdmin: permSet(AllPermissions...),
}

func permSet(perms ...Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// HasPermission reports whether the role grants the permission. Unknown
// roles grant nothing.
func HasPermission(role Role, perm Permission) bool {
	set, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = set[perm]
	return ok
}

// ValidRole reports whether s names one of the fixed roles.
func ValidRole(s string) bool {
	_, ok := rolePermissions[Role(s)]
	return ok
}

// PermissionsFor returns the role's permissions in table order, for the
// /api/me payload consumed by the admin UI.
func PermissionsFor(role Role) []Permission {
	set, ok := rolePermissions[role]
	if !ok {
		return []Permission{}
	}
	perms := make([]Permission, 0, len(set))
	for _, p := range AllPermissions {
		if _, granted := set[p]; granted {
			perms = append(perms, p)
		}
	}
	return perms
}
