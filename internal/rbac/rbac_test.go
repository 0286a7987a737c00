package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleGrants(t *testing.T) {
	viewerPerms := map[Permission]bool{
		PermContentRead:  true,
		PermRequestsRead: true,
	}
	editorPerms := map[Permission]bool{
		PermContentRead:  true,
		PermContentWrite: true,
		PermRequestsRead: true,
	}

	for _, perm := range AllPermissions {
		assert.True(t, HasPermission(RoleAdmin, perm), "admin should hold %s", perm)
		assert.Equal(t, editorPerms[perm], HasPermission(RoleEditor, perm), "editor grant for %s", perm)
		assert.Equal(t, viewerPerms[perm], HasPermission(RoleViewer, perm), "viewer grant for %s", perm)
	}
}

func TestUnknownRoleGrantsNothing(t *testing.T) {
	for _, perm := range AllPermissions {
		assert.False(t, HasPermission(Role("superuser"), perm))
		assert.False(t, HasPermission(Role(""), perm))
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("admin"))
	assert.True(t, ValidRole("editor"))
	assert.True(t, ValidRole("viewer"))
	assert.False(t, ValidRole("Admin"))
	assert.False(t, ValidRole("owner"))
	assert.False(t, ValidRole(""))
}

func TestPermissionsFor(t *testing.T) {
	assert.Len(t, PermissionsFor(RoleAdmin), len(AllPermissions))
	assert.Equal(t, []Permission{PermContentRead, PermContentWrite, PermRequestsRead}, PermissionsFor(RoleEditor))
	assert.Equal(t, []Permission{PermContentRead, PermRequestsRead}, PermissionsFor(RoleViewer))
	assert.Empty(t, PermissionsFor(Role("ghost")))
}
