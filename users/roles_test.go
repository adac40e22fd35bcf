package users_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MbolafyDev/go-backoffice/users"
)

func userWithRole(role users.Role) *users.User {
	return &users.User{ID: 1, Username: "u", Role: role}
}

func TestCan(t *testing.T) {
	admin := userWithRole(users.RoleAdmin)
	commerciale := userWithRole(users.RoleCommerciale)
	cm := userWithRole(users.RoleCommunityManager)

	require.True(t, users.Can(admin, users.PermUsersManage))
	require.True(t, users.Can(admin, users.PermOrdersDelete))

	require.True(t, users.Can(commerciale, users.PermOrdersCreate))
	require.True(t, users.Can(commerciale, users.PermCashdeskCollect))
	require.False(t, users.Can(commerciale, users.PermDashboardView))
	require.False(t, users.Can(commerciale, users.PermOrdersDelete))
	require.False(t, users.Can(commerciale, users.PermCashdeskCancel))

	require.True(t, users.Can(cm, users.PermDashboardView))
	require.True(t, users.Can(cm, users.PermArticlesUpdate))
	require.False(t, users.Can(cm, users.PermArticlesDelete))
	require.False(t, users.Can(cm, users.PermOrdersCreate))

	require.False(t, users.Can(nil, users.PermDashboardView))
	require.False(t, users.Can(userWithRole("UNKNOWN"), users.PermOrdersView))
}

func TestCanAccess(t *testing.T) {
	commerciale := userWithRole(users.RoleCommerciale)

	// An empty allowed set means any authenticated user.
	require.True(t, users.CanAccess(commerciale))
	require.False(t, users.CanAccess(nil))

	require.True(t, users.CanAccess(commerciale, users.RoleAdmin, users.RoleCommerciale))
	require.False(t, users.CanAccess(commerciale, users.RoleAdmin, users.RoleCommunityManager))
}

func TestDefaultRouteForRole(t *testing.T) {
	require.Equal(t, "/dashboard", users.DefaultRouteForRole(users.RoleAdmin))
	require.Equal(t, "/dashboard", users.DefaultRouteForRole(users.RoleCommunityManager))
	require.Equal(t, "/commandes", users.DefaultRouteForRole(users.RoleCommerciale))
	require.Equal(t, "/login", users.DefaultRouteForRole(""))
}

func TestFullName(t *testing.T) {
	u := &users.User{FirstName: "Rina", LastName: "Rakoto"}
	require.Equal(t, "Rina Rakoto", u.FullName())

	require.Equal(t, "Rina", (&users.User{FirstName: "Rina"}).FullName())
	require.Equal(t, "", (&users.User{}).FullName())
}
