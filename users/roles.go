package users

// Permission tags gate access to back-office features. The role tables below
// are static data, mirrored by the backend's own checks; the client uses them
// to decide which views and actions to offer.
type Permission string

const (
	PermDashboardView Permission = "dashboard.view"

	PermOrdersView   Permission = "commandes.view"
	PermOrdersCreate Permission = "commandes.create"
	PermOrdersUpdate Permission = "commandes.update"
	PermOrdersDelete Permission = "commandes.delete"

	PermCashdeskView    Permission = "encaissement.view"
	PermCashdeskCollect Permission = "encaissement.encaisser"
	PermCashdeskCancel  Permission = "encaissement.annuler_paiement"

	PermArticlesView   Permission = "articles.view"
	PermArticlesCreate Permission = "articles.create"
	PermArticlesUpdate Permission = "articles.update"
	PermArticlesDelete Permission = "articles.delete"

	PermClientsView Permission = "clients.view"

	PermPurchasesView   Permission = "achats.view"
	PermPurchasesCreate Permission = "achats.create"
	PermPurchasesUpdate Permission = "achats.update"
	PermPurchasesDelete Permission = "achats.delete"

	PermShipmentsView   Permission = "conflivraison.view"
	PermShipmentsAction Permission = "conflivraison.action"

	PermInvoicesView Permission = "factures.view"

	PermConfigurationView Permission = "configuration.view"
	PermPagesManage       Permission = "pages.manage"
	PermUsersManage       Permission = "users.manage"
	PermRolesManage       Permission = "roles.manage"
)

// rolePerms maps each role to its capability set.
var rolePerms = map[Role][]Permission{
	RoleAdmin: {
		PermDashboardView,
		PermOrdersView, PermOrdersCreate, PermOrdersUpdate, PermOrdersDelete,
		PermCashdeskView, PermCashdeskCollect, PermCashdeskCancel,
		PermArticlesView, PermArticlesCreate, PermArticlesUpdate, PermArticlesDelete,
		PermClientsView,
		PermPurchasesView, PermPurchasesCreate, PermPurchasesUpdate, PermPurchasesDelete,
		PermShipmentsView, PermShipmentsAction,
		PermInvoicesView,
		PermConfigurationView, PermPagesManage, PermUsersManage, PermRolesManage,
	},
	RoleCommunityManager: {
		PermDashboardView,
		PermOrdersView,
		PermCashdeskView,
		PermArticlesView, PermArticlesCreate, PermArticlesUpdate,
		PermClientsView,
		PermPurchasesView,
		PermShipmentsView,
		PermInvoicesView,
	},
	RoleCommerciale: {
		PermOrdersView, PermOrdersCreate, PermOrdersUpdate,
		PermCashdeskView, PermCashdeskCollect,
		PermClientsView,
		PermInvoicesView,
	},
}

// Can reports whether the user's role grants perm. A nil user has no
// permissions.
func Can(u *User, perm Permission) bool {
	if u == nil {
		return false
	}
	for _, p := range rolePerms[u.Role] {
		if p == perm {
			return true
		}
	}
	return false
}

// CanAccess reports whether the user's role is in the allowed set. An empty
// allowed set means any authenticated user.
func CanAccess(u *User, allowed ...Role) bool {
	if u == nil {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if u.Role == r {
			return true
		}
	}
	return false
}

// DefaultRouteForRole is where each role lands after login.
func DefaultRouteForRole(role Role) string {
	switch role {
	case RoleAdmin, RoleCommunityManager:
		return "/dashboard"
	case RoleCommerciale:
		return "/commandes"
	default:
		return "/login"
	}
}
