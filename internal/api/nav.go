package api

import "github.com/soaringjerry/bemestar/internal/models"

type NavItem struct {
	Label string        `json:"label"`
	Path  string        `json:"path"`
	Roles []models.Role `json:"-"`
}

// Sidebar entries in display order.
var navItems = []NavItem{
	{Label: "Empresas", Path: "/admin/empresas", Roles: []models.Role{models.RoleAdmin}},
	{Label: "Usuários", Path: "/admin/usuarios", Roles: []models.Role{models.RoleAdmin}},
	{Label: "Banco de Perguntas", Path: "/admin/perguntas", Roles: []models.Role{models.RoleAdmin}},
	{Label: "Questionários", Path: "/admin/questionarios", Roles: []models.Role{models.RoleAdmin}},
	{Label: "Questionários Pendentes", Path: "/questionarios/pendentes", Roles: []models.Role{models.RoleGestor, models.RoleUsuario}},
}

// visibleNav filters the sidebar by the signed-in user's role.
func visibleNav(ac AuthContext) []NavItem {
	out := make([]NavItem, 0, len(navItems))
	for _, it := range navItems {
		if ac.HasRole(it.Roles...) {
			out = append(out, it)
		}
	}
	return out
}

// homePath is where a user lands after signing in.
func homePath(ac AuthContext) string {
	if nav := visibleNav(ac); len(nav) > 0 {
		return nav[0].Path
	}
	return "/me"
}
