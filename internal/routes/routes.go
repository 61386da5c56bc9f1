// Package routes names the navigation surface consumed by the route guard
// and the login redirect. Paths are relative to the local client facade.
package routes

import "github.com/vetclinic/clinic-client/internal/core/domain"

const (
	Home           = "/"
	Login          = "/login"
	AdminDashboard = "/admin/dashboard"
	UserDashboard  = "/user/dashboard"
)

// Landing returns the dashboard a role lands on after login, and the place
// it is sent back to when it requests a view above its station.
func Landing(role domain.Role) string {
	if role == domain.RoleAdmin {
		return AdminDashboard
	}
	return UserDashboard
}
