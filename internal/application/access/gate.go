// Package access decide, a partir de la sesión y de la descripción de una vista,
// si se muestra, se espera o se redirige. Sin red y sin estado.
package access

import (
	"github.com/jhoicas/bulkbuy/internal/application/session"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
)

// ViewName identificador de una vista.
type ViewName string

// Vistas de la aplicación.
const (
	ViewHome              ViewName = "home"
	ViewLogin             ViewName = "login"
	ViewSignup            ViewName = "signup"
	ViewVendorDashboard   ViewName = "vendor-dashboard"
	ViewSupplierDashboard ViewName = "supplier-dashboard"
	ViewSupplierProducts  ViewName = "supplier-products"
	ViewMyOrders          ViewName = "my-orders"
)

// View descriptor de una vista como dato puro.
// Roles vacío = cualquier rol autenticado. PublicOnly = solo sin sesión (login/signup).
type View struct {
	Name         ViewName
	RequiresAuth bool
	Roles        []entity.Role
	PublicOnly   bool
}

// Catálogo de vistas.
var (
	Home              = View{Name: ViewHome, PublicOnly: true}
	Login             = View{Name: ViewLogin, PublicOnly: true}
	Signup            = View{Name: ViewSignup, PublicOnly: true}
	VendorDashboard   = View{Name: ViewVendorDashboard, RequiresAuth: true, Roles: []entity.Role{entity.RoleVendor}}
	SupplierDashboard = View{Name: ViewSupplierDashboard, RequiresAuth: true, Roles: []entity.Role{entity.RoleSupplier}}
	SupplierProducts  = View{Name: ViewSupplierProducts}
	MyOrders          = View{Name: ViewMyOrders, RequiresAuth: true, Roles: []entity.Role{entity.RoleSupplier}}
)

// Outcome resultado de evaluar una vista.
type Outcome int

const (
	// Wait la sesión aún se está restaurando: estado neutro, sin navegar.
	Wait Outcome = iota
	Render
	RedirectLogin
	RedirectHome
	RedirectDashboard
)

func (o Outcome) String() string {
	switch o {
	case Wait:
		return "wait"
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	case RedirectDashboard:
		return "redirect-dashboard"
	default:
		return "unknown"
	}
}

// Decision qué hacer y, si es una redirección, hacia dónde.
type Decision struct {
	Outcome Outcome
	Target  ViewName
}

// Evaluate aplica la política en orden: cargando → sin sesión → rol → solo-público → mostrar.
func Evaluate(s session.Session, v View) Decision {
	if s.Status != session.StatusReady {
		return Decision{Outcome: Wait}
	}
	if v.RequiresAuth && s.User == nil {
		return Decision{Outcome: RedirectLogin, Target: ViewLogin}
	}
	if len(v.Roles) > 0 && (s.User == nil || !hasRole(v.Roles, s.User.Role)) {
		return Decision{Outcome: RedirectHome, Target: ViewHome}
	}
	if v.PublicOnly && s.User != nil {
		if target, ok := DashboardFor(s.User.Role); ok {
			return Decision{Outcome: RedirectDashboard, Target: target}
		}
	}
	return Decision{Outcome: Render, Target: v.Name}
}

// DashboardFor panel de inicio de cada rol.
func DashboardFor(role entity.Role) (ViewName, bool) {
	switch role {
	case entity.RoleVendor:
		return ViewVendorDashboard, true
	case entity.RoleSupplier:
		return ViewSupplierDashboard, true
	default:
		return "", false
	}
}

func hasRole(roles []entity.Role, r entity.Role) bool {
	for _, allowed := range roles {
		if allowed == r {
			return true
		}
	}
	return false
}

// ByName busca una vista del catálogo por su nombre.
func ByName(name ViewName) (View, bool) {
	for _, v := range []View{Home, Login, Signup, VendorDashboard, SupplierDashboard, SupplierProducts, MyOrders} {
		if v.Name == name {
			return v, true
		}
	}
	return View{}, false
}
