package entity

// Role rol de un usuario del marketplace. Inmutable una vez creado el usuario.
type Role string

// Roles válidos para User.
const (
	RoleVendor   Role = "vendor"
	RoleSupplier Role = "supplier"
)

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	return r == RoleVendor || r == RoleSupplier
}

// User identidad autenticada tal como la devuelve el servicio.
// Vendor: Name + Phone. Supplier: BusinessName + Email + Phone + Pincode.
type User struct {
	ID           string `json:"_id" yaml:"id"`
	Role         Role   `json:"role" yaml:"role"`
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	BusinessName string `json:"business_name,omitempty" yaml:"business_name,omitempty"`
	Phone        string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email        string `json:"email,omitempty" yaml:"email,omitempty"`
	Pincode      string `json:"pincode,omitempty" yaml:"pincode,omitempty"`
}

// DisplayName nombre a mostrar según el rol.
func (u User) DisplayName() string {
	if u.Role == RoleSupplier && u.BusinessName != "" {
		return u.BusinessName
	}
	if u.Name != "" {
		return u.Name
	}
	return u.BusinessName
}
