// Package credentials valida teléfono, contraseña y formularios de login/registro
// antes de enviarlos. Funciones puras, sin red.
package credentials

import (
	"strings"

	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
)

// Mensajes mostrados al usuario.
const (
	MsgPhoneInvalid = "Phone number must be exactly 10 digits."
	MsgPasswordWeak = "Password must be at least 6 characters long and include at least one uppercase letter, one lowercase letter, and one number."
	MsgRequired     = "This field is required."
	MsgRoleInvalid  = "Choose vendor or supplier."
)

const (
	MinPasswordLength = 6
	phoneDigits       = 10
)

// ValidatePhone exige exactamente 10 dígitos ASCII.
func ValidatePhone(phone string) error {
	if len(phone) != phoneDigits {
		return domain.FieldError(domain.FieldPhone, MsgPhoneInvalid)
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return domain.FieldError(domain.FieldPhone, MsgPhoneInvalid)
		}
	}
	return nil
}

// LivePhoneError chequeo en cada pulsación: devuelve el mensaje a mostrar bajo el campo o "".
// El envío vuelve a validar con ValidatePhone; este resultado no se reutiliza.
func LivePhoneError(phone string) string {
	if ValidatePhone(phone) != nil {
		return MsgPhoneInvalid
	}
	return ""
}

// ValidatePassword fuerza de contraseña (solo en registro): mínimo 6 caracteres,
// al menos una minúscula, una mayúscula y un dígito; solo letras y dígitos.
func ValidatePassword(pw string) error {
	if len(pw) < MinPasswordLength {
		return domain.FieldError(domain.FieldPassword, MsgPasswordWeak)
	}
	var lower, upper, digit bool
	for i := 0; i < len(pw); i++ {
		switch c := pw[i]; {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		default:
			return domain.FieldError(domain.FieldPassword, MsgPasswordWeak)
		}
	}
	if !lower || !upper || !digit {
		return domain.FieldError(domain.FieldPassword, MsgPasswordWeak)
	}
	return nil
}

// LoginForm formulario de login. No se revisa la fuerza de la contraseña, solo que exista.
type LoginForm struct {
	Role       entity.Role
	Identifier string
	Password   string
}

// Validate presencia de los campos.
func (f LoginForm) Validate() error {
	errs := domain.FieldErrors{}
	if !f.Role.Valid() {
		errs.Add(domain.FieldForm, MsgRoleInvalid)
	}
	if strings.TrimSpace(f.Identifier) == "" {
		errs.Add(domain.FieldIdentifier, MsgRequired)
	}
	if f.Password == "" {
		errs.Add(domain.FieldPassword, MsgRequired)
	}
	return errs.Err()
}

// SignupForm formulario de registro; los campos usados dependen del rol.
type SignupForm struct {
	Role         entity.Role
	Name         string // vendor
	BusinessName string // supplier
	Email        string // supplier
	Pincode      string // supplier
	Phone        string
	Password     string
}

// SwitchRole cambia de rol y limpia el formulario, igual que el selector de la pantalla.
func (f *SignupForm) SwitchRole(role entity.Role) {
	*f = SignupForm{Role: role}
}

// Validate validación completa al enviar. Repite el chequeo de teléfono aunque
// el chequeo en vivo haya pasado.
func (f SignupForm) Validate() error {
	errs := domain.FieldErrors{}
	switch f.Role {
	case entity.RoleVendor:
		if strings.TrimSpace(f.Name) == "" {
			errs.Add(domain.FieldName, MsgRequired)
		}
	case entity.RoleSupplier:
		if strings.TrimSpace(f.BusinessName) == "" {
			errs.Add(domain.FieldBusinessName, MsgRequired)
		}
		if strings.TrimSpace(f.Email) == "" {
			errs.Add(domain.FieldEmail, MsgRequired)
		}
		if strings.TrimSpace(f.Pincode) == "" {
			errs.Add(domain.FieldPincode, MsgRequired)
		}
	default:
		errs.Add(domain.FieldForm, MsgRoleInvalid)
	}
	if err := ValidatePhone(f.Phone); err != nil {
		errs.Add(domain.FieldPhone, MsgPhoneInvalid)
	}
	if err := ValidatePassword(f.Password); err != nil {
		errs.Add(domain.FieldPassword, MsgPasswordWeak)
	}
	return errs.Err()
}
