package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrValidation       = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrRemote           = errors.New("el servicio rechazó la petición")
	ErrTransport        = errors.New("fallo de red")
	ErrCorruptSession   = errors.New("sesión persistida corrupta")
	ErrNotAuthenticated = errors.New("no hay sesión iniciada")
	ErrCancelled        = errors.New("operación cancelada por el usuario")
)

// Campos a los que se asocian los errores de validación.
const (
	FieldPhone        = "phone"
	FieldPassword     = "password"
	FieldIdentifier   = "identifier"
	FieldName         = "name"
	FieldBusinessName = "business_name"
	FieldEmail        = "email"
	FieldPincode      = "pincode"
	FieldQuantity     = "quantity"
	FieldPrice        = "price"
	FieldPaymentMode  = "paymentMode"
	FieldProduct      = "productId"
	FieldSupplier     = "supplierId"
	FieldForm         = "form" // slot general del formulario
)

// FieldErrors errores de validación local, uno por campo. Nunca salen a la red.
type FieldErrors map[string]string

// Add registra el mensaje para el campo si aún no tiene uno.
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// Merge incorpora los campos de otro FieldErrors; cualquier otro error va al slot general.
func (fe FieldErrors) Merge(err error) {
	if err == nil {
		return
	}
	var other FieldErrors
	if !errors.As(err, &other) {
		fe.Add(FieldForm, err.Error())
		return
	}
	for f, msg := range other {
		fe.Add(f, msg)
	}
}

// Err devuelve nil si no hay errores.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return strings.Join(parts, "; ")
}

// Is permite errors.Is(err, ErrValidation).
func (fe FieldErrors) Is(target error) bool { return target == ErrValidation }

// FieldError construye un FieldErrors de un solo campo.
func FieldError(field, msg string) FieldErrors {
	return FieldErrors{field: msg}
}

// RemoteError respuesta no exitosa del servicio remoto.
type RemoteError struct {
	Status int
	Detail string // mensaje del servicio ("detail"); puede venir vacío
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("remoto HTTP %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("remoto HTTP %d", e.Status)
}

// Unwrap traduce el status HTTP al error de dominio equivalente.
func (e *RemoteError) Unwrap() error {
	switch e.Status {
	case 400, 422:
		return ErrValidation
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 409:
		return ErrDuplicate
	default:
		return ErrRemote
	}
}

// TransportError fallo de red o timeout; nunca se reintenta.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return e.Op + ": " + e.Err.Error() }

// Unwrap expone tanto ErrTransport como la causa original.
func (e *TransportError) Unwrap() []error { return []error{ErrTransport, e.Err} }

// UserMessage devuelve el texto para el usuario: el detalle del servicio si lo hay,
// el error de validación tal cual, o el mensaje genérico.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe.Error()
	}
	var re *RemoteError
	if errors.As(err, &re) && re.Detail != "" {
		return re.Detail
	}
	return fallback
}
