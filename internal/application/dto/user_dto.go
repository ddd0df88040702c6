package dto

import "github.com/jhoicas/bulkbuy/internal/domain/entity"

// LoginRequest entrada para POST /auth/login. Identifier es teléfono (vendor) o email/teléfono (supplier).
type LoginRequest struct {
	Identifier string      `json:"identifier"`
	Password   string      `json:"password"`
	Role       entity.Role `json:"role"`
}

// VendorSignupRequest entrada para POST /auth/vendor/signup.
type VendorSignupRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// SupplierSignupRequest entrada para POST /auth/supplier/signup.
type SupplierSignupRequest struct {
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Pincode      string `json:"pincode"`
	Password     string `json:"password"`
}

// AuthResponse salida de login y signup.
type AuthResponse struct {
	User        entity.User `json:"user"`
	AccessToken string      `json:"access_token"`
}
