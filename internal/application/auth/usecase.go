package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/bulkbuy/internal/application/access"
	"github.com/jhoicas/bulkbuy/internal/application/credentials"
	"github.com/jhoicas/bulkbuy/internal/application/dto"
	"github.com/jhoicas/bulkbuy/internal/application/ports"
	"github.com/jhoicas/bulkbuy/internal/application/session"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
)

// Mensajes genéricos cuando el servicio no da detalle.
const (
	MsgLoginFailed  = "Login failed"
	MsgSignupFailed = "Signup failed"
)

// Result identidad iniciada y panel al que navegar.
type Result struct {
	User      entity.User
	Dashboard access.ViewName
}

// AuthUseCase casos de uso de autenticación: login, registro y logout.
type AuthUseCase struct {
	api     ports.AuthAPI
	session *session.Store
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(api ports.AuthAPI, store *session.Store) *AuthUseCase {
	return &AuthUseCase{api: api, session: store}
}

// Login valida presencia, autentica contra el servicio y abre la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, form credentials.LoginForm) (*Result, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	resp, err := uc.api.Login(ctx, dto.LoginRequest{
		Identifier: strings.TrimSpace(form.Identifier),
		Password:   form.Password,
		Role:       form.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("auth: login: %w", err)
	}
	return uc.open(ctx, resp)
}

// Signup valida el formulario completo y registra según el rol.
func (uc *AuthUseCase) Signup(ctx context.Context, form credentials.SignupForm) (*Result, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var (
		resp *dto.AuthResponse
		err  error
	)
	switch form.Role {
	case entity.RoleVendor:
		resp, err = uc.api.SignupVendor(ctx, dto.VendorSignupRequest{
			Name:     strings.TrimSpace(form.Name),
			Phone:    form.Phone,
			Password: form.Password,
		})
	case entity.RoleSupplier:
		resp, err = uc.api.SignupSupplier(ctx, dto.SupplierSignupRequest{
			BusinessName: strings.TrimSpace(form.BusinessName),
			Email:        strings.TrimSpace(form.Email),
			Phone:        form.Phone,
			Pincode:      strings.TrimSpace(form.Pincode),
			Password:     form.Password,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("auth: signup %s: %w", form.Role, err)
	}
	return uc.open(ctx, resp)
}

// Logout cierra la sesión.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.session.Logout(ctx)
}

func (uc *AuthUseCase) open(ctx context.Context, resp *dto.AuthResponse) (*Result, error) {
	if resp == nil || resp.AccessToken == "" || resp.User.ID == "" {
		return nil, fmt.Errorf("auth: respuesta sin usuario o token: %w", domain.ErrRemote)
	}
	if err := uc.session.Login(ctx, resp.User, resp.AccessToken); err != nil {
		return nil, err
	}
	dash, ok := access.DashboardFor(resp.User.Role)
	if !ok {
		dash = access.ViewHome
	}
	return &Result{User: resp.User, Dashboard: dash}, nil
}

// LoginFailureMessage / SignupFailureMessage texto para el usuario.
func LoginFailureMessage(err error) string  { return domain.UserMessage(err, MsgLoginFailed) }
func SignupFailureMessage(err error) string { return domain.UserMessage(err, MsgSignupFailed) }
