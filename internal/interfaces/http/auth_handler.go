package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bulkbuy/internal/application/credentials"
	"github.com/jhoicas/bulkbuy/internal/application/dto"
	"github.com/jhoicas/bulkbuy/internal/domain"
	"github.com/jhoicas/bulkbuy/internal/domain/entity"
	"github.com/jhoicas/bulkbuy/pkg/jwt"
	"github.com/jhoicas/bulkbuy/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthHandler maneja registro y login.
type AuthHandler struct {
	state  *MemoryMarketplace
	jwtCfg JWTConfig
	log    *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(state *MemoryMarketplace, jwtCfg JWTConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{state: state, jwtCfg: jwtCfg, log: log}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if !in.Role.Valid() || strings.TrimSpace(in.Identifier) == "" || in.Password == "" {
		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION", "identifier, password y role son requeridos")
	}
	user, err := h.state.Authenticate(in.Role, strings.TrimSpace(in.Identifier), in.Password)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
	}
	return h.issue(c, fiber.StatusOK, user)
}

// SignupVendor POST /api/auth/vendor/signup
func (h *AuthHandler) SignupVendor(c *fiber.Ctx) error {
	var in dto.VendorSignupRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	form := credentials.SignupForm{Role: entity.RoleVendor, Name: in.Name, Phone: in.Phone, Password: in.Password}
	if err := form.Validate(); err != nil {
		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION", err.Error())
	}
	user, err := h.state.Register(entity.User{
		Role:  entity.RoleVendor,
		Name:  strings.TrimSpace(in.Name),
		Phone: in.Phone,
	}, in.Password)
	if err != nil {
		return h.registerFailed(c, err)
	}
	return h.issue(c, fiber.StatusCreated, user)
}

// SignupSupplier POST /api/auth/supplier/signup
func (h *AuthHandler) SignupSupplier(c *fiber.Ctx) error {
	var in dto.SupplierSignupRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	form := credentials.SignupForm{
		Role: entity.RoleSupplier, BusinessName: in.BusinessName, Email: in.Email,
		Pincode: in.Pincode, Phone: in.Phone, Password: in.Password,
	}
	if err := form.Validate(); err != nil {
		return fail(c, fiber.StatusUnprocessableEntity, "VALIDATION", err.Error())
	}
	user, err := h.state.Register(entity.User{
		Role:         entity.RoleSupplier,
		BusinessName: strings.TrimSpace(in.BusinessName),
		Email:        strings.TrimSpace(in.Email),
		Phone:        in.Phone,
		Pincode:      strings.TrimSpace(in.Pincode),
	}, in.Password)
	if err != nil {
		return h.registerFailed(c, err)
	}
	return h.issue(c, fiber.StatusCreated, user)
}

func (h *AuthHandler) registerFailed(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return fail(c, fiber.StatusConflict, "DUPLICATE", "An account with this phone or email already exists")
	}
	h.log.Error().Err(err).Msg("registro fallido")
	return fail(c, fiber.StatusInternalServerError, "INTERNAL", "internal error")
}

func (h *AuthHandler) issue(c *fiber.Ctx, status int, user entity.User) error {
	token, err := jwt.Generate(h.jwtCfg.Secret, user.ID, string(user.Role), h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes)
	if err != nil {
		h.log.Error().Err(err).Msg("no se pudo firmar el token")
		return fail(c, fiber.StatusInternalServerError, "INTERNAL", "internal error")
	}
	return c.Status(status).JSON(dto.AuthResponse{User: user, AccessToken: token})
}
