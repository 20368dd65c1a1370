package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/pkg/metrics"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	metrics *metrics.Metrics
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{uc: uc, metrics: m}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, fullName, role"
// @Success      200   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		h.metrics.AuthAttempt("register", "invalid")
		return invalidBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		var ve *dto.ValidationError
		switch {
		case errors.As(err, &ve):
			h.metrics.AuthAttempt("register", "invalid")
			return validationFailed(c, ve.Details)
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			h.metrics.AuthAttempt("register", "duplicate")
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "User already exists"})
		}
		h.metrics.AuthAttempt("register", "error")
		return err
	}
	h.metrics.AuthAttempt("register", "success")
	return c.JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		h.metrics.AuthAttempt("login", "invalid")
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		var ve *dto.ValidationError
		switch {
		case errors.As(err, &ve):
			h.metrics.AuthAttempt("login", "invalid")
			return validationFailed(c, ve.Details)
		case errors.Is(err, domain.ErrInvalidCredentials):
			h.metrics.AuthAttempt("login", "invalid_credentials")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid credentials"})
		case errors.Is(err, domain.ErrAccountDeactivated):
			h.metrics.AuthAttempt("login", "deactivated")
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Account is deactivated"})
		}
		h.metrics.AuthAttempt("login", "error")
		return err
	}
	h.metrics.AuthAttempt("login", "success")
	return c.JSON(out)
}

func invalidBody(c *fiber.Ctx) error {
	return validationFailed(c, "invalid request body")
}

func validationFailed(c *fiber.Ctx, details string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Error: dto.ValidationFailed, Details: details})
}
