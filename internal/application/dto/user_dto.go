package dto

import (
	"time"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// RegisterRequest entrada de POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required,min=2"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin manager cashier"`
}

// FieldMessages mensajes de validación por campo.
func (RegisterRequest) FieldMessages() map[string]string {
	return map[string]string{
		"email":    "Invalid email format",
		"password": "Password must be at least 6 characters",
		"fullName": "Field is required",
		"role":     "Role must be one of admin, manager, cashier",
	}
}

// LoginRequest entrada de POST /auth/login. Sin reglas de formato más allá de la presencia.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest patch de usuario (CLI de operación). Los campos nil no se tocan;
// un puntero a "" sí se valida.
type UpdateUserRequest struct {
	FullName *string `json:"fullName,omitempty" validate:"omitnil,min=2"`
	Role     *string `json:"role,omitempty" validate:"omitnil,oneof=admin manager cashier"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// FieldMessages mensajes de validación por campo.
func (UpdateUserRequest) FieldMessages() map[string]string {
	return map[string]string{
		"fullName": "Full name must be at least 2 characters",
		"role":     "Role must be one of admin, manager, cashier",
	}
}

// SafeUser usuario sin material de credencial, seguro para devolver a clientes.
type SafeUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterResponse salida de POST /auth/register.
type RegisterResponse struct {
	User SafeUser `json:"user"`
}

// LoginResponse salida de POST /auth/login.
type LoginResponse struct {
	User  SafeUser `json:"user"`
	Token string   `json:"token"`
}

// ToSafeUser proyecta la entidad quitando PasswordHash.
func ToSafeUser(u *entity.User) SafeUser {
	return SafeUser{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToSafeUsers proyecta una lista.
func ToSafeUsers(list []*entity.User) []SafeUser {
	out := make([]SafeUser, 0, len(list))
	for _, u := range list {
		out = append(out, ToSafeUser(u))
	}
	return out
}
