package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCashier = "cashier"
)

// User representa un usuario del punto de venta.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // material de credencial tal cual lo guarda el PasswordHasher configurado
	FullName     string
	Role         string // admin, manager, cashier
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser datos de alta. Role vacío e IsActive nil dejan los defaults de la tabla (cashier, true).
type NewUser struct {
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	IsActive     *bool
}

// UserPatch actualización parcial: solo se aplican los campos no nil.
type UserPatch struct {
	Email        *string
	PasswordHash *string
	FullName     *string
	Role         *string
	IsActive     *bool
}

// IsEmpty indica si el patch no modifica ningún campo.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.PasswordHash == nil && p.FullName == nil && p.Role == nil && p.IsActive == nil
}
