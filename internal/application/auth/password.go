package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Modos de almacenamiento de password (AUTH_PASSWORD_MODE).
const (
	PasswordModePlain  = "plain"
	PasswordModeBcrypt = "bcrypt"
)

// PasswordHasher convierte el password recibido en material almacenable y lo compara en login.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(stored, password string) bool
}

// NewPasswordHasher devuelve el hasher para el modo configurado.
func NewPasswordHasher(mode string) (PasswordHasher, error) {
	switch mode {
	case PasswordModePlain, "":
		return PlainPasswords{}, nil
	case PasswordModeBcrypt:
		return BcryptPasswords{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("modo de password desconocido: %q", mode)
	}
}

// PlainPasswords guarda y compara el password tal cual.
// Mantiene compatibles las filas existentes creadas sin hash.
type PlainPasswords struct{}

func (PlainPasswords) Hash(password string) (string, error) { return password, nil }

func (PlainPasswords) Matches(stored, password string) bool { return stored == password }

// BcryptPasswords hashea con bcrypt.
type BcryptPasswords struct {
	Cost int
}

func (b BcryptPasswords) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

func (BcryptPasswords) Matches(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
