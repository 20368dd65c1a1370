package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
)

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{Email: "test@example.com", Password: "password123", FullName: "Test User", Role: "cashier"}
}

func TestValidate_RegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.RegisterRequest)
		field   string
		details string
	}{
		{"email con formato inválido", func(r *dto.RegisterRequest) { r.Email = "invalid-email" }, "email", "Invalid email format"},
		{"email vacío", func(r *dto.RegisterRequest) { r.Email = "" }, "email", "Invalid email format"},
		{"password corto", func(r *dto.RegisterRequest) { r.Password = "shrt" }, "password", "Password must be at least 6 characters"},
		{"fullName de un carácter", func(r *dto.RegisterRequest) { r.FullName = "X" }, "fullName", "Field is required"},
		{"rol fuera del enum", func(r *dto.RegisterRequest) { r.Role = "invalid-role" }, "role", "Role must be one of admin, manager, cashier"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegister()
			tt.mutate(&in)

			err := dto.Validate(in)

			var ve *dto.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.details, ve.Details)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestValidate_RegisterRequest_RolOpcional(t *testing.T) {
	in := validRegister()
	in.Role = ""
	assert.NoError(t, dto.Validate(in))
	assert.NoError(t, dto.Validate(validRegister()))
}

func TestValidate_LoginRequest(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.LoginRequest{Email: "no-es-email", Password: "x"}))

	err := dto.Validate(dto.LoginRequest{Email: "a@b.com"})
	var ve *dto.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password is required", ve.Details)
}

func TestValidate_UpdateUserRequest(t *testing.T) {
	role := "owner"
	err := dto.Validate(dto.UpdateUserRequest{Role: &role})
	var ve *dto.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "role", ve.Field)

	assert.NoError(t, dto.Validate(dto.UpdateUserRequest{}))
}

func TestValidate_UpdateUserRequest_PunteroAVacioEsInvalido(t *testing.T) {
	empty := ""

	err := dto.Validate(dto.UpdateUserRequest{Role: &empty})
	var ve *dto.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "role", ve.Field)
	assert.Equal(t, "Role must be one of admin, manager, cashier", ve.Details)

	err = dto.Validate(dto.UpdateUserRequest{FullName: &empty})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "fullName", ve.Field)
}

func TestToSafeUser_NoExponePassword(t *testing.T) {
	u := &entity.User{ID: 1, Email: "a@b.com", PasswordHash: "secreto", FullName: "Ana", Role: "admin", IsActive: true, CreatedAt: time.Now()}

	raw, err := json.Marshal(dto.RegisterResponse{User: dto.ToSafeUser(u)})
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secreto")
	assert.NotContains(t, string(raw), "password")
	assert.Contains(t, string(raw), `"fullName":"Ana"`)
	assert.Contains(t, string(raw), `"isActive":true`)
}
