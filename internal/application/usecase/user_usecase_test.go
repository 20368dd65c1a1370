package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository/repositorytest"
)

// createMultipleUsers crea n cajeros user{i}@example.com.
func createMultipleUsers(store *repositorytest.UserStore, n int) []*entity.User {
	out := make([]*entity.User, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, store.Put(entity.User{
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: "password123",
			FullName:     fmt.Sprintf("User %d", i),
			Role:         entity.RoleCashier,
			IsActive:     true,
		}))
	}
	return out
}

func TestUserUseCase_List(t *testing.T) {
	store := repositorytest.NewUserStore()
	createMultipleUsers(store, 3)
	uc := usecase.NewUserUseCase(store)

	list, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "user0@example.com", list[0].Email)
	assert.Equal(t, "User 2", list[2].FullName)
}

func TestUserUseCase_GetByID(t *testing.T) {
	store := repositorytest.NewUserStore()
	users := createMultipleUsers(store, 2)
	uc := usecase.NewUserUseCase(store)

	got, err := uc.GetByID(context.Background(), users[1].ID)
	require.NoError(t, err)
	assert.Equal(t, users[1].Email, got.Email)

	_, err = uc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserUseCase_Update(t *testing.T) {
	store := repositorytest.NewUserStore()
	users := createMultipleUsers(store, 1)
	uc := usecase.NewUserUseCase(store)

	t.Run("aplica patch parcial", func(t *testing.T) {
		role := entity.RoleManager
		got, err := uc.Update(context.Background(), users[0].ID, dto.UpdateUserRequest{Role: &role})

		require.NoError(t, err)
		assert.Equal(t, entity.RoleManager, got.Role)
		assert.Equal(t, "User 0", got.FullName, "los campos no enviados no cambian")
	})

	t.Run("rechaza rol inválido", func(t *testing.T) {
		role := "owner"
		_, err := uc.Update(context.Background(), users[0].ID, dto.UpdateUserRequest{Role: &role})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rol vacío no llega al store", func(t *testing.T) {
		empty := ""
		_, err := uc.Update(context.Background(), users[0].ID, dto.UpdateUserRequest{Role: &empty})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		got, _ := uc.GetByID(context.Background(), users[0].ID)
		assert.NotEmpty(t, got.Role)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		name := "Nadie"
		_, err := uc.Update(context.Background(), 999, dto.UpdateUserRequest{FullName: &name})

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserUseCase_Deactivate(t *testing.T) {
	store := repositorytest.NewUserStore()
	users := createMultipleUsers(store, 1)
	uc := usecase.NewUserUseCase(store)

	got, err := uc.Deactivate(context.Background(), users[0].ID)

	require.NoError(t, err)
	assert.False(t, got.IsActive)

	stored, _ := store.FindByID(context.Background(), users[0].ID)
	assert.False(t, stored.IsActive)
	assert.Equal(t, "password123", stored.PasswordHash, "la baja lógica no toca credenciales")
}
