package usecase

import (
	"context"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para la gestión de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID. domain.ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.SafeUser, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return found(user)
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.SafeUser, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToSafeUsers(list), nil
}

// Update valida el patch y lo aplica.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.SafeUser, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.repo.Update(ctx, id, entity.UserPatch{
		FullName: in.FullName,
		Role:     in.Role,
		IsActive: in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	return found(user)
}

// Deactivate baja lógica del usuario.
func (uc *UserUseCase) Deactivate(ctx context.Context, id int64) (*dto.SafeUser, error) {
	user, err := uc.repo.Deactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	return found(user)
}

func found(u *entity.User) (*dto.SafeUser, error) {
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.ToSafeUser(u)
	return &out, nil
}
