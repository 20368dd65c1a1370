// Package repositorytest provee implementaciones en memoria de los puertos de persistencia para tests.
package repositorytest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserStore)(nil)

// UserStore repositorio de usuarios en memoria, seguro para uso concurrente.
// Si Err no es nil, todas las operaciones lo devuelven.
type UserStore struct {
	mu     sync.Mutex
	users  map[int64]*entity.User
	nextID int64

	Err error
}

// NewUserStore crea un store vacío.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]*entity.User)}
}

// Create inserta aplicando los mismos defaults que la tabla users.
func (s *UserStore) Create(_ context.Context, in entity.NewUser) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.users {
		if u.Email == in.Email {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	s.nextID++
	now := time.Now().UTC()
	u := &entity.User{
		ID:           s.nextID,
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		FullName:     in.FullName,
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if u.Role == "" {
		u.Role = entity.RoleCashier
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	s.users[u.ID] = u
	return clone(u), nil
}

// FindByEmail busca por email exacto.
func (s *UserStore) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.users {
		if u.Email == email {
			return clone(u), nil
		}
	}
	return nil, nil
}

// FindByID busca por id.
func (s *UserStore) FindByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return clone(u), nil
}

// FindAll devuelve todos los usuarios ordenados por id.
func (s *UserStore) FindAll(_ context.Context) ([]*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	list := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		list = append(list, clone(u))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Update aplica el patch; (nil, nil) si el id no existe.
func (s *UserStore) Update(_ context.Context, id int64, p entity.UserPatch) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	if p.Email != nil {
		for _, other := range s.users {
			if other.ID != id && other.Email == *p.Email {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
		u.Email = *p.Email
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	u.UpdatedAt = time.Now().UTC()
	return clone(u), nil
}

// Deactivate marca IsActive=false.
func (s *UserStore) Deactivate(ctx context.Context, id int64) (*entity.User, error) {
	inactive := false
	return s.Update(ctx, id, entity.UserPatch{IsActive: &inactive})
}

// Put inserta un usuario tal cual (fixtures), asignando id si viene en cero.
func (s *UserStore) Put(u entity.User) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		s.nextID++
		u.ID = s.nextID
	} else if u.ID > s.nextID {
		s.nextID = u.ID
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
		u.UpdatedAt = u.CreatedAt
	}
	s.users[u.ID] = &u
	return clone(&u)
}

func clone(u *entity.User) *entity.User {
	c := *u
	return &c
}
