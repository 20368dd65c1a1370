package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// DBInterface contrato mínimo que necesita el repositorio; lo cumplen *pgxpool.Pool, pgx.Tx y pgxmock.
type DBInterface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var userColumns = []string{
	"id", "email", "password_hash", "full_name", "role", "is_active", "created_at", "updated_at",
}

var returningUser = "RETURNING " + strings.Join(userColumns, ", ")

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db DBInterface
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DBInterface) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserta el usuario y devuelve la fila con el id generado.
// No verifica duplicados: el constraint users_email_key se traduce a ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, in entity.NewUser) (*entity.User, error) {
	cols := []string{"email", "password_hash", "full_name"}
	vals := []any{in.Email, in.PasswordHash, in.FullName}
	if in.Role != "" {
		cols = append(cols, "role")
		vals = append(vals, in.Role)
	}
	if in.IsActive != nil {
		cols = append(cols, "is_active")
		vals = append(vals, *in.IsActive)
	}

	query, args, err := squirrel.Insert("users").
		Columns(cols...).
		Values(vals...).
		Suffix(returningUser).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var u entity.User
	if err := pgxscan.Get(ctx, r.db, &u, query, args...); err != nil {
		if isEmailTaken(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

// FindByEmail obtiene un usuario por email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, "get user by email")
}

// FindByID obtiene un usuario por id.
func (r *UserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "get user by id")
}

// FindAll lista todos los usuarios, sin paginación.
func (r *UserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	query, args, err := squirrel.Select(userColumns...).
		From("users").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}
	var list []*entity.User
	if err := pgxscan.Select(ctx, r.db, &list, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}

// Update aplica un patch parcial y devuelve la fila actualizada; (nil, nil) si el id no existe.
func (r *UserRepo) Update(ctx context.Context, id int64, p entity.UserPatch) (*entity.User, error) {
	b := squirrel.Update("users").Set("updated_at", squirrel.Expr("now()"))
	if p.Email != nil {
		b = b.Set("email", *p.Email)
	}
	if p.PasswordHash != nil {
		b = b.Set("password_hash", *p.PasswordHash)
	}
	if p.FullName != nil {
		b = b.Set("full_name", *p.FullName)
	}
	if p.Role != nil {
		b = b.Set("role", *p.Role)
	}
	if p.IsActive != nil {
		b = b.Set("is_active", *p.IsActive)
	}

	query, args, err := b.
		Where(squirrel.Eq{"id": id}).
		Suffix(returningUser).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	var u entity.User
	if err := pgxscan.Get(ctx, r.db, &u, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		if isEmailTaken(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &u, nil
}

// Deactivate baja lógica: is_active = false.
func (r *UserRepo) Deactivate(ctx context.Context, id int64) (*entity.User, error) {
	inactive := false
	return r.Update(ctx, id, entity.UserPatch{IsActive: &inactive})
}

func (r *UserRepo) getOne(ctx context.Context, where squirrel.Eq, op string) (*entity.User, error) {
	query, args, err := squirrel.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}
	var u entity.User
	if err := pgxscan.Get(ctx, r.db, &u, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
