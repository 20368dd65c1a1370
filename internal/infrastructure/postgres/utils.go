package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Nombre del constraint único de email en la migración 00001.
const usersEmailKey = "users_email_key"

// isEmailTaken indica si err es la violación de unicidad (23505) sobre users.email.
func isEmailTaken(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == "23505" &&
		pgErr.ConstraintName == usersEmailKey
}
