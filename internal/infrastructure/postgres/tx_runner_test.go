package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
)

func TestTxRunner_Run(t *testing.T) {
	t.Run("commit si el callback termina bien", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnRows(mock.NewRows(userCols).
				AddRow(int64(1), "admin@example.com", "admin123", "Admin User", "admin", true, now, now))
		mock.ExpectCommit()

		err = postgres.NewTxRunner(mock).Run(context.Background(), func(users repository.UserRepository) error {
			_, err := users.Create(context.Background(), entity.NewUser{
				Email: "admin@example.com", PasswordHash: "admin123", FullName: "Admin User", Role: entity.RoleAdmin,
			})
			return err
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback y devuelve el error del callback", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		boom := errors.New("fallo en seed")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err = postgres.NewTxRunner(mock).Run(context.Background(), func(repository.UserRepository) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("envuelve el error de begin", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		mock.ExpectBegin().WillReturnError(errors.New("sin conexión"))

		err = postgres.NewTxRunner(mock).Run(context.Background(), func(repository.UserRepository) error {
			t.Fatal("no debería ejecutarse")
			return nil
		})

		assert.ErrorContains(t, err, "begin transaction")
	})
}
