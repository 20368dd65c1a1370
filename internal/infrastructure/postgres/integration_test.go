//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
)

// createTestDatabase levanta un PostgreSQL efímero y aplica las migraciones embebidas.
func createTestDatabase(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("pos_test"),
		tcpostgres.WithUsername("pos_user"),
		tcpostgres.WithPassword("pos_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		terminateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := pgContainer.Terminate(terminateCtx); err != nil {
			t.Logf("Warning: failed to terminate container: %s", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.ApplyMigrations(ctx, pool))
	return pool
}

func TestUserRepo_Integration(t *testing.T) {
	ctx := context.Background()
	pool := createTestDatabase(ctx, t)
	repo := postgres.NewUserRepository(pool)

	version, err := postgres.MigrationVersion(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	t.Run("aplica los defaults de columna al crear", func(t *testing.T) {
		u, err := repo.Create(ctx, entity.NewUser{Email: "test@example.com", PasswordHash: "password123", FullName: "Test User"})
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		assert.Equal(t, entity.RoleCashier, u.Role)
		assert.True(t, u.IsActive)
		assert.False(t, u.CreatedAt.IsZero())
	})

	t.Run("el constraint rechaza email duplicado", func(t *testing.T) {
		_, err := repo.Create(ctx, entity.NewUser{Email: "test@example.com", PasswordHash: "x", FullName: "Otro"})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("solo un registro concurrente gana", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make(chan error, 5)
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Create(ctx, entity.NewUser{Email: "race@example.com", PasswordHash: "p", FullName: "Race"})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		var ok, dup int
		for err := range errs {
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists):
				dup++
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, 4, dup)
	})

	t.Run("desactiva y lista", func(t *testing.T) {
		u, err := repo.FindByEmail(ctx, "test@example.com")
		require.NoError(t, err)
		require.NotNil(t, u)

		off, err := repo.Deactivate(ctx, u.ID)
		require.NoError(t, err)
		assert.False(t, off.IsActive)
		assert.True(t, !off.UpdatedAt.Before(u.UpdatedAt))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		missing, err := repo.FindByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})
}
