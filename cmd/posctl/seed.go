package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// seedUsers usuarios de desarrollo.
var seedUsers = []dto.RegisterRequest{
	{Email: "admin@example.com", Password: "admin123", FullName: "Admin User", Role: entity.RoleAdmin},
	{Email: "test@example.com", Password: "password123", FullName: "Test User", Role: entity.RoleCashier},
}

func newSeedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Crea los usuarios de desarrollo si no existen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hasher, err := auth.NewPasswordHasher(e.cfg.Auth.PasswordMode)
			if err != nil {
				return err
			}
			// todos los usuarios de seed o ninguno
			return postgres.NewTxRunner(e.pool).Run(cmd.Context(), func(users repository.UserRepository) error {
				created, err := seedAll(cmd.Context(), users, hasher, e.log)
				if err != nil {
					return err
				}
				e.log.Info().Int("created", created).Msg("seed completado")
				return nil
			})
		},
	}
}

// seedAll registra los seedUsers que no existan y devuelve cuántos creó.
// Solo se omiten los emails encontrados en la consulta previa: un duplicado en el
// insert ya abortó la transacción en PostgreSQL y se devuelve como error.
func seedAll(ctx context.Context, users repository.UserRepository, hasher auth.PasswordHasher, log *logger.Logger) (int, error) {
	uc := auth.NewAuthUseCase(users, hasher, auth.NewStaticTokenIssuer(""))
	created := 0
	for _, in := range seedUsers {
		existing, err := users.FindByEmail(ctx, in.Email)
		if err != nil {
			return created, fmt.Errorf("buscar %s: %w", in.Email, err)
		}
		if existing != nil {
			log.Info().Str("email", in.Email).Msg("ya existe, se omite")
			continue
		}
		out, err := uc.Register(ctx, in)
		if err != nil {
			return created, fmt.Errorf("registrar %s: %w", in.Email, err)
		}
		created++
		log.Info().Int64("id", out.User.ID).Str("email", in.Email).Str("role", out.User.Role).Msg("usuario creado")
	}
	return created, nil
}
