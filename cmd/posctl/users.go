package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
)

func newUsersCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Gestión de usuarios",
	}
	uc := func() *usecase.UserUseCase {
		return usecase.NewUserUseCase(postgres.NewUserRepository(e.pool))
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Lista todos los usuarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := uc().List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), list)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Muestra un usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := uc().GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "deactivate <id>",
		Short: "Baja lógica (isActive=false)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := uc().Deactivate(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	})

	cmd.AddCommand(newUsersUpdateCmd(uc))
	return cmd
}

func newUsersUpdateCmd(uc func() *usecase.UserUseCase) *cobra.Command {
	var (
		fullName string
		role     string
		active   bool
	)
	c := &cobra.Command{
		Use:   "update <id>",
		Short: "Actualiza nombre, rol o estado",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var in dto.UpdateUserRequest
			if cmd.Flags().Changed("full-name") {
				in.FullName = &fullName
			}
			if cmd.Flags().Changed("role") {
				in.Role = &role
			}
			if cmd.Flags().Changed("active") {
				in.IsActive = &active
			}
			u, err := uc().Update(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	}
	c.Flags().StringVar(&fullName, "full-name", "", "nombre completo")
	c.Flags().StringVar(&role, "role", "", "admin | manager | cashier")
	c.Flags().BoolVar(&active, "active", true, "estado de la cuenta")
	return c
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido: %q", s)
	}
	return id, nil
}
