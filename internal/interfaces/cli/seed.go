package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bookstore-ledger/internal/application/usecase"
)

// NewSeedCommand crea el comando "seed": aplica el esquema y carga los datos de ejemplo.
func NewSeedCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Crea las tablas y carga los datos de ejemplo si la base está vacía",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.presenter(cmd)
			s, err := openStore(cmd, app, opts)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if err := s.EnsureSchema(cmd.Context()); err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}
			if err := out.Line(msgSchemaReady); err != nil {
				return err
			}

			res, err := usecase.NewSeedUseCase(s.Catalog, app.Log).Seed(cmd.Context())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Ошибка при создании базы данных: %v\n", err)
				return &ExitError{Code: ExitFailure, Err: err}
			}
			return out.Seed(res)
		},
	}
}
