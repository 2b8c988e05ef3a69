package cli

import (
	"github.com/spf13/cobra"
)

const msgSchemaReady = "Таблицы созданы успешно!"

// NewSchemaCommand crea el comando "schema".
func NewSchemaCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Crea las tablas si no existen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd, app, opts)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if err := s.EnsureSchema(cmd.Context()); err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}
			return opts.presenter(cmd).Line(msgSchemaReady)
		},
	}
}
