// Package cli implementa la herramienta de consola: reporte de ventas, esquema y poblado.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bookstore-ledger/internal/infrastructure/store"
	"github.com/jhoicas/bookstore-ledger/pkg/config"
	"github.com/jhoicas/bookstore-ledger/pkg/logger"
)

// Formatos de salida.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // la consulta o el poblado fallaron
	ExitCommandError = 2 // configuración o conexión inválidas
)

// ExitError error con código de salida.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode extrae el código de salida; ExitFailure si err no es un *ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitFailure
}

// OpenFunc abre el almacenamiento; se inyecta para pruebas.
type OpenFunc func(ctx context.Context, cfg config.DBConfig) (*store.Store, error)

// App dependencias compartidas por los comandos.
type App struct {
	Config *config.Config
	Log    *logger.Logger
	Open   OpenFunc
	In     io.Reader
}

// RootOptions flags globales.
type RootOptions struct {
	Driver     string
	SQLitePath string
	Format     string
}

// NewRootCommand crea el comando raíz "bookstore".
func NewRootCommand(app *App) *cobra.Command {
	if app.Log == nil {
		app.Log = logger.Nop()
	}
	if app.Open == nil {
		app.Open = store.Open
	}
	if app.In == nil {
		app.In = os.Stdin
	}
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bookstore",
		Short: "Libro mayor de ventas de librerías",
		Long:  "Consulta las ventas de libros por editorial y administra el esquema y los datos de ejemplo.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != FormatText && opts.Format != FormatJSON {
				return &ExitError{Code: ExitCommandError, Err: fmt.Errorf("formato inválido %q: text|json", opts.Format)}
			}
			switch opts.Driver {
			case "", config.DriverPostgres, config.DriverSQLite:
			default:
				return &ExitError{Code: ExitCommandError, Err: fmt.Errorf("driver inválido %q: postgres|sqlite", opts.Driver)}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "almacenamiento (postgres|sqlite); por defecto DB_DRIVER")
	cmd.PersistentFlags().StringVar(&opts.SQLitePath, "sqlite", "", "ruta del archivo SQLite; por defecto SQLITE_PATH")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "formato de salida (text|json)")

	cmd.AddCommand(NewReportCommand(app, opts))
	cmd.AddCommand(NewSeedCommand(app, opts))
	cmd.AddCommand(NewSchemaCommand(app, opts))

	return cmd
}

// dbConfig aplica los flags sobre la configuración cargada.
func (o *RootOptions) dbConfig(cfg *config.Config) config.DBConfig {
	db := cfg.DB
	if o.Driver != "" {
		db.Driver = o.Driver
	}
	if o.SQLitePath != "" {
		db.SQLitePath = o.SQLitePath
		if o.Driver == "" {
			db.Driver = config.DriverSQLite
		}
	}
	return db
}

func (o *RootOptions) presenter(cmd *cobra.Command) *Presenter {
	return &Presenter{Format: o.Format, Out: cmd.OutOrStdout()}
}

// openStore abre el almacenamiento con los flags aplicados.
func openStore(cmd *cobra.Command, app *App, opts *RootOptions) (*store.Store, error) {
	s, err := app.Open(cmd.Context(), opts.dbConfig(app.Config))
	if err != nil {
		return nil, &ExitError{Code: ExitCommandError, Err: fmt.Errorf("abrir almacenamiento: %w", err)}
	}
	return s, nil
}
