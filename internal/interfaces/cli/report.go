package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bookstore-ledger/internal/application/usecase"
	"github.com/jhoicas/bookstore-ledger/internal/domain"
)

// NewReportCommand crea el comando "report".
func NewReportCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report [identificador]",
		Short: "Ventas de libros de una editorial (por ID o parte del nombre)",
		Long: `Muestra todas las ventas de libros de las editoriales que coinciden con el identificador.

Un entero se interpreta como ID exacto; cualquier otro texto como parte del nombre,
sin distinguir mayúsculas. Sin argumento, el identificador se lee de la entrada estándar.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, app, opts, args)
		},
	}
}

func runReport(cmd *cobra.Command, app *App, opts *RootOptions, args []string) error {
	out := opts.presenter(cmd)

	input := strings.Join(args, " ")
	if len(args) == 0 {
		if err := out.Line(msgPrompt); err != nil {
			return err
		}
		line, err := readLine(app)
		if err != nil {
			return &ExitError{Code: ExitCommandError, Err: fmt.Errorf("leer entrada: %w", err)}
		}
		input = line
	}
	if strings.TrimSpace(input) == "" {
		return out.Line(msgEmptyInput)
	}

	s, err := openStore(cmd, app, opts)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	ctx := cmd.Context()
	if app.Config.Report.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, app.Config.Report.Timeout)
		defer cancel()
	}

	uc := usecase.NewSalesReportUseCase(s.Reports, nil, nil, app.Log)
	rep, err := uc.GetSalesReport(ctx, input)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return out.Line(msgEmptyInput)
	case err != nil:
		fmt.Fprintf(cmd.ErrOrStderr(), msgQueryFailed+"\n", err)
		return &ExitError{Code: ExitFailure, Err: err}
	}
	return out.SalesReport(rep)
}

// readLine lee una línea de app.In. EOF sin datos equivale a entrada vacía.
func readLine(app *App) (string, error) {
	sc := bufio.NewScanner(app.In)
	if sc.Scan() {
		return sc.Text(), nil
	}
	return "", sc.Err()
}
