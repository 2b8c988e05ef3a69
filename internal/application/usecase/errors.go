package usecase

import (
	"fmt"

	"github.com/jhoicas/bookstore-ledger/internal/domain"
)

// QueryError señal uniforme de "consulta fallida" con la causa legible.
// errors.Is(err, domain.ErrQueryFailed) es verdadero; Unwrap expone la causa original.
type QueryError struct {
	Identifier string
	Err        error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s (identificador %q): %v", domain.ErrQueryFailed.Error(), e.Identifier, e.Err)
}

// Unwrap permite inspeccionar la causa (p. ej. context.DeadlineExceeded).
func (e *QueryError) Unwrap() error { return e.Err }

// Is hace que el error coincida con domain.ErrQueryFailed.
func (e *QueryError) Is(target error) bool { return target == domain.ErrQueryFailed }
