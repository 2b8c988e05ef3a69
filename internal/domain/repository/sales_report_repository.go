package repository

import (
	"context"

	"github.com/jhoicas/bookstore-ledger/internal/domain/report"
)

// SalesReportRepository puerto de lectura del reporte de ventas por editorial.
// Las implementaciones son read-only (no modifican datos).
type SalesReportRepository interface {
	// GetSalesReport ejecuta el join venta→stock→libro→editorial (+ tienda) filtrado por el
	// predicado y ordenado por fecha de venta descendente. Si hay filas, busca además la
	// primera editorial (menor id) que cumple el predicado para la etiqueta.
	// Ambas lecturas ven la misma instantánea y la conexión se libera siempre.
	// Un resultado vacío no es error.
	GetSalesReport(ctx context.Context, pred report.Predicate) (*report.SalesReport, error)
}
