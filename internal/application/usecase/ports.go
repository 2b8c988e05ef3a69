package usecase

import (
	"context"

	"github.com/jhoicas/bookstore-ledger/internal/application/dto"
	"github.com/jhoicas/bookstore-ledger/internal/domain/report"
)

// ReportCache caché opcional de reportes (cache-aside). ok=false indica fallo de caché.
type ReportCache interface {
	Get(ctx context.Context, key string) (r *report.SalesReport, ok bool, err error)
	Set(ctx context.Context, key string, r *report.SalesReport) error
}

// SalesReportPDFGenerator genera la representación PDF de un reporte.
type SalesReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, rep *dto.SalesReportResponse) ([]byte, error)
}
