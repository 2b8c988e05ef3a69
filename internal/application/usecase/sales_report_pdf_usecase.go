package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/bookstore-ledger/internal/domain"
)

// SalesReportPDFUseCase genera el reporte de ventas en PDF.
type SalesReportPDFUseCase struct {
	reports *SalesReportUseCase
	pdf     SalesReportPDFGenerator
}

// NewSalesReportPDFUseCase construye el caso de uso.
func NewSalesReportPDFUseCase(reports *SalesReportUseCase, pdf SalesReportPDFGenerator) *SalesReportPDFUseCase {
	return &SalesReportPDFUseCase{reports: reports, pdf: pdf}
}

// GetSalesReportPDF devuelve los bytes del PDF. Sin ventas devuelve domain.ErrNotFound:
// no se emite un documento vacío.
func (uc *SalesReportPDFUseCase) GetSalesReportPDF(ctx context.Context, identifier string) ([]byte, error) {
	rep, err := uc.reports.GetSalesReport(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if !rep.Found {
		return nil, fmt.Errorf("%w: sin ventas para %q", domain.ErrNotFound, rep.Identifier)
	}
	out, err := uc.pdf.GenerateSalesReportPDF(ctx, rep)
	if err != nil {
		return nil, fmt.Errorf("generar pdf: %w", err)
	}
	return out, nil
}
