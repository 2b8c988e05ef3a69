package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/bookstore-ledger/internal/application/dto"
	"github.com/jhoicas/bookstore-ledger/internal/domain"
	"github.com/jhoicas/bookstore-ledger/internal/domain/entity"
	"github.com/jhoicas/bookstore-ledger/internal/domain/report"
	"github.com/jhoicas/bookstore-ledger/internal/domain/repository"
	"github.com/jhoicas/bookstore-ledger/pkg/logger"
	"github.com/jhoicas/bookstore-ledger/pkg/metrics"
)

// SalesReportUseCase orquesta el reporte de ventas por editorial:
//   - Valida el identificador (vacío = error de entrada, no de consulta).
//   - Lo resuelve a un predicado (id exacto o subcadena del nombre).
//   - Consulta el repositorio (con caché opcional) y traduce los fallos a QueryError.
//
// No guarda estado mutable entre llamadas; es seguro para uso concurrente.
type SalesReportUseCase struct {
	repo    repository.SalesReportRepository
	cache   ReportCache
	metrics *metrics.ReportMetrics
	log     *logger.Logger
}

// NewSalesReportUseCase construye el caso de uso. cache, m y log pueden ser nil.
func NewSalesReportUseCase(
	repo repository.SalesReportRepository,
	cache ReportCache,
	m *metrics.ReportMetrics,
	log *logger.Logger,
) *SalesReportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SalesReportUseCase{repo: repo, cache: cache, metrics: m, log: log.Component("sales_report")}
}

// FindPublisherSales devuelve todas las ventas de las editoriales que coinciden con identifier,
// de la más reciente a la más antigua. Un reporte vacío no es error.
//
// Errores: domain.ErrInvalidInput si identifier está vacío o solo tiene espacios;
// *QueryError (errors.Is domain.ErrQueryFailed) si falla el almacenamiento. Nunca hay filas parciales.
func (uc *SalesReportUseCase) FindPublisherSales(ctx context.Context, identifier string) (*report.SalesReport, error) {
	input := strings.TrimSpace(identifier)
	if input == "" {
		uc.metrics.ObserveOutcome(metrics.OutcomeInvalid)
		return nil, fmt.Errorf("%w: identificador de editorial vacío", domain.ErrInvalidInput)
	}

	pred := report.Resolve(input)
	start := time.Now()

	rep, err := uc.load(ctx, pred)
	uc.metrics.ObserveDuration(pred.Kind().String(), time.Since(start))
	if err != nil {
		uc.metrics.ObserveOutcome(metrics.OutcomeError)
		uc.log.Error().Err(err).Str("identifier", input).Stringer("predicate", pred).Msg("reporte de ventas fallido")
		return nil, &QueryError{Identifier: input, Err: err}
	}

	outcome := metrics.OutcomeFound
	if rep.Empty() {
		outcome = metrics.OutcomeEmpty
	}
	uc.metrics.ObserveOutcome(outcome)
	uc.log.Debug().
		Str("identifier", input).
		Stringer("predicate", pred).
		Int("rows", len(rep.Rows)).
		Dur("duration", time.Since(start)).
		Msg("reporte de ventas")
	return rep, nil
}

// GetSalesReport igual que FindPublisherSales pero devuelve el DTO de presentación.
func (uc *SalesReportUseCase) GetSalesReport(ctx context.Context, identifier string) (*dto.SalesReportResponse, error) {
	rep, err := uc.FindPublisherSales(ctx, identifier)
	if err != nil {
		return nil, err
	}
	input := strings.TrimSpace(identifier)
	return toSalesReportResponse(input, report.Resolve(input), rep), nil
}

// load aplica cache-aside. Los fallos de caché se registran y nunca hacen fallar la consulta.
func (uc *SalesReportUseCase) load(ctx context.Context, pred report.Predicate) (*report.SalesReport, error) {
	if uc.cache == nil {
		return uc.query(ctx, pred)
	}

	key := pred.Key()
	cached, ok, err := uc.cache.Get(ctx, key)
	switch {
	case err != nil:
		uc.metrics.ObserveCache(metrics.CacheError)
		uc.log.Warn().Err(err).Str("key", key).Msg("leer caché de reportes")
	case ok:
		uc.metrics.ObserveCache(metrics.CacheHit)
		return cached, nil
	default:
		uc.metrics.ObserveCache(metrics.CacheMiss)
	}

	rep, err := uc.query(ctx, pred)
	if err != nil {
		return nil, err
	}
	if err := uc.cache.Set(ctx, key, rep); err != nil {
		uc.metrics.ObserveCache(metrics.CacheError)
		uc.log.Warn().Err(err).Str("key", key).Msg("escribir caché de reportes")
	}
	return rep, nil
}

func (uc *SalesReportUseCase) query(ctx context.Context, pred report.Predicate) (*report.SalesReport, error) {
	rep, err := uc.repo.GetSalesReport(ctx, pred)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		rep = &report.SalesReport{}
	}
	if rep.Rows == nil {
		rep.Rows = []report.SaleRow{}
	}
	return rep, nil
}

func toSalesReportResponse(input string, pred report.Predicate, rep *report.SalesReport) *dto.SalesReportResponse {
	out := &dto.SalesReportResponse{
		Identifier: input,
		MatchedBy:  pred.Kind().String(),
		Found:      !rep.Empty(),
		Rows:       make([]dto.SaleRowDTO, 0, len(rep.Rows)),
	}
	if rep.HasPublisher {
		name := rep.PublisherName
		out.Publisher = &name
	}
	for _, r := range rep.Rows {
		out.Rows = append(out.Rows, dto.SaleRowDTO{
			Title:    r.Title,
			ShopName: r.ShopName,
			Price:    r.Price.StringFixed(entity.PriceScale),
			DateSale: r.DateSale,
			Count:    r.Count,
		})
	}
	return out
}
