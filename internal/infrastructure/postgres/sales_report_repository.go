package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/bookstore-ledger/internal/domain/report"
	"github.com/jhoicas/bookstore-ledger/internal/domain/repository"
)

var _ repository.SalesReportRepository = (*SalesReportRepo)(nil)

// SalesReportRepo consulta de solo lectura de ventas por editorial.
type SalesReportRepo struct {
	pool *pgxpool.Pool
}

// NewSalesReportRepository construye el adaptador del reporte de ventas.
func NewSalesReportRepository(pool *pgxpool.Pool) *SalesReportRepo {
	return &SalesReportRepo{pool: pool}
}

// Todos los joins son INNER: una venta con una referencia colgante en cualquier salto queda fuera.
const salesByPublisherQuery = `
	SELECT
	    b.title,
	    sh.name      AS shop_name,
	    s.price,
	    s.date_sale,
	    s.count
	FROM sale s
	JOIN stock     st ON st.id = s.id_stock
	JOIN book      b  ON b.id  = st.id_book
	JOIN publisher p  ON p.id  = b.id_publisher
	JOIN shop      sh ON sh.id = st.id_shop
	WHERE %s
	ORDER BY s.date_sale DESC, s.id ASC`

const firstPublisherQuery = `
	SELECT p.id, p.name
	FROM publisher p
	WHERE %s
	ORDER BY p.id
	LIMIT 1`

// publisherFilter traduce el predicado a una condición sobre el alias p y su argumento.
func publisherFilter(pred report.Predicate) (string, any, error) {
	switch pred.Kind() {
	case report.KindExactID:
		return "p.id = $1::bigint", pred.ID(), nil
	case report.KindNameContains:
		return `p.name ILIKE $1 ESCAPE '\'`, containsPattern(pred.Fragment()), nil
	default:
		return "", nil, fmt.Errorf("predicado desconocido: %v", pred.Kind())
	}
}

// GetSalesReport ejecuta el reporte dentro de una transacción read-only REPEATABLE READ:
// filas y etiqueta ven la misma instantánea. La conexión vuelve al pool en Commit/Rollback.
func (r *SalesReportRepo) GetSalesReport(ctx context.Context, pred report.Predicate) (*report.SalesReport, error) {
	cond, arg, err := publisherFilter(pred)
	if err != nil {
		return nil, fmt.Errorf("salesReport.GetSalesReport: %w", err)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("salesReport.GetSalesReport begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := r.querySales(ctx, tx, cond, arg)
	if err != nil {
		return nil, err
	}

	out := &report.SalesReport{Rows: rows}
	if len(rows) > 0 {
		var id int64
		err := tx.QueryRow(ctx, fmt.Sprintf(firstPublisherQuery, cond), arg).Scan(&id, &out.PublisherName)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
		case err != nil:
			return nil, fmt.Errorf("salesReport.GetSalesReport publisher: %w", err)
		default:
			out.HasPublisher = true
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("salesReport.GetSalesReport commit: %w", err)
	}
	return out, nil
}

func (r *SalesReportRepo) querySales(ctx context.Context, q Querier, cond string, arg any) ([]report.SaleRow, error) {
	rows, err := q.Query(ctx, fmt.Sprintf(salesByPublisherQuery, cond), arg)
	if err != nil {
		return nil, fmt.Errorf("salesReport.querySales: %w", err)
	}
	defer rows.Close()

	results := []report.SaleRow{}
	for rows.Next() {
		var row report.SaleRow
		if err := rows.Scan(
			&row.Title,
			&row.ShopName,
			&row.Price,
			&row.DateSale,
			&row.Count,
		); err != nil {
			return nil, fmt.Errorf("salesReport.querySales scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("salesReport.querySales rows: %w", err)
	}
	return results, nil
}
