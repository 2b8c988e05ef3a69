package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bookstore-ledger/internal/domain/entity"
	"github.com/jhoicas/bookstore-ledger/internal/domain/report"
	"github.com/jhoicas/bookstore-ledger/internal/domain/repository"
)

var _ repository.SalesReportRepository = (*SalesReportRepo)(nil)

// SalesReportRepo reporte de ventas por editorial sobre SQLite.
// El LIKE de SQLite solo ignora mayúsculas en ASCII, así que el predicado por nombre
// se evalúa en Go (case folding Unicode) y se traduce a una lista de ids.
type SalesReportRepo struct {
	db *sqlx.DB
}

// NewSalesReportRepository construye el adaptador.
func NewSalesReportRepository(db *sqlx.DB) *SalesReportRepo {
	return &SalesReportRepo{db: db}
}

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

type saleRowModel struct {
	Title    string          `db:"title"`
	ShopName string          `db:"shop_name"`
	Price    decimal.Decimal `db:"price"`
	DateSale int64           `db:"date_sale"`
	Count    int             `db:"count"`
}

// publisherFilter resuelve el predicado a una condición sobre p y, si ya se conoce,
// la primera editorial que coincide.
func publisherFilter(ctx context.Context, q sqlx.QueryerContext, pred report.Predicate) (string, []any, *entity.Publisher, error) {
	switch pred.Kind() {
	case report.KindExactID:
		return "p.id = ?", []any{pred.ID()}, nil, nil
	case report.KindNameContains:
		var all []entity.Publisher
		if err := sqlx.SelectContext(ctx, q, &all, `SELECT id, name FROM publisher ORDER BY id`); err != nil {
			return "", nil, nil, fmt.Errorf("listar editoriales: %w", err)
		}
		var ids []int64
		var first *entity.Publisher
		for i := range all {
			if !pred.Matches(all[i]) {
				continue
			}
			if first == nil {
				first = &all[i]
			}
			ids = append(ids, all[i].ID)
		}
		if len(ids) == 0 {
			// Sin editoriales: el join se ejecuta igual y devuelve cero filas.
			return "1 = 0", nil, nil, nil
		}
		cond, args, err := sqlx.In("p.id IN (?)", ids)
		if err != nil {
			return "", nil, nil, fmt.Errorf("armar filtro: %w", err)
		}
		return cond, args, first, nil
	default:
		return "", nil, nil, fmt.Errorf("predicado desconocido: %v", pred.Kind())
	}
}

// GetSalesReport ejecuta el reporte dentro de una transacción (misma instantánea para filas y etiqueta).
func (r *SalesReportRepo) GetSalesReport(ctx context.Context, pred report.Predicate) (*report.SalesReport, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("salesReport.GetSalesReport begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	cond, args, first, err := publisherFilter(ctx, tx, pred)
	if err != nil {
		return nil, fmt.Errorf("salesReport.GetSalesReport: %w", err)
	}

	var models []saleRowModel
	if err := sqlx.SelectContext(ctx, tx, &models, fmt.Sprintf(salesByPublisherQuery, cond), args...); err != nil {
		return nil, fmt.Errorf("salesReport.GetSalesReport query: %w", err)
	}

	out := &report.SalesReport{Rows: make([]report.SaleRow, 0, len(models))}
	for _, m := range models {
		out.Rows = append(out.Rows, report.SaleRow{
			Title:    m.Title,
			ShopName: m.ShopName,
			Price:    m.Price,
			DateSale: time.UnixMicro(m.DateSale).UTC(),
			Count:    m.Count,
		})
	}

	if len(out.Rows) > 0 {
		if first == nil {
			var p entity.Publisher
			err := sqlx.GetContext(ctx, tx, &p, `SELECT id, name FROM publisher p WHERE `+cond+` ORDER BY id LIMIT 1`, args...)
			switch {
			case errors.Is(err, sql.ErrNoRows):
			case err != nil:
				return nil, fmt.Errorf("salesReport.GetSalesReport publisher: %w", err)
			default:
				first = &p
			}
		}
		if first != nil {
			out.PublisherName = first.Name
			out.HasPublisher = true
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("salesReport.GetSalesReport commit: %w", err)
	}
	return out, nil
}
