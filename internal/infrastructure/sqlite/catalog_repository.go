package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/bookstore-ledger/internal/domain"
	"github.com/jhoicas/bookstore-ledger/internal/domain/entity"
	"github.com/jhoicas/bookstore-ledger/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo escritura del catálogo sobre SQLite (usable con db o tx).
type CatalogRepo struct {
	q sqlx.ExtContext
}

// NewCatalogRepository construye el adaptador. Pasar *sqlx.DB o *sqlx.Tx.
func NewCatalogRepository(q sqlx.ExtContext) *CatalogRepo {
	return &CatalogRepo{q: q}
}

func (r *CatalogRepo) insert(ctx context.Context, op, query string, args ...any) (int64, error) {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%s: %w: %v", op, domain.ErrDanglingRef, err)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s last id: %w", op, err)
	}
	return id, nil
}

// CreatePublisher persiste una editorial y asigna su ID.
func (r *CatalogRepo) CreatePublisher(ctx context.Context, p *entity.Publisher) error {
	id, err := r.insert(ctx, "insert publisher", `INSERT INTO publisher (name) VALUES (?)`, p.Name)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// CreateShop persiste una tienda y asigna su ID.
func (r *CatalogRepo) CreateShop(ctx context.Context, s *entity.Shop) error {
	id, err := r.insert(ctx, "insert shop", `INSERT INTO shop (name) VALUES (?)`, s.Name)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// CreateBook persiste un libro; la editorial debe existir.
func (r *CatalogRepo) CreateBook(ctx context.Context, b *entity.Book) error {
	id, err := r.insert(ctx, "insert book",
		`INSERT INTO book (title, id_publisher) VALUES (?, ?)`, b.Title, b.PublisherID)
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

// CreateStock persiste una posición de stock libro-tienda.
func (r *CatalogRepo) CreateStock(ctx context.Context, s *entity.Stock) error {
	id, err := r.insert(ctx, "insert stock",
		`INSERT INTO stock (id_book, id_shop, count) VALUES (?, ?, ?)`, s.BookID, s.ShopID, s.Count)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// CreateSale persiste una venta; el precio se guarda con dos decimales y la fecha en microsegundos UTC.
func (r *CatalogRepo) CreateSale(ctx context.Context, s *entity.Sale) error {
	id, err := r.insert(ctx, "insert sale",
		`INSERT INTO sale (price, date_sale, id_stock, count) VALUES (?, ?, ?, ?)`,
		s.Price.StringFixed(entity.PriceScale), s.DateSale.UTC().UnixMicro(), s.StockID, s.Count)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// FindStock obtiene la primera posición de stock (menor id) del par libro-tienda.
func (r *CatalogRepo) FindStock(ctx context.Context, bookID, shopID int64) (*entity.Stock, error) {
	var s entity.Stock
	err := sqlx.GetContext(ctx, r.q, &s, `
		SELECT id, id_book, id_shop, count
		FROM stock WHERE id_book = ? AND id_shop = ?
		ORDER BY id LIMIT 1`, bookID, shopID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Stats cuenta registros por tabla.
func (r *CatalogRepo) Stats(ctx context.Context) (repository.CatalogStats, error) {
	var st struct {
		Publishers int `db:"publishers"`
		Books      int `db:"books"`
		Shops      int `db:"shops"`
		Stock      int `db:"stock"`
		Sales      int `db:"sales"`
	}
	err := sqlx.GetContext(ctx, r.q, &st, `
		SELECT
		    (SELECT COUNT(*) FROM publisher) AS publishers,
		    (SELECT COUNT(*) FROM book)      AS books,
		    (SELECT COUNT(*) FROM shop)      AS shops,
		    (SELECT COUNT(*) FROM stock)     AS stock,
		    (SELECT COUNT(*) FROM sale)      AS sales`)
	if err != nil {
		return repository.CatalogStats{}, fmt.Errorf("catalog stats: %w", err)
	}
	return repository.CatalogStats(st), nil
}

// isForeignKeyViolation detecta SQLITE_CONSTRAINT_FOREIGNKEY por el mensaje del driver.
func isForeignKeyViolation(err error) bool {
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
