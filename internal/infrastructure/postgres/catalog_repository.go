package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bookstore-ledger/internal/domain/entity"
	"github.com/jhoicas/bookstore-ledger/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo escritura de editoriales, tiendas, libros, stock y ventas (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// CreatePublisher persiste una editorial y asigna su ID.
func (r *CatalogRepo) CreatePublisher(ctx context.Context, p *entity.Publisher) error {
	err := r.q.QueryRow(ctx, `INSERT INTO publisher (name) VALUES ($1) RETURNING id`, p.Name).Scan(&p.ID)
	if err != nil {
		return wrapWriteErr("insert publisher", err)
	}
	return nil
}

// CreateShop persiste una tienda y asigna su ID.
func (r *CatalogRepo) CreateShop(ctx context.Context, s *entity.Shop) error {
	err := r.q.QueryRow(ctx, `INSERT INTO shop (name) VALUES ($1) RETURNING id`, s.Name).Scan(&s.ID)
	if err != nil {
		return wrapWriteErr("insert shop", err)
	}
	return nil
}

// CreateBook persiste un libro; la editorial debe existir.
func (r *CatalogRepo) CreateBook(ctx context.Context, b *entity.Book) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO book (title, id_publisher) VALUES ($1, $2) RETURNING id`,
		b.Title, b.PublisherID,
	).Scan(&b.ID)
	if err != nil {
		return wrapWriteErr("insert book", err)
	}
	return nil
}

// CreateStock persiste una posición de stock libro-tienda.
func (r *CatalogRepo) CreateStock(ctx context.Context, s *entity.Stock) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO stock (id_book, id_shop, count) VALUES ($1, $2, $3) RETURNING id`,
		s.BookID, s.ShopID, s.Count,
	).Scan(&s.ID)
	if err != nil {
		return wrapWriteErr("insert stock", err)
	}
	return nil
}

// CreateSale persiste una venta sobre una posición de stock.
func (r *CatalogRepo) CreateSale(ctx context.Context, s *entity.Sale) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO sale (price, date_sale, id_stock, count) VALUES ($1, $2, $3, $4) RETURNING id`,
		s.Price, s.DateSale.UTC(), s.StockID, s.Count,
	).Scan(&s.ID)
	if err != nil {
		return wrapWriteErr("insert sale", err)
	}
	return nil
}

// FindStock obtiene la primera posición de stock (menor id) del par libro-tienda.
func (r *CatalogRepo) FindStock(ctx context.Context, bookID, shopID int64) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(ctx, `
		SELECT id, id_book, id_shop, count
		FROM stock WHERE id_book = $1 AND id_shop = $2
		ORDER BY id LIMIT 1`, bookID, shopID,
	).Scan(&s.ID, &s.BookID, &s.ShopID, &s.Count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Stats cuenta registros por tabla en una sola consulta.
func (r *CatalogRepo) Stats(ctx context.Context) (repository.CatalogStats, error) {
	var st repository.CatalogStats
	err := r.q.QueryRow(ctx, `
		SELECT
		    (SELECT COUNT(*) FROM publisher),
		    (SELECT COUNT(*) FROM book),
		    (SELECT COUNT(*) FROM shop),
		    (SELECT COUNT(*) FROM stock),
		    (SELECT COUNT(*) FROM sale)`,
	).Scan(&st.Publishers, &st.Books, &st.Shops, &st.Stock, &st.Sales)
	if err != nil {
		return repository.CatalogStats{}, fmt.Errorf("catalog stats: %w", err)
	}
	return st, nil
}
