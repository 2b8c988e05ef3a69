package repository

import (
	"context"

	"github.com/jhoicas/bookstore-ledger/internal/domain/entity"
)

// CatalogStats conteo de registros por entidad.
type CatalogStats struct {
	Publishers int
	Books      int
	Shops      int
	Stock      int
	Sales      int
}

// CatalogRepository puerto de escritura usado por el poblado inicial (seed).
// Los Create asignan el ID generado en la entidad recibida.
type CatalogRepository interface {
	CreatePublisher(ctx context.Context, p *entity.Publisher) error
	CreateShop(ctx context.Context, s *entity.Shop) error
	CreateBook(ctx context.Context, b *entity.Book) error
	CreateStock(ctx context.Context, s *entity.Stock) error
	CreateSale(ctx context.Context, s *entity.Sale) error
	// FindStock busca la posición de stock de un libro en una tienda. nil si no existe.
	FindStock(ctx context.Context, bookID, shopID int64) (*entity.Stock, error)
	Stats(ctx context.Context) (CatalogStats, error)
}

// CatalogTxRunner ejecuta fn dentro de una transacción con un CatalogRepository atado a ella.
// Si fn devuelve error se hace rollback.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(repo CatalogRepository) error) error
}
