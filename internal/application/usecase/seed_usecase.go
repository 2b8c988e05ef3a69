package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/bookstore-ledger/internal/application/dto"
	"github.com/jhoicas/bookstore-ledger/internal/domain/entity"
	"github.com/jhoicas/bookstore-ledger/internal/domain/repository"
	"github.com/jhoicas/bookstore-ledger/pkg/logger"
)

// SeedUseCase puebla el catálogo de demostración en una sola transacción.
type SeedUseCase struct {
	tx   repository.CatalogTxRunner
	data SeedData
	log  *logger.Logger
}

// NewSeedUseCase construye el caso de uso con DefaultSeedData.
func NewSeedUseCase(tx repository.CatalogTxRunner, log *logger.Logger) *SeedUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SeedUseCase{tx: tx, data: DefaultSeedData(), log: log.Component("seed")}
}

// WithData reemplaza el catálogo a insertar (pruebas).
func (uc *SeedUseCase) WithData(data SeedData) *SeedUseCase {
	uc.data = data
	return uc
}

// Seed inserta el catálogo si no hay editoriales. Si ya hay datos no modifica nada
// y devuelve Seeded=false con los conteos actuales.
func (uc *SeedUseCase) Seed(ctx context.Context) (*dto.SeedResult, error) {
	var (
		seeded bool
		stats  repository.CatalogStats
	)
	err := uc.tx.RunCatalog(ctx, func(repo repository.CatalogRepository) error {
		current, err := repo.Stats(ctx)
		if err != nil {
			return err
		}
		if current.Publishers > 0 {
			stats = current
			return nil
		}
		if err := uc.insert(ctx, repo); err != nil {
			return err
		}
		seeded = true
		stats, err = repo.Stats(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	if seeded {
		uc.log.Info().Int("publishers", stats.Publishers).Int("sales", stats.Sales).Msg("catálogo poblado")
	} else {
		uc.log.Info().Msg("catálogo existente, se omite el poblado")
	}
	return &dto.SeedResult{Seeded: seeded, Stats: dto.SeedStats(stats)}, nil
}

func (uc *SeedUseCase) insert(ctx context.Context, repo repository.CatalogRepository) error {
	publishers := make([]int64, len(uc.data.Publishers))
	for i, name := range uc.data.Publishers {
		p := &entity.Publisher{Name: name}
		if err := repo.CreatePublisher(ctx, p); err != nil {
			return err
		}
		publishers[i] = p.ID
	}

	shops := make([]int64, len(uc.data.Shops))
	for i, name := range uc.data.Shops {
		s := &entity.Shop{Name: name}
		if err := repo.CreateShop(ctx, s); err != nil {
			return err
		}
		shops[i] = s.ID
	}

	books := make([]int64, len(uc.data.Books))
	for i, sb := range uc.data.Books {
		if sb.Publisher < 0 || sb.Publisher >= len(publishers) {
			return fmt.Errorf("libro %q: editorial %d fuera de rango", sb.Title, sb.Publisher)
		}
		b := &entity.Book{Title: sb.Title, PublisherID: publishers[sb.Publisher]}
		if err := repo.CreateBook(ctx, b); err != nil {
			return err
		}
		books[i] = b.ID
	}

	for _, bookID := range books {
		for _, shopID := range shops {
			if err := repo.CreateStock(ctx, &entity.Stock{BookID: bookID, ShopID: shopID, Count: SeedStockCount}); err != nil {
				return err
			}
		}
	}

	for i, ss := range uc.data.Sales {
		if ss.Book < 0 || ss.Book >= len(books) || ss.Shop < 0 || ss.Shop >= len(shops) {
			return fmt.Errorf("venta %d: libro o tienda fuera de rango", i)
		}
		st, err := repo.FindStock(ctx, books[ss.Book], shops[ss.Shop])
		if err != nil {
			return err
		}
		if st == nil {
			return fmt.Errorf("venta %d: sin stock para libro %d en tienda %d", i, books[ss.Book], shops[ss.Shop])
		}
		sale, err := entity.NewSale(st.ID, ss.Price, ss.Date, entity.DefaultSaleCount)
		if err != nil {
			return fmt.Errorf("venta %d: %w", i, err)
		}
		if err := repo.CreateSale(ctx, sale); err != nil {
			return err
		}
	}
	return nil
}
