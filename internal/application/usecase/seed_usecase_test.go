package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bookstore-ledger/internal/application/dto"
	"github.com/jhoicas/bookstore-ledger/internal/application/usecase"
	"github.com/jhoicas/bookstore-ledger/internal/infrastructure/sqlite"
	fixtures "github.com/jhoicas/bookstore-ledger/internal/testutil"
)

func TestSeed_PueblaCatalogo(t *testing.T) {
	db := fixtures.SQLite(t)

	res, err := usecase.NewSeedUseCase(sqlite.NewTxRunner(db), nil).Seed(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Seeded)
	assert.Equal(t, dto.SeedStats{Publishers: 4, Books: 9, Shops: 4, Stock: 36, Sales: 8}, res.Stats)
}

func TestSeed_SegundaVezNoModifica(t *testing.T) {
	db := fixtures.Seeded(t)

	res, err := usecase.NewSeedUseCase(sqlite.NewTxRunner(db), nil).Seed(context.Background())
	require.NoError(t, err)

	assert.False(t, res.Seeded)
	assert.Equal(t, 8, res.Stats.Sales)
}

func TestSeed_DatosInvalidosHacenRollback(t *testing.T) {
	db := fixtures.SQLite(t)
	data := usecase.DefaultSeedData()
	data.Sales = append(data.Sales, usecase.DefaultSeedData().Sales[0])
	data.Sales[len(data.Sales)-1].Price = decimal.NewFromInt(-1)
	data.Sales[len(data.Sales)-1].Date = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	uc := usecase.NewSeedUseCase(sqlite.NewTxRunner(db), nil).WithData(data)
	_, err := uc.Seed(context.Background())
	require.Error(t, err)

	stats, err := sqlite.NewCatalogRepository(db).Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Publishers)
	assert.Zero(t, stats.Sales)
}

func TestSeed_EscenarioMinimo(t *testing.T) {
	db := fixtures.SQLite(t)
	data := usecase.SeedData{
		Publishers: []string{"Пушкин"},
		Shops:      []string{"Буквоед", "Лабиринт"},
		Books:      []usecase.SeedBook{{Title: "Капитанская дочка", Publisher: 0}},
		Sales: []usecase.SeedSale{
			{Book: 0, Shop: 1, Price: decimal.NewFromInt(580), Date: time.Date(2022, 11, 5, 0, 0, 0, 0, time.UTC)},
			{Book: 0, Shop: 0, Price: decimal.NewFromInt(600), Date: time.Date(2022, 11, 9, 0, 0, 0, 0, time.UTC)},
		},
	}
	_, err := usecase.NewSeedUseCase(sqlite.NewTxRunner(db), nil).WithData(data).Seed(context.Background())
	require.NoError(t, err)

	uc := usecase.NewSalesReportUseCase(sqlite.NewSalesReportRepository(db), nil, nil, nil)
	for _, in := range []string{"1", "пушкин"} {
		rep, err := uc.FindPublisherSales(context.Background(), in)
		require.NoError(t, err, in)
		require.Len(t, rep.Rows, 2, in)
		assert.Equal(t, "600.00", rep.Rows[0].Price.StringFixed(2))
		assert.Equal(t, "2022-11-09", rep.Rows[0].DateSale.Format("2006-01-02"))
		assert.Equal(t, "Буквоед", rep.Rows[0].ShopName)
		assert.Equal(t, "580.00", rep.Rows[1].Price.StringFixed(2))
		assert.Equal(t, "2022-11-05", rep.Rows[1].DateSale.Format("2006-01-02"))
	}
}
