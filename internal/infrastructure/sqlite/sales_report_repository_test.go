package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bookstore-ledger/internal/domain/entity"
	"github.com/jhoicas/bookstore-ledger/internal/domain/report"
	"github.com/jhoicas/bookstore-ledger/internal/infrastructure/sqlite"
	"github.com/jhoicas/bookstore-ledger/internal/testutil"
)

type rowView struct {
	Title string
	Shop  string
	Price string
	Date  string
}

func view(rows []report.SaleRow) []rowView {
	out := make([]rowView, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowView{r.Title, r.ShopName, r.Price.StringFixed(2), r.DateSale.Format("02-01-2006")})
	}
	return out
}

var pushkinRows = []rowView{
	{"Капитанская дочка", "Буквоед", "600.00", "09-11-2022"},
	{"Руслан и Людмила", "Буквоед", "500.00", "08-11-2022"},
	{"Капитанская дочка", "Лабиринт", "580.00", "05-11-2022"},
	{"Евгений Онегин", "Книжный дом", "490.00", "02-11-2022"},
	{"Капитанская дочка", "Буквоед", "600.00", "26-10-2022"},
}

func TestSalesReport_PorID(t *testing.T) {
	repo := sqlite.NewSalesReportRepository(testutil.Seeded(t))

	rep, err := repo.GetSalesReport(context.Background(), report.Resolve("1"))
	require.NoError(t, err)

	assert.Equal(t, pushkinRows, view(rep.Rows))
	assert.True(t, rep.HasPublisher)
	assert.Equal(t, "Пушкин", rep.PublisherName)
	for _, r := range rep.Rows {
		assert.Equal(t, 1, r.Count)
		assert.Equal(t, time.UTC, r.DateSale.Location())
	}
}

func TestSalesReport_PorNombreSinMayusculas(t *testing.T) {
	repo := sqlite.NewSalesReportRepository(testutil.Seeded(t))

	for _, in := range []string{"пушкин", "ПУШК", "шкин"} {
		rep, err := repo.GetSalesReport(context.Background(), report.Resolve(in))
		require.NoError(t, err, in)
		assert.Equal(t, pushkinRows, view(rep.Rows), in)
		assert.Equal(t, "Пушкин", rep.PublisherName, in)
	}
}

func TestSalesReport_IDInexistenteVacio(t *testing.T) {
	repo := sqlite.NewSalesReportRepository(testutil.Seeded(t))

	for _, in := range []string{"999", "0", "-1", "99999999999999999999"} {
		rep, err := repo.GetSalesReport(context.Background(), report.Resolve(in))
		require.NoError(t, err, in)
		assert.True(t, rep.Empty(), in)
		assert.NotNil(t, rep.Rows, in)
		assert.False(t, rep.HasPublisher, in)
	}
}

func TestSalesReport_NombreSinCoincidencias(t *testing.T) {
	repo := sqlite.NewSalesReportRepository(testutil.Seeded(t))

	rep, err := repo.GetSalesReport(context.Background(), report.Resolve("Гоголь"))
	require.NoError(t, err)
	assert.True(t, rep.Empty())
	assert.False(t, rep.HasPublisher)
}

func TestSalesReport_EditorialSinVentasNoTieneEtiqueta(t *testing.T) {
	repo := sqlite.NewSalesReportRepository(testutil.Seeded(t))

	// Чехов (id 4) tiene libros y stock pero ninguna venta.
	for _, in := range []string{"4", "Чехов"} {
		rep, err := repo.GetSalesReport(context.Background(), report.Resolve(in))
		require.NoError(t, err)
		assert.True(t, rep.Empty(), in)
		assert.False(t, rep.HasPublisher, in)
	}
}

func TestSalesReport_FragmentoConVariasEditoriales(t *testing.T) {
	repo := sqlite.NewSalesReportRepository(testutil.Seeded(t))

	// "ст" coincide con Толстой (2) y Достоевский (3).
	rep, err := repo.GetSalesReport(context.Background(), report.Resolve("ст"))
	require.NoError(t, err)

	assert.Equal(t, []rowView{
		{"Война и мир", "Лабиринт", "800.00", "10-11-2022"},
		{"Анна Каренина", "Буквоед", "750.00", "07-11-2022"},
		{"Преступление и наказание", "Читай-город", "650.00", "03-11-2022"},
	}, view(rep.Rows))
	assert.Equal(t, "Толстой", rep.PublisherName, "la etiqueta es la editorial de menor id")
}

func TestSalesReport_ComodinesLiterales(t *testing.T) {
	db := testutil.Seeded(t)
	repo := sqlite.NewSalesReportRepository(db)

	for _, in := range []string{"%", "_", "П%н"} {
		rep, err := repo.GetSalesReport(context.Background(), report.Resolve(in))
		require.NoError(t, err, in)
		assert.True(t, rep.Empty(), "%q no es comodín", in)
	}
}

func TestSalesReport_Idempotente(t *testing.T) {
	repo := sqlite.NewSalesReportRepository(testutil.Seeded(t))
	pred := report.Resolve("1")

	first, err := repo.GetSalesReport(context.Background(), pred)
	require.NoError(t, err)
	second, err := repo.GetSalesReport(context.Background(), pred)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSalesReport_EmpateDeFechaOrdenaPorIDDeVenta(t *testing.T) {
	db := testutil.SQLite(t)
	ctx := context.Background()
	catalog := sqlite.NewCatalogRepository(db)

	pub := &entity.Publisher{Name: "Пушкин"}
	require.NoError(t, catalog.CreatePublisher(ctx, pub))
	shop := &entity.Shop{Name: "Буквоед"}
	require.NoError(t, catalog.CreateShop(ctx, shop))
	book := &entity.Book{Title: "Евгений Онегин", PublisherID: pub.ID}
	require.NoError(t, catalog.CreateBook(ctx, book))
	st := &entity.Stock{BookID: book.ID, ShopID: shop.ID, Count: 3}
	require.NoError(t, catalog.CreateStock(ctx, st))

	day := time.Date(2022, time.November, 1, 0, 0, 0, 0, time.UTC)
	for _, p := range []int64{100, 200} {
		s, err := entity.NewSale(st.ID, decimal.NewFromInt(p), day, 1)
		require.NoError(t, err)
		require.NoError(t, catalog.CreateSale(ctx, s))
	}

	rep, err := sqlite.NewSalesReportRepository(db).GetSalesReport(ctx, report.ByExactID(pub.ID))
	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, "100.00", rep.Rows[0].Price.StringFixed(2))
	assert.Equal(t, "200.00", rep.Rows[1].Price.StringFixed(2))
}

func TestSalesReport_BaseCerradaFalla(t *testing.T) {
	db := testutil.SQLite(t)
	repo := sqlite.NewSalesReportRepository(db)
	require.NoError(t, db.Close())

	_, err := repo.GetSalesReport(context.Background(), report.Resolve("1"))
	assert.Error(t, err)
}
