package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bookstore-ledger/internal/application/usecase"
	"github.com/jhoicas/bookstore-ledger/internal/domain"
	"github.com/jhoicas/bookstore-ledger/internal/domain/report"
	"github.com/jhoicas/bookstore-ledger/internal/infrastructure/sqlite"
	fixtures "github.com/jhoicas/bookstore-ledger/internal/testutil"
	"github.com/jhoicas/bookstore-ledger/pkg/metrics"
)

type failingRepo struct {
	calls int
}

func (r *failingRepo) GetSalesReport(context.Context, report.Predicate) (*report.SalesReport, error) {
	r.calls++
	return nil, errors.New("connection refused")
}

type memoryCache struct {
	mu      sync.Mutex
	items   map[string]*report.SalesReport
	getErr  error
	setErr  error
	gets    int
	setKeys []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string]*report.SalesReport{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (*report.SalesReport, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	rep, ok := c.items[key]
	return rep, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, rep *report.SalesReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setKeys = append(c.setKeys, key)
	if c.setErr != nil {
		return c.setErr
	}
	c.items[key] = rep
	return nil
}

func newSeededUseCase(t *testing.T, cache usecase.ReportCache, m *metrics.ReportMetrics) *usecase.SalesReportUseCase {
	t.Helper()
	repo := sqlite.NewSalesReportRepository(fixtures.Seeded(t))
	return usecase.NewSalesReportUseCase(repo, cache, m, nil)
}

func TestGetSalesReport_PorID(t *testing.T) {
	uc := newSeededUseCase(t, nil, nil)

	res, err := uc.GetSalesReport(context.Background(), " 1 ")
	require.NoError(t, err)

	assert.Equal(t, "1", res.Identifier)
	assert.Equal(t, "id", res.MatchedBy)
	assert.True(t, res.Found)
	require.NotNil(t, res.Publisher)
	assert.Equal(t, "Пушкин", *res.Publisher)
	require.Len(t, res.Rows, 5)
	assert.Equal(t, "Капитанская дочка", res.Rows[0].Title)
	assert.Equal(t, "600.00", res.Rows[0].Price)
}

func TestGetSalesReport_PorNombreMismoResultado(t *testing.T) {
	uc := newSeededUseCase(t, nil, nil)

	byID, err := uc.GetSalesReport(context.Background(), "1")
	require.NoError(t, err)
	byName, err := uc.GetSalesReport(context.Background(), "пушкин")
	require.NoError(t, err)

	assert.Equal(t, "name", byName.MatchedBy)
	assert.Equal(t, byID.Rows, byName.Rows)
	assert.Equal(t, byID.Publisher, byName.Publisher)
}

func TestGetSalesReport_VacioNoEsError(t *testing.T) {
	uc := newSeededUseCase(t, nil, nil)

	res, err := uc.GetSalesReport(context.Background(), "999")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Publisher)
	assert.NotNil(t, res.Rows)
	assert.Empty(t, res.Rows)
}

func TestFindPublisherSales_IdentificadorVacio(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewReportMetrics(reg)
	repo := &failingRepo{}
	uc := usecase.NewSalesReportUseCase(repo, nil, m, nil)

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := uc.FindPublisherSales(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %q", in)
		assert.NotErrorIs(t, err, domain.ErrQueryFailed)
	}
	assert.Zero(t, repo.calls, "no se consulta el almacenamiento con entrada vacía")

	n, err := testutil.GatherAndCount(reg, "bookstore_sales_report_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFindPublisherSales_FalloDeAlmacenamiento(t *testing.T) {
	uc := usecase.NewSalesReportUseCase(&failingRepo{}, nil, nil, nil)

	rep, err := uc.FindPublisherSales(context.Background(), "1")
	assert.Nil(t, rep)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQueryFailed)

	var qe *usecase.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "1", qe.Identifier)
	assert.Contains(t, qe.Error(), "connection refused")
}

func TestFindPublisherSales_UsaCache(t *testing.T) {
	cache := newMemoryCache()
	uc := newSeededUseCase(t, cache, nil)

	first, err := uc.FindPublisherSales(context.Background(), "ПУШКИН")
	require.NoError(t, err)
	assert.Equal(t, []string{"name:пушкин"}, cache.setKeys)

	second, err := uc.FindPublisherSales(context.Background(), "пушкин")
	require.NoError(t, err)
	assert.Same(t, first, second, "la segunda consulta sale de la caché")
	assert.Len(t, cache.setKeys, 1)
}

func TestFindPublisherSales_FalloDeCacheNoRompeConsulta(t *testing.T) {
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	reg := prometheus.NewRegistry()
	uc := newSeededUseCase(t, cache, metrics.NewReportMetrics(reg))

	rep, err := uc.FindPublisherSales(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, rep.Rows, 5)

	assert.Equal(t, 1, cache.gets)
	n, err := testutil.GatherAndCount(reg, "bookstore_sales_report_cache_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "solo la etiqueta result=error")
}

func TestFindPublisherSales_FalloNoSeCachea(t *testing.T) {
	cache := newMemoryCache()
	uc := usecase.NewSalesReportUseCase(&failingRepo{}, cache, nil, nil)

	_, err := uc.FindPublisherSales(context.Background(), "1")
	require.Error(t, err)
	assert.Empty(t, cache.setKeys)
}

func TestFindPublisherSales_Concurrente(t *testing.T) {
	uc := newSeededUseCase(t, nil, nil)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rep, err := uc.FindPublisherSales(context.Background(), "пушк")
			if err == nil && len(rep.Rows) != 5 {
				err = errors.New("filas inesperadas")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
