package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bookstore-ledger/internal/application/dto"
	"github.com/jhoicas/bookstore-ledger/internal/application/usecase"
	"github.com/jhoicas/bookstore-ledger/internal/domain/report"
	"github.com/jhoicas/bookstore-ledger/internal/domain/repository"
	"github.com/jhoicas/bookstore-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/bookstore-ledger/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/bookstore-ledger/internal/interfaces/http"
	"github.com/jhoicas/bookstore-ledger/internal/testutil"
	"github.com/jhoicas/bookstore-ledger/pkg/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type brokenRepo struct{}

func (brokenRepo) GetSalesReport(context.Context, report.Predicate) (*report.SalesReport, error) {
	return nil, errors.New("relation \"sale\" does not exist")
}

func buildApp(t *testing.T, repo repository.SalesReportRepository, reg *prometheus.Registry, ping func(context.Context) error) *fiber.App {
	t.Helper()
	var m *metrics.ReportMetrics
	var gatherer prometheus.Gatherer
	if reg != nil {
		m = metrics.NewReportMetrics(reg)
		gatherer = reg
	}
	reportUC := usecase.NewSalesReportUseCase(repo, nil, m, nil)
	deps := apphttp.RouterDeps{
		AppName:       "bookstore-ledger-test",
		SalesReportUC: reportUC,
		SalesPDFUC:    usecase.NewSalesReportPDFUseCase(reportUC, pdf.NewMarotoPDFGenerator()),
		Gatherer:      gatherer,
		Ping:          ping,
	}
	app := apphttp.NewApp(deps)
	apphttp.Router(app, deps)
	return app
}

func seededApp(t *testing.T) *fiber.App {
	return buildApp(t, sqlite.NewSalesReportRepository(testutil.Seeded(t)), nil, nil)
}

func get(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByPublisher_PorID(t *testing.T) {
	resp := get(t, seededApp(t), "/api/publishers/1/sales")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	body := decode[dto.SalesReportResponse](t, resp)
	assert.True(t, body.Found)
	assert.Equal(t, "id", body.MatchedBy)
	require.NotNil(t, body.Publisher)
	assert.Equal(t, "Пушкин", *body.Publisher)
	require.Len(t, body.Rows, 5)
	assert.Equal(t, "Капитанская дочка", body.Rows[0].Title)
	assert.Equal(t, "600.00", body.Rows[0].Price)
}

func TestGetByPublisher_NombreEscapado(t *testing.T) {
	resp := get(t, seededApp(t), "/api/publishers/"+url.PathEscape("пушкин")+"/sales")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[dto.SalesReportResponse](t, resp)
	assert.Equal(t, "пушкин", body.Identifier)
	assert.Equal(t, "name", body.MatchedBy)
	assert.Len(t, body.Rows, 5)
}

func TestGetByPublisher_SinVentasDevuelve200(t *testing.T) {
	resp := get(t, seededApp(t), "/api/publishers/999/sales")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[dto.SalesReportResponse](t, resp)
	assert.False(t, body.Found)
	assert.Nil(t, body.Publisher)
	assert.Empty(t, body.Rows)
}

func TestSearch_IdentificadorVacio(t *testing.T) {
	resp := get(t, seededApp(t), "/api/sales?publisher=%20%20")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_IDENTIFIER", body.Code)
}

func TestSearch_PorQuery(t *testing.T) {
	resp := get(t, seededApp(t), "/api/sales?publisher="+url.QueryEscape("Толстой"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[dto.SalesReportResponse](t, resp)
	assert.Len(t, body.Rows, 2)
}

func TestGetByPublisher_FalloDeConsulta(t *testing.T) {
	resp := get(t, buildApp(t, brokenRepo{}, nil, nil), "/api/publishers/1/sales")
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "QUERY_FAILED", body.Code)
	assert.NotContains(t, body.Message, "relation", "el detalle del driver no se expone")
}

func TestGetPDFByPublisher(t *testing.T) {
	app := seededApp(t)

	resp := get(t, app, "/api/publishers/1/sales.pdf")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(raw[:4]))

	resp = get(t, app, "/api/publishers/999/sales.pdf")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	resp := get(t, seededApp(t), "/health")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	down := buildApp(t, brokenRepo{}, nil, func(context.Context) error { return errors.New("db down") })
	resp = get(t, down, "/health")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	app := buildApp(t, sqlite.NewSalesReportRepository(testutil.Seeded(t)), reg, nil)

	require.Equal(t, fiber.StatusOK, get(t, app, "/api/publishers/1/sales").StatusCode)

	resp := get(t, app, "/metrics")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `bookstore_sales_report_total{outcome="found"} 1`)
}

func TestRequestID_SeRespeta(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := seededApp(t).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}
