package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/bookstore-ledger/internal/application/dto"
	"github.com/jhoicas/bookstore-ledger/internal/application/usecase"
	"github.com/jhoicas/bookstore-ledger/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName       string
	SalesReportUC *usecase.SalesReportUseCase
	SalesPDFUC    *usecase.SalesReportPDFUseCase
	ReportTimeout time.Duration
	// Gatherer origen de /metrics; nil no expone la ruta.
	Gatherer prometheus.Gatherer
	// Ping verifica el almacenamiento para /health; nil responde siempre ok.
	Ping func(ctx context.Context) error
	Log  *logger.Logger
}

// NewApp crea la aplicación Fiber con los middlewares comunes.
func NewApp(deps RouterDeps) *fiber.App {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(AccessLog(log.Component("http")))
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps))

	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	// Reportes de ventas (público, solo lectura)
	salesHandler := NewSalesReportHandler(deps.SalesReportUC, deps.SalesPDFUC, deps.ReportTimeout)
	api.Get("/sales", salesHandler.Search)
	publishers := api.Group("/publishers")
	publishers.Get("/:identifier/sales.pdf", salesHandler.GetPDFByPublisher)
	publishers.Get("/:identifier/sales", salesHandler.GetByPublisher)
}

func healthHandler(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.Ping != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := deps.Ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: err.Error()})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	}
}
