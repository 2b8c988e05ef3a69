package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/jhoicas/bookstore-ledger/docs"
	"github.com/jhoicas/bookstore-ledger/internal/application/usecase"
	"github.com/jhoicas/bookstore-ledger/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/bookstore-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/bookstore-ledger/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/bookstore-ledger/internal/interfaces/http"
	"github.com/jhoicas/bookstore-ledger/pkg/config"
	"github.com/jhoicas/bookstore-ledger/pkg/logger"
	"github.com/jhoicas/bookstore-ledger/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := store.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión al almacenamiento")
	}
	defer func() { _ = db.Close() }()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reportMetrics := metrics.NewReportMetrics(registry)

	// Caché de reportes: opcional, solo si REDIS_ADDR está definido.
	var reportCache usecase.ReportCache
	if cfg.Redis.Enabled() {
		client, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, caché deshabilitada")
		} else {
			defer func() { _ = client.Close() }()
			reportCache = cache.NewRedisReportCache(client, cfg.Report.CacheTTL)
		}
	}

	salesReportUC := usecase.NewSalesReportUseCase(db.Reports, reportCache, reportMetrics, log)
	salesPDFUC := usecase.NewSalesReportPDFUseCase(salesReportUC, infrapdf.NewMarotoPDFGenerator())

	deps := httpRouter.RouterDeps{
		AppName:       cfg.App.Name,
		SalesReportUC: salesReportUC,
		SalesPDFUC:    salesPDFUC,
		ReportTimeout: cfg.Report.Timeout,
		Gatherer:      registry,
		Ping:          db.Ping,
		Log:           log,
	}
	app := httpRouter.NewApp(deps)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bookstore Ledger API",
	}))

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
