package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/storeline-pos/storeline/internal/accounting"
	"github.com/storeline-pos/storeline/internal/app"
	"github.com/storeline-pos/storeline/internal/inventory"
	"github.com/storeline-pos/storeline/internal/masterdata/brands"
	"github.com/storeline-pos/storeline/internal/masterdata/categories"
	"github.com/storeline-pos/storeline/internal/masterdata/products"
	"github.com/storeline-pos/storeline/internal/masterdata/subcategories"
	"github.com/storeline-pos/storeline/internal/nav"
	"github.com/storeline-pos/storeline/internal/reports"
	"github.com/storeline-pos/storeline/internal/sales"
	"github.com/storeline-pos/storeline/internal/sales/quotations"
	"github.com/storeline-pos/storeline/internal/transfers"
	"github.com/storeline-pos/storeline/internal/users"
	"github.com/storeline-pos/storeline/jobs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Default().Warn("load .env", slog.Any("error", err))
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	accountingService := accounting.NewService(accounting.NewRepository())

	router := app.NewRouter(app.RouterParams{
		Logger:               logger,
		Config:               cfg,
		NavHandler:           nav.NewHandler(),
		CategoriesHandler:    categories.NewHandler(logger, categories.NewService(categories.NewRepository())),
		SubcategoriesHandler: subcategories.NewHandler(logger, subcategories.NewService(subcategories.NewRepository())),
		BrandsHandler:        brands.NewHandler(logger, brands.NewService(brands.NewRepository())),
		ProductsHandler:      products.NewHandler(logger, products.NewService(products.NewRepository())),
		StockHandler:         inventory.NewHandler(logger, inventory.NewService(inventory.NewRepository())),
		SalesHandler:         sales.NewHandler(logger, sales.NewService(sales.NewRepository(), sales.NewCartStore())),
		AccountingHandler:    accounting.NewHandler(logger, accountingService),
		ReportsHandler:       reports.NewHandler(logger, reports.NewService()),
		QuotationsHandler:    quotations.NewHandler(logger, quotations.NewService(quotations.NewRepository())),
		TransfersHandler:     transfers.NewHandler(logger, transfers.NewService(transfers.NewRepository())),
		UsersHandler:         users.NewHandler(logger, users.NewService(users.NewRepository())),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	scheduler := jobs.NewScheduler(logger, accountingService, cfg.OverdueSweepSpec)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := scheduler.Start(); err != nil {
			return err
		}
		<-gctx.Done()
		scheduler.Stop()
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("runtime", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
