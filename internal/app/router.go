package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storeline-pos/storeline/internal/accounting"
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
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	NavHandler           *nav.Handler
	CategoriesHandler    *categories.Handler
	SubcategoriesHandler *subcategories.Handler
	BrandsHandler        *brands.Handler
	ProductsHandler      *products.Handler
	StockHandler         *inventory.Handler
	SalesHandler         *sales.Handler
	AccountingHandler    *accounting.Handler
	ReportsHandler       *reports.Handler
	QuotationsHandler    *quotations.Handler
	TransfersHandler     *transfers.Handler
	UsersHandler         *users.Handler
}

// NewRouter constructs the chi.Router with Storeline defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/nav", func(sub chi.Router) { params.NavHandler.MountRoutes(sub) })
		api.Route("/categories", func(sub chi.Router) { params.CategoriesHandler.MountRoutes(sub) })
		api.Route("/subcategories", func(sub chi.Router) { params.SubcategoriesHandler.MountRoutes(sub) })
		api.Route("/brands", func(sub chi.Router) { params.BrandsHandler.MountRoutes(sub) })
		api.Route("/products", func(sub chi.Router) { params.ProductsHandler.MountRoutes(sub) })
		api.Route("/stock", func(sub chi.Router) { params.StockHandler.MountRoutes(sub) })
		api.Route("/sales", func(sub chi.Router) { params.SalesHandler.MountRoutes(sub) })
		api.Route("/accounting", func(sub chi.Router) { params.AccountingHandler.MountRoutes(sub) })
		api.Route("/reports", func(sub chi.Router) { params.ReportsHandler.MountRoutes(sub) })
		api.Route("/quotations", func(sub chi.Router) { params.QuotationsHandler.MountRoutes(sub) })
		api.Route("/transfers", func(sub chi.Router) { params.TransfersHandler.MountRoutes(sub) })
		api.Route("/users", func(sub chi.Router) { params.UsersHandler.MountRoutes(sub) })
	})

	return r
}
