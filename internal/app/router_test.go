package app

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

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

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	cfg := &Config{
		AppEnv:            "test",
		AppRequestTimeout: 5 * time.Second,
		RateLimit:         1000,
		RateLimitWindow:   time.Minute,
	}
	return NewRouter(RouterParams{
		Logger:               logger,
		Config:               cfg,
		NavHandler:           nav.NewHandler(),
		CategoriesHandler:    categories.NewHandler(logger, categories.NewService(categories.NewRepository())),
		SubcategoriesHandler: subcategories.NewHandler(logger, subcategories.NewService(subcategories.NewRepository())),
		BrandsHandler:        brands.NewHandler(logger, brands.NewService(brands.NewRepository())),
		ProductsHandler:      products.NewHandler(logger, products.NewService(products.NewRepository())),
		StockHandler:         inventory.NewHandler(logger, inventory.NewService(inventory.NewRepository())),
		SalesHandler:         sales.NewHandler(logger, sales.NewService(sales.NewRepository(), sales.NewCartStore())),
		AccountingHandler:    accounting.NewHandler(logger, accounting.NewService(accounting.NewRepository())),
		ReportsHandler:       reports.NewHandler(logger, reports.NewService()),
		QuotationsHandler:    quotations.NewHandler(logger, quotations.NewService(quotations.NewRepository())),
		TransfersHandler:     transfers.NewHandler(logger, transfers.NewService(transfers.NewRepository())),
		UsersHandler:         users.NewHandler(logger, users.NewService(users.NewRepository())),
	})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestNavListsElevenPanels(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nav", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Panels []nav.Panel `json:"panels"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Panels, 11)
	require.Equal(t, "categories", body.Panels[0].Key)
	require.Equal(t, "users", body.Panels[10].Key)
}

func TestEveryPanelMountAnswers(t *testing.T) {
	router := newTestRouter(t)

	paths := []string{
		"/api/categories", "/api/subcategories", "/api/brands", "/api/products",
		"/api/stock", "/api/sales", "/api/accounting/invoices", "/api/reports",
		"/api/quotations", "/api/transfers", "/api/users",
	}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestListPageSizeIsFive(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories?page=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items      []json.RawMessage `json:"items"`
		Pagination struct {
			Page       int `json:"page"`
			PerPage    int `json:"per_page"`
			Total      int `json:"total"`
			TotalPages int `json:"total_pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 5)
	require.Equal(t, 10, body.Pagination.Total)
	require.Equal(t, 2, body.Pagination.TotalPages)
}
