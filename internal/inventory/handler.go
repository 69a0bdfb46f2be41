package inventory

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/adjust", h.Adjust)
	r.Get("/export", h.Export)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context(), ListStockRequest{
		Search: r.URL.Query().Get("search"),
		Store:  r.URL.Query().Get("store"),
	})
	if err != nil {
		h.logger.Error("list stock failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"items":  entries,
		"total":  len(entries),
		"stores": shared.Stores,
	})
}

func (h *Handler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req AdjustStockRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	entry, err := h.service.Adjust(r.Context(), req)
	if err != nil {
		h.logger.Error("adjust stock failed", slog.Any("error", err),
			slog.Int64("product_id", req.ProductID), slog.String("store", req.Store))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

// Export streams the current balances as CSV, the stock panel's report
// download.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context(), ListStockRequest{
		Search: r.URL.Query().Get("search"),
		Store:  r.URL.Query().Get("store"),
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.Attachment(w, "stock-report.csv", "text/csv")
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"product_id", "product", "store", "stock"})
	for _, e := range entries {
		_ = cw.Write([]string{
			strconv.FormatInt(e.ProductID, 10),
			e.ProductName,
			e.Store,
			strconv.Itoa(e.Stock),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logger.Error("write stock csv", slog.Any("error", err))
	}
}
