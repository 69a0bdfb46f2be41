package reports

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Tabs)
	r.Get("/sales", h.Sales)
	r.Get("/sales/export", h.ExportSales)
	r.Get("/inventory", h.Inventory)
	r.Get("/inventory/export", h.ExportInventory)
	r.Get("/invoices", h.Invoices)
	r.Get("/invoices/export", h.ExportInvoices)
	r.Get("/pnl", h.ProfitAndLoss)
	r.Get("/pnl/export", h.ExportProfitAndLoss)
}

func (h *Handler) Tabs(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"tabs": Tabs})
}

func (h *Handler) Sales(w http.ResponseWriter, r *http.Request) {
	items := h.service.Sales(r.Context())
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *Handler) Inventory(w http.ResponseWriter, r *http.Request) {
	items := h.service.Movements(r.Context())
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *Handler) Invoices(w http.ResponseWriter, r *http.Request) {
	items := h.service.Invoices(r.Context())
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *Handler) ProfitAndLoss(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.ProfitAndLoss(r.Context()))
}

func (h *Handler) ExportSales(w http.ResponseWriter, r *http.Request) {
	h.writeCSV(w, "sales-report.csv", [][]string{{"date", "store", "total", "items"}}, func(rows *[][]string) {
		for _, row := range h.service.Sales(r.Context()) {
			*rows = append(*rows, []string{
				row.Date, row.Store,
				strconv.FormatFloat(row.Total, 'f', 2, 64),
				strconv.Itoa(row.Items),
			})
		}
	})
}

func (h *Handler) ExportInventory(w http.ResponseWriter, r *http.Request) {
	h.writeCSV(w, "inventory-report.csv", [][]string{{"product", "movement", "reason", "date"}}, func(rows *[][]string) {
		for _, row := range h.service.Movements(r.Context()) {
			*rows = append(*rows, []string{row.Product, row.Movement, row.Reason, row.Date})
		}
	})
}

func (h *Handler) ExportInvoices(w http.ResponseWriter, r *http.Request) {
	h.writeCSV(w, "invoice-report.csv", [][]string{{"id", "customer", "amount", "status", "date"}}, func(rows *[][]string) {
		for _, row := range h.service.Invoices(r.Context()) {
			*rows = append(*rows, []string{
				strconv.FormatInt(row.ID, 10), row.Customer,
				strconv.FormatFloat(row.Amount, 'f', 2, 64),
				row.Status, row.Date,
			})
		}
	})
}

func (h *Handler) ExportProfitAndLoss(w http.ResponseWriter, r *http.Request) {
	pnl := h.service.ProfitAndLoss(r.Context())
	h.writeCSV(w, "pnl-report.csv", [][]string{{"line", "amount"}}, func(rows *[][]string) {
		*rows = append(*rows,
			[]string{"Revenue", strconv.FormatFloat(pnl.Revenue, 'f', 2, 64)},
			[]string{"Cost of Goods", strconv.FormatFloat(pnl.CostOfGoods, 'f', 2, 64)},
			[]string{"Expenses", strconv.FormatFloat(pnl.Expenses, 'f', 2, 64)},
			[]string{"Profit", strconv.FormatFloat(pnl.Profit, 'f', 2, 64)},
		)
	})
}

func (h *Handler) writeCSV(w http.ResponseWriter, filename string, rows [][]string, fill func(*[][]string)) {
	fill(&rows)
	httpx.Attachment(w, filename, "text/csv")
	cw := csv.NewWriter(w)
	_ = cw.WriteAll(rows)
	if err := cw.Error(); err != nil {
		h.logger.Error("write report csv", slog.Any("error", err), slog.String("file", filename))
	}
}
