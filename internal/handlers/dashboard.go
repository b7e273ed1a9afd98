package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/paydeck/transactions-console/internal/dto"
	"github.com/paydeck/transactions-console/internal/engine"
	"github.com/paydeck/transactions-console/internal/export"
	"github.com/paydeck/transactions-console/internal/models"
	"github.com/paydeck/transactions-console/internal/response"
)

type DashboardService interface {
	Refresh(ctx context.Context) error
	ApplyQuery(q engine.QueryState) dto.DashboardView
	Navigate(action string) dto.DashboardView
	View() dto.DashboardView
	Metrics() dto.MetricsView
	Select(orderID string)
	ClearSelection()
	Copy(ctx context.Context, orderID string) error
	ManualUpdate(ctx context.Context, orderID, newStatus string) error
	Filtered() []models.Transaction
}

type dashboardHandlers struct {
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
}

func NewDashboardHandlers(deps *Deps) *dashboardHandlers {
	return &dashboardHandlers{
		ResponseHandler: deps.ResponseHandler,
		DashboardSvc:    deps.DashboardSvc,
	}
}

func (h *dashboardHandlers) DashboardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetDashboard)
	r.Post("/refresh", h.Refresh)
	r.Get("/metrics", h.Metrics)
	r.Post("/navigate", h.Navigate)
	r.Post("/select", h.Select)
	r.Post("/copy", h.Copy)
	r.Get("/export", h.Export)
	return r
}

// GetDashboard applies the query parameters and returns the recomputed
// table. An absent page param leaves the current page alone.
func (h *dashboardHandlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	view := h.DashboardSvc.ApplyQuery(engine.QueryState{
		SearchTerm:   q.Get("search"),
		StatusFilter: q.Get("status"),
		DateRange: engine.DateRange{
			Start: q.Get("start"),
			End:   q.Get("end"),
		},
		CurrentPage: page,
	})
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, view)
}

func (h *dashboardHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.DashboardSvc.Refresh(r.Context()); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DashboardSvc.View())
}

func (h *dashboardHandlers) Metrics(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DashboardSvc.Metrics())
}

type navigateRequest struct {
	Action string `json:"action"`
}

func (h *dashboardHandlers) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DashboardSvc.Navigate(req.Action))
}

type selectRequest struct {
	CustomOrderID string `json:"custom_order_id"`
}

// Select marks a row for the update modal; an empty id closes it.
func (h *dashboardHandlers) Select(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if req.CustomOrderID == "" {
		h.DashboardSvc.ClearSelection()
	} else {
		h.DashboardSvc.Select(req.CustomOrderID)
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DashboardSvc.View())
}

func (h *dashboardHandlers) Copy(w http.ResponseWriter, r *http.Request) {
	var req dto.CopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.DashboardSvc.Copy(r.Context(), req.CustomOrderID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DashboardSvc.View())
}

// Export streams the current filtered view as a spreadsheet download.
func (h *dashboardHandlers) Export(w http.ResponseWriter, r *http.Request) {
	data, name, err := export.WriteXLSX(h.DashboardSvc.Filtered())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
