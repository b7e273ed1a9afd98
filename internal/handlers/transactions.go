package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paydeck/transactions-console/internal/dto"
	"github.com/paydeck/transactions-console/internal/response"
)

type SchoolService interface {
	Search(ctx context.Context, schoolID string) (dto.SchoolView, error)
	GoTo(page int) dto.SchoolView
	Copy(ctx context.Context, orderID string) error
}

type LookupService interface {
	Check(ctx context.Context, orderID string) (dto.LookupView, error)
	Copy(ctx context.Context, orderID string) error
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
	SchoolSvc       SchoolService
	LookupSvc       LookupService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		DashboardSvc:    deps.DashboardSvc,
		SchoolSvc:       deps.SchoolSvc,
		LookupSvc:       deps.LookupSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/manual-update", h.ManualUpdate)
	r.Get("/check-status/{orderId}", h.CheckStatus)
	r.Post("/check-status/copy", h.LookupCopy)
	r.Get("/school/{schoolId}", h.SchoolTransactions)
	r.Post("/school/page", h.SchoolPage)
	r.Post("/school/copy", h.SchoolCopy)
	return r
}

func (h *transactionHandlers) ManualUpdate(w http.ResponseWriter, r *http.Request) {
	var req dto.ManualUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.DashboardSvc.ManualUpdate(r.Context(), req.CustomOrderID, req.Status); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DashboardSvc.View())
}

func (h *transactionHandlers) CheckStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	view, err := h.LookupSvc.Check(r.Context(), orderID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, view)
}

func (h *transactionHandlers) SchoolTransactions(w http.ResponseWriter, r *http.Request) {
	schoolID := chi.URLParam(r, "schoolId")
	view, err := h.SchoolSvc.Search(r.Context(), schoolID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, view)
}

type schoolPageRequest struct {
	Page int `json:"page"`
}

// SchoolPage moves within the already-fetched school result without
// another upstream call.
func (h *transactionHandlers) SchoolPage(w http.ResponseWriter, r *http.Request) {
	var req schoolPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.SchoolSvc.GoTo(req.Page))
}

func (h *transactionHandlers) SchoolCopy(w http.ResponseWriter, r *http.Request) {
	var req dto.CopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.SchoolSvc.Copy(r.Context(), req.CustomOrderID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *transactionHandlers) LookupCopy(w http.ResponseWriter, r *http.Request) {
	var req dto.CopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.LookupSvc.Copy(r.Context(), req.CustomOrderID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
