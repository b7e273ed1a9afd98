package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/paydeck/transactions-console/internal/clipboard"
	"github.com/paydeck/transactions-console/internal/dto"
	"github.com/paydeck/transactions-console/internal/engine"
	"github.com/paydeck/transactions-console/internal/errs"
	"github.com/paydeck/transactions-console/internal/models"
	"github.com/paydeck/transactions-console/internal/notify"
)

// dashboardGateway is the upstream interface used by the dashboard.
type dashboardGateway interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	UpdateStatus(ctx context.Context, orderID, newStatus string) (*models.Transaction, error)
}

// dashboardService owns the dashboard screen: the raw snapshot, the
// query state, the derived filtered view, the aggregate counters, the
// edit selection and the manual-update gate. All mutation funnels
// through it; every write recomputes the filtered view before returning.
type dashboardService struct {
	gateway  dashboardGateway
	notifier notify.Notifier
	copies   *clipboard.Tracker
	pageSize int

	mu       sync.Mutex
	records  []models.Transaction
	filtered []models.Transaction
	query    engine.QueryState
	selected string
	updating bool

	total  *engine.Counter
	rate   *engine.Counter
	amount *engine.Counter
}

func NewDashboardService(gateway dashboardGateway, notifier notify.Notifier, copies *clipboard.Tracker, pageSize int, counterDuration time.Duration, now func() time.Time) *dashboardService {
	if pageSize < 1 {
		pageSize = engine.DefaultPageSize
	}
	return &dashboardService{
		gateway:  gateway,
		notifier: notifier,
		copies:   copies,
		pageSize: pageSize,
		query:    engine.QueryState{CurrentPage: 1},
		total:    engine.NewCounter(counterDuration, now),
		rate:     engine.NewCounter(counterDuration, now),
		amount:   engine.NewCounter(counterDuration, now),
	}
}

// Refresh replaces the snapshot wholesale from the gateway. On failure
// the last-known-good snapshot stays in place.
func (s *dashboardService) Refresh(ctx context.Context) error {
	records, err := s.gateway.ListTransactions(ctx)
	if err != nil {
		s.notifier.Error(ctx, "Error fetching transactions")
		return err
	}

	s.mu.Lock()
	s.records = records
	s.query.CurrentPage = 1
	s.refilterLocked()
	s.retargetLocked()
	s.mu.Unlock()
	return nil
}

// ApplyQuery updates the filter and pagination inputs and returns the
// recomputed view. Any change to search, status or date range resets the
// page to 1; otherwise the requested page is used, clamped.
func (s *dashboardService) ApplyQuery(q engine.QueryState) dto.DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtersChanged := q.SearchTerm != s.query.SearchTerm ||
		q.StatusFilter != s.query.StatusFilter ||
		q.DateRange != s.query.DateRange

	s.query.SearchTerm = q.SearchTerm
	s.query.StatusFilter = q.StatusFilter
	s.query.DateRange = q.DateRange
	switch {
	case filtersChanged:
		s.query.CurrentPage = 1
	case q.CurrentPage > 0:
		s.query.CurrentPage = q.CurrentPage
	}

	s.refilterLocked()
	return s.viewLocked()
}

// Navigate applies a pagination action: first, prev, next or last.
func (s *dashboardService) Navigate(action string) dto.DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()

	pageCount := (len(s.filtered) + s.pageSize - 1) / s.pageSize
	switch action {
	case "first":
		s.query.CurrentPage = 1
	case "prev":
		s.query.CurrentPage = engine.PrevPage(s.query.CurrentPage)
	case "next":
		s.query.CurrentPage = engine.NextPage(s.query.CurrentPage, pageCount)
	case "last":
		s.query.CurrentPage = engine.ClampPage(pageCount, pageCount)
	}
	return s.viewLocked()
}

// View returns the current filtered, paginated table without changing
// any state.
func (s *dashboardService) View() dto.DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Metrics samples the three counters and reports the targets they are
// converging to. Aggregates derive from the raw snapshot, not the
// filtered view.
func (s *dashboardService) Metrics() dto.MetricsView {
	s.mu.Lock()
	summary := engine.Summarize(s.records)
	s.mu.Unlock()

	return dto.MetricsView{
		TotalTransactions: s.total.Value(),
		SuccessRate:       s.rate.Value(),
		TotalAmount:       s.amount.Value(),
		Targets:           summary,
	}
}

// Select marks a transaction as being edited in the update modal.
func (s *dashboardService) Select(orderID string) {
	s.mu.Lock()
	s.selected = orderID
	s.mu.Unlock()
}

func (s *dashboardService) ClearSelection() {
	s.mu.Lock()
	s.selected = ""
	s.mu.Unlock()
}

// Copy places an order id on the clipboard and starts the transient
// copied affordance.
func (s *dashboardService) Copy(ctx context.Context, orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValidationError("order id is required")
	}
	return s.copies.Copy(orderID)
}

// ManualUpdate submits a status correction for one record and, on
// success, reconciles the server-confirmed result into the snapshot
// without disturbing the active filters or page. At most one update may
// be in flight; concurrent submissions are rejected without touching the
// network.
func (s *dashboardService) ManualUpdate(ctx context.Context, orderID, newStatus string) error {
	if strings.TrimSpace(orderID) == "" || strings.TrimSpace(newStatus) == "" {
		s.notifier.Error(ctx, "Select a transaction and a new status first")
		return errs.NewValidationError("order id and status are required")
	}

	s.mu.Lock()
	if s.updating {
		s.mu.Unlock()
		return errs.NewUpdateInFlightError()
	}
	s.updating = true
	s.mu.Unlock()
	defer func() {
		// Always release the gate so a failed call never leaves the
		// screen locked.
		s.mu.Lock()
		s.updating = false
		s.mu.Unlock()
	}()

	updated, err := s.gateway.UpdateStatus(ctx, orderID, newStatus)
	if err != nil {
		// Selection stays so the operator can retry.
		s.notifier.Error(ctx, "Error updating transaction status")
		return err
	}

	s.mu.Lock()
	next, err := engine.Apply(s.records, *updated)
	if err != nil {
		s.mu.Unlock()
		s.notifier.Error(ctx, "Updated transaction does not match any known record")
		return err
	}
	s.records = next
	s.refilterLocked()
	s.retargetLocked()
	s.selected = ""
	s.mu.Unlock()

	s.notifier.Success(ctx, "Transaction status updated successfully")
	return nil
}

// refilterLocked recomputes the filtered view against the current query
// state and clamps the page so it never points past the filtered length.
// Callers hold s.mu.
func (s *dashboardService) refilterLocked() {
	s.filtered = engine.Evaluate(s.records, s.query)
	pageCount := (len(s.filtered) + s.pageSize - 1) / s.pageSize
	s.query.CurrentPage = engine.ClampPage(s.query.CurrentPage, pageCount)
}

// retargetLocked points the counters at the new snapshot aggregates.
// Callers hold s.mu.
func (s *dashboardService) retargetLocked() {
	summary := engine.Summarize(s.records)
	s.total.SetTarget(float64(summary.TotalTransactions))
	s.rate.SetTarget(float64(summary.SuccessRate))
	s.amount.SetTarget(summary.TotalAmount)
}

func (s *dashboardService) viewLocked() dto.DashboardView {
	page := engine.Paginate(s.filtered, s.query.CurrentPage, s.pageSize)
	s.query.CurrentPage = page.CurrentPage
	return dto.DashboardView{
		Query:         s.query,
		FilteredCount: len(s.filtered),
		PageCount:     page.PageCount,
		Rows:          newRows(page.Items, s.copies),
		Buttons:       page.Buttons,
		Selected:      s.selected,
		Updating:      s.updating,
	}
}

// Filtered exposes the current filtered view in snapshot order, for the
// export path.
func (s *dashboardService) Filtered() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.filtered))
	copy(out, s.filtered)
	return out
}
