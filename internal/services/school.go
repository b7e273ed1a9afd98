package services

import (
	"context"
	"strings"
	"sync"

	"github.com/paydeck/transactions-console/internal/clipboard"
	"github.com/paydeck/transactions-console/internal/dto"
	"github.com/paydeck/transactions-console/internal/engine"
	"github.com/paydeck/transactions-console/internal/errs"
	"github.com/paydeck/transactions-console/internal/models"
	"github.com/paydeck/transactions-console/internal/notify"
	"github.com/paydeck/transactions-console/pkg/logger"
)

type schoolGateway interface {
	ListSchoolTransactions(ctx context.Context, schoolID string) ([]models.Transaction, error)
}

// schoolService is the school-scoped screen. Filtering already happened
// server-side by school id, so there is no local search or date filter —
// only pagination over the fetched rows.
type schoolService struct {
	gateway  schoolGateway
	notifier notify.Notifier
	copies   *clipboard.Tracker
	pageSize int

	mu       sync.Mutex
	schoolID string
	records  []models.Transaction
	searched bool
	page     int
}

func NewSchoolService(gateway schoolGateway, notifier notify.Notifier, copies *clipboard.Tracker, pageSize int) *schoolService {
	if pageSize < 1 {
		pageSize = engine.DefaultPageSize
	}
	return &schoolService{
		gateway:  gateway,
		notifier: notifier,
		copies:   copies,
		pageSize: pageSize,
		page:     1,
	}
}

// Search fetches the transactions for one school. A blank id is rejected
// before any network call; a transport failure clears the rows and
// leaves the screen in the searched-but-empty state.
func (s *schoolService) Search(ctx context.Context, schoolID string) (dto.SchoolView, error) {
	if strings.TrimSpace(schoolID) == "" {
		s.notifier.Error(ctx, "Please enter a School ID")
		return s.View(), errs.NewValidationError("school id is required")
	}

	log, ctx := logger.With(ctx, "school_id", schoolID)

	records, err := s.gateway.ListSchoolTransactions(ctx, schoolID)
	if err != nil {
		s.mu.Lock()
		s.schoolID = schoolID
		s.records = nil
		s.searched = true
		s.page = 1
		view := s.viewLocked()
		s.mu.Unlock()
		s.notifier.Error(ctx, "Error fetching transactions")
		return view, err
	}

	s.mu.Lock()
	s.schoolID = schoolID
	s.records = records
	s.searched = true
	s.page = 1
	view := s.viewLocked()
	s.mu.Unlock()

	log.Info("school transactions fetched", "count", len(records))
	if len(records) > 0 {
		s.notifier.Success(ctx, "School transactions fetched successfully")
	}
	return view, nil
}

// Clear resets to the never-searched state, mirroring the input being
// emptied.
func (s *schoolService) Clear() {
	s.mu.Lock()
	s.schoolID = ""
	s.records = nil
	s.searched = false
	s.page = 1
	s.mu.Unlock()
}

// GoTo moves to a page of the current result, clamped.
func (s *schoolService) GoTo(page int) dto.SchoolView {
	s.mu.Lock()
	defer s.mu.Unlock()
	pageCount := (len(s.records) + s.pageSize - 1) / s.pageSize
	s.page = engine.ClampPage(page, pageCount)
	return s.viewLocked()
}

func (s *schoolService) View() dto.SchoolView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *schoolService) Copy(ctx context.Context, orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValidationError("order id is required")
	}
	return s.copies.Copy(orderID)
}

func (s *schoolService) viewLocked() dto.SchoolView {
	page := engine.Paginate(s.records, s.page, s.pageSize)
	s.page = page.CurrentPage
	return dto.SchoolView{
		SchoolID:    s.schoolID,
		Searched:    s.searched,
		RecordCount: len(s.records),
		PageCount:   page.PageCount,
		CurrentPage: page.CurrentPage,
		Rows:        newRows(page.Items, s.copies),
		Buttons:     page.Buttons,
	}
}
