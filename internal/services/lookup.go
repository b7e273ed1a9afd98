package services

import (
	"context"
	"strings"
	"sync"

	"github.com/paydeck/transactions-console/internal/clipboard"
	"github.com/paydeck/transactions-console/internal/dto"
	"github.com/paydeck/transactions-console/internal/errs"
	"github.com/paydeck/transactions-console/internal/models"
	"github.com/paydeck/transactions-console/internal/notify"
	"github.com/paydeck/transactions-console/pkg/helpers"
)

type lookupGateway interface {
	CheckStatus(ctx context.Context, orderID string) (*models.Transaction, error)
}

// lookupService is the single-order status-check screen. It tracks the
// never-searched state separately from an empty result.
type lookupService struct {
	gateway  lookupGateway
	notifier notify.Notifier
	copies   *clipboard.Tracker

	mu       sync.Mutex
	orderID  string
	result   *models.Transaction
	searched bool
}

func NewLookupService(gateway lookupGateway, notifier notify.Notifier, copies *clipboard.Tracker) *lookupService {
	return &lookupService{gateway: gateway, notifier: notifier, copies: copies}
}

// Check looks up one order. A blank id is rejected before any network
// call. A gateway miss is not an error — it is the explicit empty-result
// state. A transport failure clears the displayed result, which reads
// the same as not-found to the user.
func (s *lookupService) Check(ctx context.Context, orderID string) (dto.LookupView, error) {
	if strings.TrimSpace(orderID) == "" {
		s.notifier.Error(ctx, "Please enter an Order ID")
		return s.View(), errs.NewValidationError("order id is required")
	}

	result, err := s.gateway.CheckStatus(ctx, orderID)
	if err != nil {
		s.mu.Lock()
		s.orderID = orderID
		s.result = nil
		s.searched = true
		view := s.viewLocked()
		s.mu.Unlock()

		if _, notFound := err.(*errs.NotFoundError); notFound {
			return view, nil
		}
		s.notifier.Error(ctx, "Error checking transaction status")
		return view, err
	}

	s.mu.Lock()
	s.orderID = orderID
	s.result = result
	s.searched = true
	view := s.viewLocked()
	s.mu.Unlock()
	return view, nil
}

// Clear resets to the never-searched state, mirroring the input being
// emptied.
func (s *lookupService) Clear() {
	s.mu.Lock()
	s.orderID = ""
	s.result = nil
	s.searched = false
	s.mu.Unlock()
}

func (s *lookupService) View() dto.LookupView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *lookupService) Copy(ctx context.Context, orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValidationError("order id is required")
	}
	return s.copies.Copy(orderID)
}

func (s *lookupService) viewLocked() dto.LookupView {
	view := dto.LookupView{
		OrderID:  s.orderID,
		Searched: s.searched,
		Found:    s.result != nil,
	}
	if s.result != nil {
		view.Row = helpers.Ptr(newRow(*s.result, s.copies))
	}
	return view
}
