package services

import (
	"context"
	"testing"
	"time"

	"github.com/paydeck/transactions-console/internal/clipboard"
	"github.com/paydeck/transactions-console/internal/errs"
	"github.com/paydeck/transactions-console/internal/models"
	"github.com/paydeck/transactions-console/pkg/helpers"
)

type fakeSchoolGateway struct {
	records []models.Transaction
	err     error
	calls   int
	lastID  string
}

func (f *fakeSchoolGateway) ListSchoolTransactions(_ context.Context, schoolID string) ([]models.Transaction, error) {
	f.calls++
	f.lastID = schoolID
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func newSchool(records []models.Transaction) (*schoolService, *fakeSchoolGateway, *fakeNotifier) {
	clock := newFakeClock()
	gw := &fakeSchoolGateway{records: records}
	notifier := &fakeNotifier{}
	copies := clipboard.NewTracker(clipboard.NewMemory(), 2*time.Second, clock.now)
	return NewSchoolService(gw, notifier, copies, 5), gw, notifier
}

func TestSchoolSearchBlankIDRejectedBeforeNetwork(t *testing.T) {
	svc, gw, notifier := newSchool(makeSnapshot(3))

	_, err := svc.Search(helpers.TestCtx(), "   ")
	if _, ok := err.(*errs.ValidationError); !ok {
		t.Fatalf("error type = %T, want *errs.ValidationError", err)
	}
	if gw.calls != 0 {
		t.Fatal("blank id must not reach the gateway")
	}
	if notifier.errorCount() != 1 {
		t.Fatalf("error notifications = %d, want 1", notifier.errorCount())
	}

	view := svc.View()
	if view.Searched {
		t.Fatal("rejected search must not mark the screen as searched")
	}
}

func TestSchoolSearchPaginatesResult(t *testing.T) {
	svc, gw, notifier := newSchool(makeSnapshot(12))

	view, err := svc.Search(helpers.TestCtx(), "sch-100")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if gw.lastID != "sch-100" {
		t.Fatalf("gateway got %q", gw.lastID)
	}
	if view.RecordCount != 12 || view.PageCount != 3 || view.CurrentPage != 1 {
		t.Fatalf("view = %d records, %d pages, page %d", view.RecordCount, view.PageCount, view.CurrentPage)
	}
	if len(view.Rows) != 5 {
		t.Fatalf("rows on page 1 = %d, want 5", len(view.Rows))
	}
	if len(notifier.successes) != 1 {
		t.Fatalf("success notifications = %d, want 1", len(notifier.successes))
	}

	view = svc.GoTo(3)
	if view.CurrentPage != 3 || len(view.Rows) != 2 {
		t.Fatalf("page 3 = %d rows at page %d", len(view.Rows), view.CurrentPage)
	}
	if view = svc.GoTo(99); view.CurrentPage != 3 {
		t.Fatalf("overshoot clamped to %d, want 3", view.CurrentPage)
	}
}

func TestSchoolSearchEmptyResultIsNotAnError(t *testing.T) {
	svc, _, notifier := newSchool(nil)

	view, err := svc.Search(helpers.TestCtx(), "sch-999")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if !view.Searched || view.RecordCount != 0 {
		t.Fatalf("view = searched %v, %d records", view.Searched, view.RecordCount)
	}
	if len(notifier.successes) != 0 {
		t.Fatal("empty result must not announce success")
	}
}

func TestSchoolSearchFailureClearsRows(t *testing.T) {
	svc, gw, notifier := newSchool(makeSnapshot(6))

	if _, err := svc.Search(helpers.TestCtx(), "sch-100"); err != nil {
		t.Fatalf("search error: %v", err)
	}

	gw.err = errs.NewTransportError("list school transactions", "gateway down")
	view, err := svc.Search(helpers.TestCtx(), "sch-100")
	if err == nil {
		t.Fatal("expected search to fail")
	}
	if view.RecordCount != 0 || !view.Searched {
		t.Fatalf("view = %d records, searched %v", view.RecordCount, view.Searched)
	}
	if notifier.errorCount() != 1 {
		t.Fatalf("error notifications = %d, want 1", notifier.errorCount())
	}
}

func TestSchoolClearResetsToNeverSearched(t *testing.T) {
	svc, _, _ := newSchool(makeSnapshot(6))

	if _, err := svc.Search(helpers.TestCtx(), "sch-100"); err != nil {
		t.Fatalf("search error: %v", err)
	}
	svc.Clear()

	view := svc.View()
	if view.Searched || view.SchoolID != "" || view.RecordCount != 0 {
		t.Fatalf("view after clear = %+v", view)
	}
}
