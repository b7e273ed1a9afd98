package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paydeck/transactions-console/internal/errs"
	"github.com/paydeck/transactions-console/internal/middleware"
	"github.com/paydeck/transactions-console/internal/models"
)

func sessionCtx(token string) context.Context {
	return context.WithValue(context.Background(), middleware.TokenKey, token)
}

func TestListTransactionsForwardsBearer(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]models.Transaction{
			{CustomOrderID: "ORD-001", Status: "SUCCESS"},
		})
	}))
	defer srv.Close()

	adapter, err := NewAdapter(srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("adapter error: %v", err)
	}

	records, err := adapter.ListTransactions(sessionCtx("tok-1"))
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotPath != "/api/transactions" {
		t.Fatalf("path = %q", gotPath)
	}
	if len(records) != 1 || records[0].CustomOrderID != "ORD-001" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestCheckStatusNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	adapter, _ := NewAdapter(srv.Client(), srv.URL)
	_, err := adapter.CheckStatus(sessionCtx("tok"), "ORD-404")
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("error type = %T, want *errs.NotFoundError", err)
	}
}

func TestUpdateStatusPostsOrderAndStatus(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/transactions/manual-update" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(models.Transaction{CustomOrderID: gotBody["custom_order_id"], Status: gotBody["status"]})
	}))
	defer srv.Close()

	adapter, _ := NewAdapter(srv.Client(), srv.URL)
	updated, err := adapter.UpdateStatus(sessionCtx("tok"), "ORD-002", "SUCCESS")
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if gotBody["custom_order_id"] != "ORD-002" || gotBody["status"] != "SUCCESS" {
		t.Fatalf("request body = %v", gotBody)
	}
	if updated.Status != "SUCCESS" {
		t.Fatalf("updated status = %q", updated.Status)
	}
}

func TestServerErrorBecomesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	adapter, _ := NewAdapter(srv.Client(), srv.URL)
	_, err := adapter.ListSchoolTransactions(sessionCtx("tok"), "sch-1")
	if err == nil {
		t.Fatal("expected an error")
	}
	te, ok := err.(*errs.TransportError)
	if !ok {
		t.Fatalf("error type = %T, want *errs.TransportError", err)
	}
	if te.Operation != "list school transactions" {
		t.Fatalf("operation = %q", te.Operation)
	}
}
