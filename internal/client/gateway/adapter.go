// Package gateway is the HTTP adapter for the upstream school-payments
// gateway, the source of truth for every transaction snapshot.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/paydeck/transactions-console/internal/errs"
	"github.com/paydeck/transactions-console/internal/middleware"
	"github.com/paydeck/transactions-console/internal/models"
)

type Adapter struct {
	httpClient *http.Client
	baseURL    *url.URL
}

func NewAdapter(httpClient *http.Client, baseURL string) (*Adapter, error) {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway base url %q: %w", baseURL, err)
	}
	return &Adapter{httpClient: httpClient, baseURL: u}, nil
}

// ListTransactions fetches the full snapshot in gateway order.
func (a *Adapter) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := a.do(ctx, http.MethodGet, "/api/transactions", nil, &out, "list transactions"); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSchoolTransactions fetches the snapshot already scoped to one
// school by the gateway.
func (a *Adapter) ListSchoolTransactions(ctx context.Context, schoolID string) ([]models.Transaction, error) {
	var out []models.Transaction
	path := "/api/transactions/school/" + url.PathEscape(schoolID)
	if err := a.do(ctx, http.MethodGet, path, nil, &out, "list school transactions"); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckStatus looks up a single transaction by order id.
func (a *Adapter) CheckStatus(ctx context.Context, orderID string) (*models.Transaction, error) {
	var out models.Transaction
	path := "/api/transactions/check-status/" + url.PathEscape(orderID)
	if err := a.do(ctx, http.MethodGet, path, nil, &out, "check status"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus submits a manual status correction and returns the
// server-confirmed record.
func (a *Adapter) UpdateStatus(ctx context.Context, orderID, newStatus string) (*models.Transaction, error) {
	body := map[string]string{
		"custom_order_id": orderID,
		"status":          newStatus,
	}
	var out models.Transaction
	if err := a.do(ctx, http.MethodPost, "/api/transactions/manual-update", body, &out, "update status"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *Adapter) do(ctx context.Context, method, path string, body, out any, op string) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errs.NewTransportError(op, "encode request: "+err.Error())
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL.JoinPath(path).String(), payload)
	if err != nil {
		return errs.NewTransportError(op, err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := middleware.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return errs.NewTransportError(op, err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewNotFoundError("gateway has no matching record")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return errs.NewTransportError(op, fmt.Sprintf("unexpected status code %d", resp.StatusCode))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.NewTransportError(op, "decode response: "+err.Error())
		}
	}
	return nil
}
