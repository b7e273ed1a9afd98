package dto

import (
	"github.com/paydeck/transactions-console/internal/engine"
	"github.com/paydeck/transactions-console/internal/status"
)

// TransactionRow is one rendered table row: the raw record plus the
// presentation metadata derived from its status, plus the transient
// copy affordance.
type TransactionRow struct {
	CollectID         string      `json:"collect_id"`
	SchoolID          string      `json:"school_id"`
	Gateway           string      `json:"gateway"`
	TransactionAmount float64     `json:"transaction_amount"`
	OrderAmount       float64     `json:"order_amount"`
	Status            string      `json:"status"`
	StatusCanonical   string      `json:"status_canonical"`
	StatusBadge       string      `json:"status_badge"`
	StatusIcon        status.Icon `json:"status_icon"`
	CreatedAt         string      `json:"created_at"`
	CustomOrderID     string      `json:"custom_order_id"`
	BankReference     string      `json:"bank_reference,omitempty"`
	Copied            bool        `json:"copied,omitempty"`
}

// DashboardView is the filtered, paginated dashboard table.
type DashboardView struct {
	Query         engine.QueryState   `json:"query"`
	FilteredCount int                 `json:"filtered_count"`
	PageCount     int                 `json:"page_count"`
	Rows          []TransactionRow    `json:"rows"`
	Buttons       []engine.PageButton `json:"buttons,omitempty"`
	Selected      string              `json:"selected,omitempty"`
	Updating      bool                `json:"updating"`
}

// MetricsView carries the animated aggregate metrics: the values
// currently displayed by each counter and the targets they converge to.
type MetricsView struct {
	TotalTransactions float64        `json:"total_transactions"`
	SuccessRate       float64        `json:"success_rate"`
	TotalAmount       float64        `json:"total_amount"`
	Targets           engine.Summary `json:"targets"`
}

// SchoolView is the school-scoped transaction list. Searched
// distinguishes the never-searched state from an empty result.
type SchoolView struct {
	SchoolID    string              `json:"school_id"`
	Searched    bool                `json:"searched"`
	RecordCount int                 `json:"record_count"`
	PageCount   int                 `json:"page_count"`
	CurrentPage int                 `json:"current_page"`
	Rows        []TransactionRow    `json:"rows"`
	Buttons     []engine.PageButton `json:"buttons,omitempty"`
}

// LookupView is the single-order status check result.
type LookupView struct {
	OrderID  string          `json:"order_id"`
	Searched bool            `json:"searched"`
	Found    bool            `json:"found"`
	Row      *TransactionRow `json:"row,omitempty"`
}

type ManualUpdateRequest struct {
	CustomOrderID string `json:"custom_order_id"`
	Status        string `json:"status"`
}

type CopyRequest struct {
	CustomOrderID string `json:"custom_order_id"`
}
