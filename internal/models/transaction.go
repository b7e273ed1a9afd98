package models

// Transaction mirrors the upstream school-payments gateway record.
// CustomOrderID is the stable identity used for row keying, copy actions
// and manual-update matching; it is unique within a snapshot.
type Transaction struct {
	CollectID         string  `json:"collect_id"`
	SchoolID          string  `json:"school_id"`
	Gateway           string  `json:"gateway"`
	TransactionAmount float64 `json:"transaction_amount"`
	OrderAmount       float64 `json:"order_amount"`
	Status            string  `json:"status"` // raw gateway token, case varies
	CreatedAt         string  `json:"created_at"` // ISO-8601
	CustomOrderID     string  `json:"custom_order_id"`
	BankReference     string  `json:"bank_reference,omitempty"`
}
