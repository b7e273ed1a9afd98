package engine

import (
	"math"

	"github.com/paydeck/transactions-console/internal/models"
	"github.com/paydeck/transactions-console/internal/status"
)

// Summary holds the dashboard's aggregate metrics, derived from the raw
// snapshot independently of any active filters.
type Summary struct {
	TotalTransactions int     `json:"total_transactions"`
	SuccessRate       int     `json:"success_rate"` // rounded percent
	TotalAmount       float64 `json:"total_amount"`
}

// Summarize computes aggregates over the raw collection. An empty
// collection yields a zero success rate rather than a division by zero.
func Summarize(records []models.Transaction) Summary {
	s := Summary{TotalTransactions: len(records)}
	if len(records) == 0 {
		return s
	}
	successes := 0
	for _, t := range records {
		if status.Normalize(t.Status).Canonical == status.Success {
			successes++
		}
		s.TotalAmount += t.TransactionAmount
	}
	s.SuccessRate = int(math.Round(float64(successes) / float64(len(records)) * 100))
	return s
}
