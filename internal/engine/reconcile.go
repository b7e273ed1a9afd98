package engine

import (
	"github.com/paydeck/transactions-console/internal/errs"
	"github.com/paydeck/transactions-console/internal/models"
)

// Apply replaces the snapshot record whose custom_order_id matches the
// updated record, preserving the position of every other record. The
// input slice is never mutated. An id with no match returns the input
// unchanged and a not-found error instead of inserting a duplicate.
func Apply(records []models.Transaction, updated models.Transaction) ([]models.Transaction, error) {
	idx := -1
	for i, t := range records {
		if t.CustomOrderID == updated.CustomOrderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return records, errs.NewNotFoundError("no transaction matches order id " + updated.CustomOrderID)
	}
	next := make([]models.Transaction, len(records))
	copy(next, records)
	next[idx] = updated
	return next, nil
}
