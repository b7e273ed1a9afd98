package engine

import (
	"strconv"
	"strings"

	"github.com/paydeck/transactions-console/internal/models"
)

// DateRange bounds filtering on created_at. The predicate applies only
// when both bounds are set; a single bound without its pair is ignored.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (d DateRange) complete() bool { return d.Start != "" && d.End != "" }

// QueryState is the tuple of user-controlled filter and pagination
// inputs for a screen.
type QueryState struct {
	SearchTerm   string    `json:"search_term"`
	StatusFilter string    `json:"status_filter"` // raw categorical value or empty for all
	DateRange    DateRange `json:"date_range"`
	CurrentPage  int       `json:"current_page"`
}

// Evaluate derives the filtered view: every record matching the search,
// status and date predicates, in snapshot order. Pure function; callers
// recompute on every relevant change rather than patching a previous
// result.
func Evaluate(records []models.Transaction, q QueryState) []models.Transaction {
	term := strings.ToLower(q.SearchTerm)
	filtered := make([]models.Transaction, 0, len(records))
	for _, t := range records {
		if !matchesSearch(t, term) {
			continue
		}
		if q.StatusFilter != "" && t.Status != q.StatusFilter {
			continue
		}
		if q.DateRange.complete() &&
			(t.CreatedAt < q.DateRange.Start || t.CreatedAt > q.DateRange.End) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func matchesSearch(t models.Transaction, term string) bool {
	if term == "" {
		return true
	}
	for _, v := range searchable(t) {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// searchable returns the string form of every record field, numbers and
// dates included, matching what the table can display.
func searchable(t models.Transaction) []string {
	return []string{
		t.CollectID,
		t.SchoolID,
		t.Gateway,
		formatAmount(t.TransactionAmount),
		formatAmount(t.OrderAmount),
		t.Status,
		t.CreatedAt,
		t.CustomOrderID,
		t.BankReference,
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
