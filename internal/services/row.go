package services

import (
	"github.com/paydeck/transactions-console/internal/clipboard"
	"github.com/paydeck/transactions-console/internal/dto"
	"github.com/paydeck/transactions-console/internal/models"
	"github.com/paydeck/transactions-console/internal/status"
)

// newRow builds the rendered form of a transaction. The icon and badge
// come from the canonical status, never the raw token, so every failure
// variant renders the same way on every screen.
func newRow(t models.Transaction, copies *clipboard.Tracker) dto.TransactionRow {
	p := status.Normalize(t.Status)
	return dto.TransactionRow{
		CollectID:         t.CollectID,
		SchoolID:          t.SchoolID,
		Gateway:           t.Gateway,
		TransactionAmount: t.TransactionAmount,
		OrderAmount:       t.OrderAmount,
		Status:            t.Status,
		StatusCanonical:   string(p.Canonical),
		StatusBadge:       p.BadgeClass,
		StatusIcon:        p.Icon,
		CreatedAt:         t.CreatedAt,
		CustomOrderID:     t.CustomOrderID,
		BankReference:     t.BankReference,
		Copied:            copies != nil && copies.Copied(t.CustomOrderID),
	}
}

func newRows(records []models.Transaction, copies *clipboard.Tracker) []dto.TransactionRow {
	rows := make([]dto.TransactionRow, len(records))
	for i, t := range records {
		rows[i] = newRow(t, copies)
	}
	return rows
}
