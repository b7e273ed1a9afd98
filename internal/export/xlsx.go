package export

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/paydeck/transactions-console/internal/models"
	"github.com/paydeck/transactions-console/internal/status"
)

var columns = []string{
	"Collect ID",
	"School ID",
	"Gateway",
	"Order Amount",
	"Transaction Amount",
	"Status",
	"Custom Order ID",
	"Created At",
	"Bank Reference",
}

// WriteXLSX renders the given transactions as a spreadsheet and returns
// the file bytes plus a unique download filename. The status column
// carries the canonical label so exported rows read the same as the
// table they came from.
func WriteXLSX(records []models.Transaction) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &columns); err != nil {
		return nil, "", fmt.Errorf("write header: %w", err)
	}

	for i, t := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", fmt.Errorf("row %d: %w", i, err)
		}
		row := []any{
			t.CollectID,
			t.SchoolID,
			t.Gateway,
			t.OrderAmount,
			t.TransactionAmount,
			string(status.Normalize(t.Status).Canonical),
			t.CustomOrderID,
			t.CreatedAt,
			t.BankReference,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("row %d: %w", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("serialize workbook: %w", err)
	}
	name := fmt.Sprintf("transactions-%s.xlsx", uuid.NewString())
	return buf.Bytes(), name, nil
}
