package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/paydeck/transactions-console/internal/models"
)

func TestWriteXLSX(t *testing.T) {
	records := []models.Transaction{
		{
			CollectID:         "c1",
			SchoolID:          "sch-100",
			Gateway:           "PhonePe",
			OrderAmount:       2000,
			TransactionAmount: 2200,
			Status:            "failed",
			CustomOrderID:     "ORD-001",
			CreatedAt:         "2024-01-15T10:00:00Z",
		},
		{
			CollectID:         "c2",
			SchoolID:          "sch-100",
			Gateway:           "Razorpay",
			OrderAmount:       500,
			TransactionAmount: 500,
			Status:            "SUCCESS",
			CustomOrderID:     "ORD-002",
			CreatedAt:         "2024-01-16T10:00:00Z",
			BankReference:     "BNK123",
		},
	}

	data, name, err := WriteXLSX(records)
	if err != nil {
		t.Fatalf("write error: %v", err)
	}
	if !strings.HasPrefix(name, "transactions-") || !strings.HasSuffix(name, ".xlsx") {
		t.Fatalf("filename = %q", name)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus 2", len(rows))
	}
	if rows[0][0] != "Collect ID" {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][5] != "FAILURE" {
		t.Fatalf("status column = %q, want canonical FAILURE", rows[1][5])
	}
	if rows[2][6] != "ORD-002" {
		t.Fatalf("order id column = %q", rows[2][6])
	}
}

func TestWriteXLSXUniqueFilenames(t *testing.T) {
	_, first, err := WriteXLSX(nil)
	if err != nil {
		t.Fatalf("write error: %v", err)
	}
	_, second, err := WriteXLSX(nil)
	if err != nil {
		t.Fatalf("write error: %v", err)
	}
	if first == second {
		t.Fatalf("filenames collide: %q", first)
	}
}
