package engine

import (
	"reflect"
	"testing"

	"github.com/paydeck/transactions-console/internal/models"
)

func sampleRecords() []models.Transaction {
	return []models.Transaction{
		{
			CollectID:         "c1",
			SchoolID:          "sch-100",
			Gateway:           "PhonePe",
			TransactionAmount: 1500,
			OrderAmount:       1500,
			Status:            "SUCCESS",
			CreatedAt:         "2024-01-05T09:30:00Z",
			CustomOrderID:     "ORD-001",
			BankReference:     "HDFC123",
		},
		{
			CollectID:         "c2",
			SchoolID:          "sch-100",
			Gateway:           "Razorpay",
			TransactionAmount: 250.5,
			OrderAmount:       250.5,
			Status:            "PENDING",
			CreatedAt:         "2024-01-10T12:00:00Z",
			CustomOrderID:     "ORD-002",
		},
		{
			CollectID:         "c3",
			SchoolID:          "sch-200",
			Gateway:           "PhonePe",
			TransactionAmount: 900,
			OrderAmount:       1000,
			Status:            "FAILURE",
			CreatedAt:         "2024-02-01T08:15:00Z",
			CustomOrderID:     "ORD-003",
			BankReference:     "ICICI987",
		},
	}
}

func ids(records []models.Transaction) []string {
	out := make([]string, len(records))
	for i, t := range records {
		out[i] = t.CustomOrderID
	}
	return out
}

func TestEvaluateEmptyQueryMatchesEverything(t *testing.T) {
	records := sampleRecords()
	got := Evaluate(records, QueryState{})
	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	if !reflect.DeepEqual(ids(got), ids(records)) {
		t.Fatalf("order not preserved: %v", ids(got))
	}
}

func TestEvaluateSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	records := []models.Transaction{
		{CustomOrderID: "ORD-9", Status: "Success", Gateway: "gw", CreatedAt: "2024-03-01"},
	}
	got := Evaluate(records, QueryState{SearchTerm: "SUCCESS"})
	if len(got) != 1 {
		t.Fatalf("expected status field to satisfy the search, got %d matches", len(got))
	}
}

func TestEvaluateSearchCoversNumericFields(t *testing.T) {
	records := sampleRecords()
	got := Evaluate(records, QueryState{SearchTerm: "250.5"})
	if len(got) != 1 || got[0].CustomOrderID != "ORD-002" {
		t.Fatalf("expected amount substring to match ORD-002, got %v", ids(got))
	}
}

func TestEvaluateSearchCoversDates(t *testing.T) {
	got := Evaluate(sampleRecords(), QueryState{SearchTerm: "2024-02"})
	if len(got) != 1 || got[0].CustomOrderID != "ORD-003" {
		t.Fatalf("expected date substring to match ORD-003, got %v", ids(got))
	}
}

func TestEvaluateStatusFilterIsExactRawMatch(t *testing.T) {
	records := []models.Transaction{
		{CustomOrderID: "a", Status: "SUCCESS"},
		{CustomOrderID: "b", Status: "Success"}, // raw mismatch, not canonicalized
	}
	got := Evaluate(records, QueryState{StatusFilter: "SUCCESS"})
	if len(got) != 1 || got[0].CustomOrderID != "a" {
		t.Fatalf("status filter must compare the raw token exactly, got %v", ids(got))
	}
}

func TestEvaluateDateRangeRequiresBothBounds(t *testing.T) {
	records := sampleRecords()
	got := Evaluate(records, QueryState{DateRange: DateRange{Start: "2024-01-01"}})
	if len(got) != len(records) {
		t.Fatalf("an incomplete date pair must not filter, got %d of %d", len(got), len(records))
	}
	got = Evaluate(records, QueryState{DateRange: DateRange{End: "2024-01-31"}})
	if len(got) != len(records) {
		t.Fatalf("an incomplete date pair must not filter, got %d of %d", len(got), len(records))
	}
}

func TestEvaluateDateRangeInclusive(t *testing.T) {
	records := []models.Transaction{
		{CustomOrderID: "a", CreatedAt: "2024-01-01"},
		{CustomOrderID: "b", CreatedAt: "2024-01-15"},
		{CustomOrderID: "c", CreatedAt: "2024-01-31"},
		{CustomOrderID: "d", CreatedAt: "2024-02-01"},
	}
	got := Evaluate(records, QueryState{DateRange: DateRange{Start: "2024-01-01", End: "2024-01-31"}})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestEvaluatePredicatesCombineWithAnd(t *testing.T) {
	records := sampleRecords()
	got := Evaluate(records, QueryState{
		SearchTerm:   "phonepe",
		StatusFilter: "FAILURE",
		DateRange:    DateRange{Start: "2024-01-01", End: "2024-12-31"},
	})
	if len(got) != 1 || got[0].CustomOrderID != "ORD-003" {
		t.Fatalf("expected only ORD-003, got %v", ids(got))
	}
}

func TestEvaluateIsPureAndIdempotent(t *testing.T) {
	records := sampleRecords()
	q := QueryState{SearchTerm: "sch-100"}
	first := Evaluate(records, q)
	second := Evaluate(records, q)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two evaluations with identical inputs differ")
	}
	if !reflect.DeepEqual(records, sampleRecords()) {
		t.Fatal("input slice was mutated")
	}
}

func TestEvaluateSubsetOfRaw(t *testing.T) {
	records := sampleRecords()
	got := Evaluate(records, QueryState{SearchTerm: "ord"})
	if len(got) > len(records) {
		t.Fatalf("filtered count %d exceeds raw count %d", len(got), len(records))
	}
	for _, f := range got {
		found := false
		for _, r := range records {
			if reflect.DeepEqual(f, r) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("filtered record %s not in raw collection", f.CustomOrderID)
		}
	}
}
