package service

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthKey(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{date(2024, time.January, 1), "2024-01"},
		{date(2024, time.December, 31), "2024-12"},
		{time.Date(2023, time.June, 15, 23, 59, 0, 0, time.UTC), "2023-06"},
	}
	for _, tt := range tests {
		if got := MonthKey(tt.in); got != tt.want {
			t.Errorf("MonthKey(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAggregate(t *testing.T) {
	fees := []Entry{
		{Date: date(2024, time.March, 5), Amount: 500},
		{Date: date(2024, time.January, 10), Amount: 300},
		{Date: date(2024, time.January, 20), Amount: 200},
	}
	expenses := []Entry{
		{Date: date(2024, time.January, 15), Amount: 100},
		{Date: date(2024, time.February, 1), Amount: 50},
	}

	got := Aggregate(fees, expenses)

	want := []MonthlySummary{
		{Month: "2024-01", FeeTotal: 500, ExpenseTotal: 100, Profit: 400, ProfitPercent: 80},
		{Month: "2024-02", FeeTotal: 0, ExpenseTotal: 50, Profit: -50, ProfitPercent: 0},
		{Month: "2024-03", FeeTotal: 500, ExpenseTotal: 0, Profit: 500, ProfitPercent: 100},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Aggregate = %+v, want %+v", got, want)
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil, nil)
	if len(got) != 0 {
		t.Errorf("Aggregate(nil, nil) = %+v, want kosong", got)
	}
}

func TestProfitPercentZeroFee(t *testing.T) {
	// Bulan tanpa pemasukan tidak boleh menghasilkan NaN/Inf.
	months := Aggregate(nil, []Entry{{Date: date(2024, time.May, 1), Amount: 75}})
	if len(months) != 1 {
		t.Fatalf("jumlah bulan = %d, want 1", len(months))
	}
	m := months[0]
	if m.ProfitPercent != 0 {
		t.Errorf("ProfitPercent = %v, want 0", m.ProfitPercent)
	}
	if math.IsNaN(m.ProfitPercent) || math.IsInf(m.ProfitPercent, 0) {
		t.Errorf("ProfitPercent tidak finite: %v", m.ProfitPercent)
	}
}

func TestGrandTotals(t *testing.T) {
	months := []MonthlySummary{
		{Month: "2024-01", FeeTotal: 1000, ExpenseTotal: 400, Profit: 600},
		{Month: "2024-02", FeeTotal: 500, ExpenseTotal: 700, Profit: -200},
	}
	got := GrandTotals(months)
	want := Totals{FeeTotal: 1500, ExpenseTotal: 1100, Profit: 400}
	want.ProfitPercent = 400.0 / 1500.0 * 100

	if got != want {
		t.Errorf("GrandTotals = %+v, want %+v", got, want)
	}
}

func TestGrandTotalsEmpty(t *testing.T) {
	got := GrandTotals(nil)
	if got != (Totals{}) {
		t.Errorf("GrandTotals(nil) = %+v, want nol semua", got)
	}
}

func TestLatestMonth(t *testing.T) {
	if got := LatestMonth(nil); got != "" {
		t.Errorf("LatestMonth(nil) = %q, want \"\"", got)
	}
	months := []MonthlySummary{{Month: "2024-01"}, {Month: "2024-03"}}
	if got := LatestMonth(months); got != "2024-03" {
		t.Errorf("LatestMonth = %q, want \"2024-03\"", got)
	}
}
