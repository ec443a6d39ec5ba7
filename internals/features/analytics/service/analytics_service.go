// file: internals/features/analytics/service/analytics_service.go
package service

import (
	"sort"
	"time"
)

/* ===================== Types ===================== */

// Entry satu transaksi bertanggal (pembayaran SPP atau pengeluaran).
type Entry struct {
	Date   time.Time
	Amount float64
}

// MonthlySummary rekap satu bulan kalender.
type MonthlySummary struct {
	Month         string  `json:"month"` // "YYYY-MM"
	FeeTotal      float64 `json:"fee_total"`
	ExpenseTotal  float64 `json:"expense_total"`
	Profit        float64 `json:"profit"`
	ProfitPercent float64 `json:"profit_percent"`
}

// Totals rekap keseluruhan.
type Totals struct {
	FeeTotal      float64 `json:"fee_total"`
	ExpenseTotal  float64 `json:"expense_total"`
	Profit        float64 `json:"profit"`
	ProfitPercent float64 `json:"profit_percent"`
}

/* ===================== Helpers ===================== */

// MonthKey kunci bulan "YYYY-MM" dari sebuah tanggal.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

func profitPercent(fee, profit float64) float64 {
	// Pemasukan nol berarti margin tidak terdefinisi; laporkan 0, bukan NaN/Inf.
	if fee == 0 {
		return 0
	}
	return profit / fee * 100
}

/* ===================== Aggregate ===================== */

// Aggregate merekap pemasukan & pengeluaran per bulan kalender.
// Hasil terurut naik berdasarkan kunci bulan; bulan muncul bila punya
// minimal satu transaksi di salah satu sisi.
func Aggregate(fees, expenses []Entry) []MonthlySummary {
	type bucket struct {
		fee, expense float64
	}
	buckets := make(map[string]*bucket)

	get := func(key string) *bucket {
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		return b
	}

	for _, f := range fees {
		get(MonthKey(f.Date)).fee += f.Amount
	}
	for _, e := range expenses {
		get(MonthKey(e.Date)).expense += e.Amount
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthlySummary, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		profit := b.fee - b.expense
		out = append(out, MonthlySummary{
			Month:         k,
			FeeTotal:      b.fee,
			ExpenseTotal:  b.expense,
			Profit:        profit,
			ProfitPercent: profitPercent(b.fee, profit),
		})
	}
	return out
}

// GrandTotals menjumlahkan seluruh bulan.
func GrandTotals(months []MonthlySummary) Totals {
	var t Totals
	for _, m := range months {
		t.FeeTotal += m.FeeTotal
		t.ExpenseTotal += m.ExpenseTotal
	}
	t.Profit = t.FeeTotal - t.ExpenseTotal
	t.ProfitPercent = profitPercent(t.FeeTotal, t.Profit)
	return t
}

// LatestMonth kunci bulan terakhir yang punya transaksi; "" bila kosong.
func LatestMonth(months []MonthlySummary) string {
	if len(months) == 0 {
		return ""
	}
	return months[len(months)-1].Month
}
