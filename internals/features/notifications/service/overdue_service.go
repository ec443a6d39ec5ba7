// file: internals/features/notifications/service/overdue_service.go
package service

import (
	"time"
)

/* ===================== Status Constants ===================== */

const (
	OverdueStatusCurrent = "current"
	OverdueStatusOverdue = "overdue"
)

// OverdueInfo hasil klasifikasi tunggakan satu siswa.
type OverdueInfo struct {
	Status          string     // current | overdue
	DaysSinceLast   int        // hari sejak pembayaran terakhir; -1 jika belum pernah bayar
	LastPaymentDate *time.Time // nil jika belum pernah bayar
	NeverPaid       bool
}

// DaysSince menghitung selisih hari kalender penuh antara dua tanggal.
// Jam diabaikan supaya pembayaran pukul 23:00 tidak dihitung lebih tua.
func DaysSince(from, now time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(n.Sub(f).Hours() / 24)
}

// Classify menentukan status tunggakan dari daftar tanggal pembayaran.
// Aturan:
//   - belum pernah bayar sama sekali = menunggak
//   - lebih dari thresholdDays sejak pembayaran terakhir = menunggak
//   - tepat thresholdDays = belum menunggak
func Classify(paymentDates []time.Time, now time.Time, thresholdDays int) OverdueInfo {
	if len(paymentDates) == 0 {
		return OverdueInfo{
			Status:        OverdueStatusOverdue,
			DaysSinceLast: -1,
			NeverPaid:     true,
		}
	}

	latest := paymentDates[0]
	for _, d := range paymentDates[1:] {
		if d.After(latest) {
			latest = d
		}
	}

	days := DaysSince(latest, now)
	status := OverdueStatusCurrent
	if days > thresholdDays {
		status = OverdueStatusOverdue
	}

	return OverdueInfo{
		Status:          status,
		DaysSinceLast:   days,
		LastPaymentDate: &latest,
	}
}
