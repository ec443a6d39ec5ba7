// file: internals/features/notifications/service/reminder_message.go
package service

import (
	"fmt"
	"net/url"
	"strings"
)

// ReminderTarget data siswa yang diperlukan untuk menyusun pesan pengingat.
type ReminderTarget struct {
	CoachingName string
	StudentName  string
	SeatNumber   int
	Mobile       string
	LastAmount   float64 // jumlah pembayaran terakhir; diabaikan saat NeverPaid
}

// ReminderMessage menyusun pesan pengingat SPP untuk dikirim ke wali siswa.
// Pesan selalu memuat nama lembaga, nama siswa, kursi, dan nomor HP; baris
// pembayaran terakhir diganti keterangan belum-bayar bila belum ada pembayaran.
func ReminderMessage(t ReminderTarget, info OverdueInfo) string {
	header := fmt.Sprintf("Halo, kami dari %s. Pengingat pembayaran SPP untuk ananda %s (kursi %d, HP %s).",
		t.CoachingName, t.StudentName, t.SeatNumber, t.Mobile)

	if info.NeverPaid {
		return header + " Belum ada pembayaran yang tercatat. Terima kasih."
	}
	return header + fmt.Sprintf(" Pembayaran terakhir Rp %.2f tercatat %d hari yang lalu (%s). Terima kasih.",
		t.LastAmount, info.DaysSinceLast, info.LastPaymentDate.Format("2006-01-02"))
}

// WaLink membangun link wa.me untuk nomor HP lokal 10 digit.
// Nomor dinormalisasi ke format internasional tanpa tanda plus.
func WaLink(mobile, message string) string {
	digits := strings.TrimSpace(mobile)
	return fmt.Sprintf("https://wa.me/62%s?text=%s", digits, url.QueryEscape(message))
}
