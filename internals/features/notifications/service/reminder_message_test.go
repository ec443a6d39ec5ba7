package service

import (
	"strings"
	"testing"
	"time"
)

func TestReminderMessage(t *testing.T) {
	last := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	target := ReminderTarget{
		CoachingName: "Bimbel Cerdas",
		StudentName:  "Andi",
		SeatNumber:   12,
		Mobile:       "8123456789",
		LastAmount:   350000,
	}

	t.Run("sudah pernah bayar", func(t *testing.T) {
		msg := ReminderMessage(target, OverdueInfo{
			Status:          OverdueStatusOverdue,
			DaysSinceLast:   35,
			LastPaymentDate: &last,
		})
		for _, want := range []string{"Bimbel Cerdas", "Andi", "kursi 12", "8123456789", "Rp 350000.00", "35 hari", "2024-06-01"} {
			if !strings.Contains(msg, want) {
				t.Errorf("pesan tidak memuat %q: %s", want, msg)
			}
		}
	})

	t.Run("belum pernah bayar", func(t *testing.T) {
		msg := ReminderMessage(target, OverdueInfo{
			Status:        OverdueStatusOverdue,
			DaysSinceLast: -1,
			NeverPaid:     true,
		})
		for _, want := range []string{"Bimbel Cerdas", "Andi", "kursi 12", "8123456789", "Belum ada pembayaran"} {
			if !strings.Contains(msg, want) {
				t.Errorf("pesan belum-bayar tidak memuat %q: %s", want, msg)
			}
		}
		if strings.Contains(msg, "hari yang lalu") {
			t.Errorf("pesan belum-bayar tidak boleh menyebut hari terakhir: %s", msg)
		}
	})
}

func TestWaLink(t *testing.T) {
	got := WaLink("8123456789", "Halo, tagihan SPP & denda")

	if !strings.HasPrefix(got, "https://wa.me/628123456789?text=") {
		t.Fatalf("prefix link salah: %s", got)
	}
	// Pesan harus di-encode agar spasi dan & tidak memutus query string.
	if strings.Contains(got, " ") {
		t.Errorf("link masih mengandung spasi mentah: %s", got)
	}
	if !strings.Contains(got, "Halo%2C") {
		t.Errorf("koma tidak ter-encode: %s", got)
	}
	if strings.Count(got, "&") != 0 {
		t.Errorf("ampersand tidak ter-encode: %s", got)
	}
}
