package service

import (
	"strings"
	"testing"
	"time"
)

func TestSafeFilePart(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Andi Wijaya", "Andi_Wijaya"},
		{"  Bimbel  Cerdas  ", "Bimbel_Cerdas"},
		{"TanpaSpasi", "TanpaSpasi"},
		{"tab\tdan\nbaris", "tab_dan_baris"},
	}
	for _, tt := range tests {
		if got := SafeFilePart(tt.in); got != tt.want {
			t.Errorf("SafeFilePart(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildReceiptLayout(t *testing.T) {
	layout := BuildReceiptLayout(ReceiptData{
		CoachingName: "Bimbel Cerdas",
		StudentName:  "Andi Wijaya",
		CourseName:   "Matematika",
		SeatNumber:   12,
		Amount:       350000,
		FeeDate:      time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
		Description:  "SPP Juni",
		ReceiptID:    "abc-123",
		TotalFees:    1000000,
		PaidTotal:    350000,
	})

	if layout.Width != 800 || layout.Height != 700 {
		t.Errorf("ukuran kuitansi = %dx%d, want 800x700", layout.Width, layout.Height)
	}
	if layout.Filename != "Bimbel_Cerdas_FeeReceipt_Andi_Wijaya_2024-06-05.png" {
		t.Errorf("filename = %q", layout.Filename)
	}
	if layout.Photo != nil {
		t.Error("kuitansi tidak memakai foto")
	}
	if layout.QR == nil {
		t.Fatal("QR kosong")
	}
	if !strings.Contains(layout.QR.Payload, "receipt:abc-123") {
		t.Errorf("payload QR = %q", layout.QR.Payload)
	}

	var all strings.Builder
	for _, l := range layout.Lines {
		all.WriteString(l.Text)
		all.WriteString("\n")
	}
	for _, want := range []string{"KUITANSI PEMBAYARAN SPP", "Andi Wijaya", "Matematika", "Rp 350000.00", "SPP Juni", "Sisa Tagihan : Rp 650000.00"} {
		if !strings.Contains(all.String(), want) {
			t.Errorf("baris kuitansi tidak memuat %q", want)
		}
	}
}

func TestReceiptBalanceColor(t *testing.T) {
	findBalance := func(layout DocumentLayout) *TextLine {
		for i := range layout.Lines {
			if strings.HasPrefix(layout.Lines[i].Text, "Sisa Tagihan") {
				return &layout.Lines[i]
			}
		}
		return nil
	}

	due := findBalance(BuildReceiptLayout(ReceiptData{TotalFees: 1000, PaidTotal: 300}))
	if due == nil || due.Color != colorBalanceDue {
		t.Errorf("sisa tagihan positif harus merah, got %+v", due)
	}

	settled := findBalance(BuildReceiptLayout(ReceiptData{TotalFees: 1000, PaidTotal: 1000}))
	if settled == nil || settled.Color != colorBalancePaid {
		t.Errorf("tagihan lunas harus hijau, got %+v", settled)
	}
}

func TestBuildReceiptLayoutWithoutDescription(t *testing.T) {
	layout := BuildReceiptLayout(ReceiptData{
		CoachingName: "Bimbel",
		StudentName:  "Citra",
		FeeDate:      time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
	})
	for _, l := range layout.Lines {
		if strings.Contains(l.Text, "Keterangan") {
			t.Errorf("keterangan kosong tidak boleh muncul: %q", l.Text)
		}
	}
}

func TestBuildCardLayout(t *testing.T) {
	layout := BuildCardLayout(CardData{
		CoachingName: "Bimbel Cerdas",
		StudentName:  "Andi Wijaya",
		CourseName:   "Matematika",
		Mobile:       "8123456789",
		SeatNumber:   7,
		StudentID:    "uuid-1",
	})

	if layout.Width != 320 || layout.Height != 460 {
		t.Errorf("ukuran kartu = %dx%d, want 320x460", layout.Width, layout.Height)
	}
	if layout.Filename != "Andi_Wijaya_IDCard.png" {
		t.Errorf("filename = %q", layout.Filename)
	}
	if layout.Photo == nil {
		t.Fatal("kartu harus punya area foto")
	}
	if layout.QR == nil || layout.QR.Payload != "student:uuid-1" {
		t.Errorf("QR = %+v", layout.QR)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Andi Wijaya", "AW"},
		{"andi", "A"},
		{"Siti Nur Aisyah", "SA"},
		{"   ", "?"},
		{"", "?"},
	}
	for _, tt := range tests {
		if got := Initials(tt.in); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
