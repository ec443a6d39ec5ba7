// file: internals/features/documents/service/layout_service.go
package service

import (
	"fmt"
	"image/color"
	"regexp"
	"strings"
	"time"
)

/* ===================== Types ===================== */

// TextLine satu baris teks pada kanvas dokumen.
type TextLine struct {
	X     int
	Y     int
	Text  string
	Scale int         // faktor pembesaran glyph; minimal 1
	Color color.Color // nil = warna tinta standar
}

// PhotoBox area foto siswa pada kanvas.
type PhotoBox struct {
	X, Y, W, H int
}

// QRBox area QR code pada kanvas.
type QRBox struct {
	X, Y, Size int
	Payload    string
}

// DocumentLayout hasil penyusunan dokumen, siap dirender ke PNG.
type DocumentLayout struct {
	Width    int
	Height   int
	Filename string
	Lines    []TextLine
	Photo    *PhotoBox
	QR       *QRBox
}

var (
	colorBalanceDue  = color.RGBA{R: 198, G: 40, B: 40, A: 255}
	colorBalancePaid = color.RGBA{R: 46, G: 125, B: 50, A: 255}
)

/* ===================== Filename ===================== */

var whitespaceRe = regexp.MustCompile(`\s+`)

// SafeFilePart mengganti whitespace dengan underscore untuk nama file unduhan.
func SafeFilePart(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), "_")
}

/* ===================== Receipt (800x700) ===================== */

type ReceiptData struct {
	CoachingName string
	StudentName  string
	CourseName   string
	SeatNumber   int
	Amount       float64
	FeeDate      time.Time
	Description  string
	ReceiptID    string
	TotalFees    float64
	PaidTotal    float64
}

// BuildReceiptLayout menyusun kuitansi pembayaran SPP 800x700.
// Sisa tagihan = total biaya - seluruh pembayaran paid; merah kalau masih
// ada sisa, hijau kalau lunas.
func BuildReceiptLayout(d ReceiptData) DocumentLayout {
	feeDate := d.FeeDate.Format("2006-01-02")

	layout := DocumentLayout{
		Width:  800,
		Height: 700,
		Filename: fmt.Sprintf("%s_FeeReceipt_%s_%s.png",
			SafeFilePart(d.CoachingName), SafeFilePart(d.StudentName), feeDate),
	}

	layout.Lines = []TextLine{
		{X: 60, Y: 70, Text: d.CoachingName, Scale: 3},
		{X: 60, Y: 110, Text: "KUITANSI PEMBAYARAN SPP", Scale: 2},
		{X: 60, Y: 180, Text: fmt.Sprintf("No. Kuitansi : %s", d.ReceiptID), Scale: 1},
		{X: 60, Y: 230, Text: fmt.Sprintf("Nama Siswa   : %s", d.StudentName), Scale: 2},
		{X: 60, Y: 270, Text: fmt.Sprintf("Kursus       : %s", d.CourseName), Scale: 2},
		{X: 60, Y: 310, Text: fmt.Sprintf("Nomor Kursi  : %d", d.SeatNumber), Scale: 2},
		{X: 60, Y: 350, Text: fmt.Sprintf("Tanggal      : %s", feeDate), Scale: 2},
		{X: 60, Y: 410, Text: fmt.Sprintf("Jumlah       : Rp %.2f", d.Amount), Scale: 3},
	}

	balance := d.TotalFees - d.PaidTotal
	balanceColor := color.Color(colorBalanceDue)
	if balance <= 0 {
		balanceColor = colorBalancePaid
	}
	layout.Lines = append(layout.Lines, TextLine{
		X: 60, Y: 460,
		Text:  fmt.Sprintf("Sisa Tagihan : Rp %.2f", balance),
		Scale: 2,
		Color: balanceColor,
	})

	if desc := strings.TrimSpace(d.Description); desc != "" {
		layout.Lines = append(layout.Lines, TextLine{X: 60, Y: 510, Text: fmt.Sprintf("Keterangan   : %s", desc), Scale: 1})
	}
	layout.Lines = append(layout.Lines, TextLine{X: 60, Y: 650, Text: "Terima kasih atas pembayaran Anda.", Scale: 1})

	layout.QR = &QRBox{
		X:       620,
		Y:       520,
		Size:    140,
		Payload: fmt.Sprintf("receipt:%s|student:%s|date:%s|amount:%.2f", d.ReceiptID, d.StudentName, feeDate, d.Amount),
	}

	return layout
}

/* ===================== ID Card (320x460) ===================== */

type CardData struct {
	CoachingName string
	StudentName  string
	CourseName   string
	Mobile       string
	SeatNumber   int
	StudentID    string
	PhotoURL     string
}

// BuildCardLayout menyusun kartu identitas siswa 320x460.
func BuildCardLayout(d CardData) DocumentLayout {
	layout := DocumentLayout{
		Width:    320,
		Height:   460,
		Filename: fmt.Sprintf("%s_IDCard.png", SafeFilePart(d.StudentName)),
	}

	layout.Photo = &PhotoBox{X: 100, Y: 70, W: 120, H: 150}

	layout.Lines = []TextLine{
		{X: 20, Y: 40, Text: d.CoachingName, Scale: 2},
		{X: 20, Y: 260, Text: d.StudentName, Scale: 2},
		{X: 20, Y: 295, Text: fmt.Sprintf("Kursus: %s", d.CourseName), Scale: 1},
		{X: 20, Y: 320, Text: fmt.Sprintf("HP    : %s", d.Mobile), Scale: 1},
		{X: 20, Y: 345, Text: fmt.Sprintf("Kursi : %d", d.SeatNumber), Scale: 1},
	}

	layout.QR = &QRBox{
		X:       210,
		Y:       360,
		Size:    90,
		Payload: fmt.Sprintf("student:%s", d.StudentID),
	}

	return layout
}

// Initials dua huruf awal nama untuk placeholder foto.
func Initials(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	if len(fields) == 0 {
		return "?"
	}
	first := strings.ToUpper(fields[0][:1])
	if len(fields) == 1 {
		return first
	}
	return first + strings.ToUpper(fields[len(fields)-1][:1])
}
