// file: internals/features/documents/service/render_service.go
package service

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"bimbelku_backend/internals/configs"
)

var (
	colorInk    = color.RGBA{R: 33, G: 37, B: 41, A: 255}
	colorAccent = color.RGBA{R: 63, G: 81, B: 181, A: 255}
	colorPaper  = color.White
)

var photoClient = &http.Client{Timeout: 3 * time.Second}

// Render merender layout dokumen menjadi PNG.
// photoURL boleh kosong; foto yang gagal dimuat diganti placeholder inisial.
func Render(layout DocumentLayout, photoURL, fallbackInitials string) ([]byte, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, layout.Width, layout.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(colorPaper), image.Point{}, draw.Src)

	// Garis aksen atas
	draw.Draw(canvas, image.Rect(0, 0, layout.Width, 8), image.NewUniform(colorAccent), image.Point{}, draw.Src)

	if layout.Photo != nil {
		drawPhoto(canvas, *layout.Photo, photoURL, fallbackInitials)
	}

	for _, line := range layout.Lines {
		drawText(canvas, line)
	}

	if layout.QR != nil {
		if err := drawQR(canvas, *layout.QR); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("gagal encode png: %w", err)
	}
	return buf.Bytes(), nil
}

/* ===================== Text ===================== */

// drawText menggambar satu baris memakai basicfont, di-scale dengan
// nearest-neighbor supaya tetap tajam.
func drawText(dst *image.RGBA, line TextLine) {
	scale := line.Scale
	if scale < 1 {
		scale = 1
	}

	face := basicfont.Face7x13
	w := font.MeasureString(face, line.Text).Ceil()
	if w <= 0 {
		return
	}
	h := face.Metrics().Height.Ceil()

	ink := color.Color(colorInk)
	if line.Color != nil {
		ink = line.Color
	}

	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	drawer := &font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(line.Text)

	if scale == 1 {
		draw.Draw(dst, image.Rect(line.X, line.Y-h, line.X+w, line.Y), tmp, image.Point{}, draw.Over)
		return
	}

	scaled := imaging.Resize(tmp, w*scale, h*scale, imaging.NearestNeighbor)
	draw.Draw(dst,
		image.Rect(line.X, line.Y-h*scale, line.X+w*scale, line.Y),
		scaled, image.Point{}, draw.Over)
}

/* ===================== QR ===================== */

func drawQR(dst *image.RGBA, box QRBox) error {
	pngBytes, err := qrcode.Encode(box.Payload, qrcode.Medium, box.Size)
	if err != nil {
		return fmt.Errorf("gagal membuat qr: %w", err)
	}
	qrImg, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return fmt.Errorf("gagal decode qr: %w", err)
	}
	draw.Draw(dst,
		image.Rect(box.X, box.Y, box.X+box.Size, box.Y+box.Size),
		qrImg, image.Point{}, draw.Over)
	return nil
}

/* ===================== Photo ===================== */

// drawPhoto mengisi kotak foto dari path /uploads atau URL http.
// Kalau foto tidak tersedia, gambar placeholder inisial.
func drawPhoto(dst *image.RGBA, box PhotoBox, photoURL, initials string) {
	rect := image.Rect(box.X, box.Y, box.X+box.W, box.Y+box.H)

	img := loadPhoto(photoURL)
	if img == nil {
		drawPlaceholder(dst, rect, initials)
		return
	}

	fitted := imaging.Fill(img, box.W, box.H, imaging.Center, imaging.Lanczos)
	draw.Draw(dst, rect, fitted, image.Point{}, draw.Src)
}

func loadPhoto(source string) image.Image {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil
	}

	var data []byte
	switch {
	case strings.HasPrefix(source, "/uploads/"):
		rel := strings.TrimPrefix(source, "/uploads/")
		b, err := os.ReadFile(filepath.Join(configs.UploadDir(), filepath.Clean("/"+rel)))
		if err != nil {
			return nil
		}
		data = b
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		resp, err := photoClient.Get(source)
		if err != nil {
			return nil
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil
		}
		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(resp.Body); err != nil {
			return nil
		}
		data = buf.Bytes()
	default:
		return nil
	}

	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img
	}
	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return img
	}
	return nil
}

func drawPlaceholder(dst *image.RGBA, rect image.Rectangle, initials string) {
	draw.Draw(dst, rect, image.NewUniform(colorAccent), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	w := font.MeasureString(face, initials).Ceil()
	if w <= 0 {
		return
	}
	h := face.Metrics().Height.Ceil()
	scale := 3

	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	drawer := &font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(colorPaper),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(initials)

	x := rect.Min.X + (rect.Dx()-w*scale)/2
	y := rect.Min.Y + (rect.Dy()+h*scale)/2

	scaled := imaging.Resize(tmp, w*scale, h*scale, imaging.NearestNeighbor)
	draw.Draw(dst,
		image.Rect(x, y-h*scale, x+w*scale, y),
		scaled, image.Point{}, draw.Over)
}
