// helpers/photo_storage.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"bimbelku_backend/internals/configs"
)

const (
	maxPhotoBytes = 5 * 1024 * 1024
	maxPhotoEdge  = 1600
	webpQuality   = 80
)

// SavePhotoWebP membaca foto dari multipart, decode (jpeg/png/webp),
// kecilkan ke maksimal 1600px sisi terpanjang, lalu simpan sebagai WebP q80
// di UPLOAD_DIR/<folder>/. Mengembalikan path publik relatif (/uploads/...).
func SavePhotoWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxPhotoBytes {
		return "", fmt.Errorf("ukuran foto melebihi 5MB (%dKB)", fileHeader.Size/1024)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file foto: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, io.LimitReader(src, maxPhotoBytes+1)); err != nil {
		return "", fmt.Errorf("gagal membaca file foto: %w", err)
	}
	if buf.Len() > maxPhotoBytes {
		return "", fmt.Errorf("ukuran foto melebihi 5MB")
	}

	img, err := decodePhoto(buf.Bytes())
	if err != nil {
		return "", err
	}

	// Downscale hanya kalau melebihi batas, jangan upscale foto kecil
	b := img.Bounds()
	if b.Dx() > maxPhotoEdge || b.Dy() > maxPhotoEdge {
		img = imaging.Fit(img, maxPhotoEdge, maxPhotoEdge, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	dir := filepath.Join(configs.UploadDir(), folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	filename := generateUniqueFilename("photo.webp")
	if err := os.WriteFile(filepath.Join(dir, filename), out.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan foto: %w", err)
	}

	return "/uploads/" + folder + "/" + filename, nil
}

// DeletePhoto menghapus file foto berdasarkan path publik /uploads/...
// Abaikan kalau path kosong atau bukan milik UPLOAD_DIR.
func DeletePhoto(publicPath string) error {
	p := strings.TrimSpace(publicPath)
	if p == "" || !strings.HasPrefix(p, "/uploads/") {
		return nil
	}
	rel := strings.TrimPrefix(p, "/uploads/")
	full := filepath.Join(configs.UploadDir(), filepath.Clean("/"+rel))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func decodePhoto(data []byte) (image.Image, error) {
	// image/jpeg & image/png terdaftar via blank import
	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	// coba webp
	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("format gambar tidak didukung (hanya JPEG/PNG/WebP)")
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SanitizeFilename: hapus karakter selain huruf, angka, titik, dash, underscore
func SanitizeFilename(filename string) string {
	return unsafeFileChars.ReplaceAllString(filename, "_")
}

func generateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	return fmt.Sprintf("%s-%s-%s", timestamp, uuidStr, SanitizeFilename(originalFilename))
}
