package helper

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foto siswa.jpg", "foto_siswa.jpg"},
		{"normal-file_1.png", "normal-file_1.png"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"laporan (final).webp", "laporan_final_.webp"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := generateUniqueFilename("photo.webp")
	b := generateUniqueFilename("photo.webp")
	if a == b {
		t.Fatalf("dua pemanggilan menghasilkan nama sama: %s", a)
	}
	if !strings.HasSuffix(a, "photo.webp") {
		t.Errorf("nama asli hilang: %s", a)
	}
}
