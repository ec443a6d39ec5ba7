package helper

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validasi Email (regex simple)
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func ValidateRegisterInput(email, password, coachingName, ownerName string) error {
	if !isValidEmail(strings.TrimSpace(email)) {
		return errors.New("Format email tidak valid")
	}
	if len(password) < 6 {
		return errors.New("Password minimal 6 karakter")
	}
	if strings.TrimSpace(coachingName) == "" {
		return errors.New("Nama lembaga wajib diisi")
	}
	if strings.TrimSpace(ownerName) == "" {
		return errors.New("Nama pemilik wajib diisi")
	}
	return nil
}

func ValidateLoginInput(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("Email wajib diisi")
	}
	if password == "" {
		return errors.New("Password wajib diisi")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
