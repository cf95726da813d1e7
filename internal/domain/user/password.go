package user

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

const MinPasswordLength = 6

func ValidatePassword(p string) error {
	if len(p) < MinPasswordLength {
		return httperr.Validation("weak_password", "Password must be at least 6 characters.")
	}
	return nil
}

func HashPassword(p string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, p string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(p)) == nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
