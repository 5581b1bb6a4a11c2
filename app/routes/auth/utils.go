package auth

import (
	"golang.org/x/crypto/bcrypt"

	"school-records/app/config"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.BcryptCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a plaintext password against its stored hash.
// bcrypt's comparison is constant-time over the hash output.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
