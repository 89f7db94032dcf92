package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for new hashes.
const PasswordCost = 10

// dummyHash is compared against when the username is unknown so that a
// failed lookup costs about as much as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("personalblog-dummy-password"), PasswordCost)

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}
	return string(hashedPassword), nil
}

// VerifyPassword reports whether password matches hash. A malformed hash
// never matches.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnPasswordCheck spends one bcrypt comparison without a real hash.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
