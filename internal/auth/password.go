package auth

import "golang.org/x/crypto/bcrypt"

// HashCost keeps hashing in the tens-of-milliseconds range on current hardware.
const HashCost = 10

// MinPasswordLength is enforced by callers before hashing, not here.
const MinPasswordLength = 6

// HashPassword derives a salted bcrypt hash from the plaintext. The salt and
// cost parameters are embedded in the returned string.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash. The comparison
// is constant-time; a mismatch is a false return, never an error.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
