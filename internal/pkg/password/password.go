package password

import "golang.org/x/crypto/bcrypt"

// MinLength is the minimum accepted password length.
const MinLength = 8

// Hash hashes a plaintext password with bcrypt at the default cost.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored bcrypt hash.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Acceptable reports whether a candidate password meets the length policy.
func Acceptable(plain string) bool {
	return len(plain) >= MinLength
}
