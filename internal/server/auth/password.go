package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest of plaintext. The salt is
// generated per call, so hashing the same password twice yields different
// digests.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the stored digest.
// A malformed digest counts as a mismatch rather than an error, so callers
// cannot tell a bad password apart from a corrupt record.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
