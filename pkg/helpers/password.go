package helpers

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor applied to every password hash. Raising it
// slows brute-force attempts at the cost of login latency.
const bcryptCost = bcrypt.DefaultCost

// HashPassword hashes the plain text password using bcrypt. The salt is
// generated by bcrypt itself, so two hashes of the same input differ.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password.
// Returns false for a wrong password or a malformed hash, never an error.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
