package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Stored credential format is "hex(key).hex(salt)". The parameters mirror the
// platform's historical hashes so seeded accounts keep working across
// reimplementations.
const (
	saltLength = 16
	keyLength  = 64

	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// VerifyPassword derives a key from the candidate password with the stored
// salt and compares in constant time. A malformed stored credential verifies
// as false, never as an error the caller could leak.
func VerifyPassword(password, stored string) bool {
	hashPart, saltPart, ok := strings.Cut(stored, ".")
	if !ok {
		return false
	}

	storedKey, err := hex.DecodeString(hashPart)
	if err != nil || len(storedKey) != keyLength {
		return false
	}
	salt, err := hex.DecodeString(saltPart)
	if err != nil {
		return false
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(storedKey, key) == 1
}
