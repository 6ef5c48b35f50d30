// Package hasher derives the pseudonymous id stored alongside anonymized data.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/dtroode/rewards-server/internal/model"
)

// Hash returns the lowercase hex SHA-256 of the decimal user id.
// Unsalted: the mapping must stay stable so withdrawal can find every row.
func Hash(userID model.UserID) string {
	sum := sha256.Sum256([]byte(userID.String()))
	return hex.EncodeToString(sum[:])
}
