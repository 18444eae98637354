package password

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the lowercase hex SHA-256 of the plain password. The
// upstream admin API authenticates against this exact unsalted digest; the
// scheme is owned by the platform backend and must match byte for byte.
func Digest(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
