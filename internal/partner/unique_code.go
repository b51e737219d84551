package partner

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const uniqueCodePrefix = "PART-"

// maxCodeAttempts bounds the collision-retry loop in Register. With a
// 2^32 code space a collision is already vanishingly unlikely; the
// ceiling only guards against a broken index or a systematic RNG fault.
const maxCodeAttempts = 10

// GenerateUniqueCode returns a candidate partner code: "PART-" followed
// by 8 uppercase hex characters drawn from 4 crypto-random bytes.
func GenerateUniqueCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return uniqueCodePrefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}
