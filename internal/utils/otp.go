package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerateNumericOTP returns a random one-time password of length digits 0-9.
func GenerateNumericOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
