package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateVerificationCode membuat kode numerik dengan panjang tertentu.
// Setiap digit diambil secara acak dan independen.
func GenerateVerificationCode(length int) (string, error) {
	if length <= 0 {
		length = 6
	}

	code := ""
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate verification code: %w", err)
		}
		code += fmt.Sprintf("%d", n.Int64())
	}

	return code, nil
}
