package utils

import (
	"crypto/rand"
	"math/big"
	"phonelink-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

// GenerateAuthCode returns a uniformly drawn code in [AuthCodeMin, AuthCodeMax].
func GenerateAuthCode() (int, error) {
	span := big.NewInt(int64(constvars.AuthCodeMax - constvars.AuthCodeMin + 1))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, err
	}
	return constvars.AuthCodeMin + int(n.Int64()), nil
}

func GenerateRequestID() string {
	return uuid.NewString()
}
