package auth

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const (
	resetTokenBytes    = 32
	couponCodePrefix   = "GIFT"
	couponCodeLength   = 6
	couponCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type randomCodeGenerator struct{}

// NewCodeGenerator returns a CodeGenerator backed by crypto/rand.
func NewCodeGenerator() service.CodeGenerator {
	return randomCodeGenerator{}
}

// ResetToken returns 32 random bytes, hex encoded.
func (randomCodeGenerator) ResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

// CouponCode returns GIFT followed by six uppercase alphanumerics.
func (randomCodeGenerator) CouponCode() (string, error) {
	code := make([]byte, couponCodeLength)
	limit := big.NewInt(int64(len(couponCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "failed to draw coupon character")
		}
		code[i] = couponCodeAlphabet[n.Int64()]
	}

	return couponCodePrefix + string(code), nil
}
