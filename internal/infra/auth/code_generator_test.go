package auth

import (
	"encoding/hex"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_ResetToken(t *testing.T) {
	gen := NewCodeGenerator()

	token, err := gen.ResetToken()
	require.NoError(t, err)

	raw, err := hex.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	other, err := gen.ResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestCodeGenerator_CouponCode(t *testing.T) {
	gen := NewCodeGenerator()
	pattern := regexp.MustCompile(`^GIFT[A-Z0-9]{6}$`)

	for range 20 {
		code, err := gen.CouponCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}
