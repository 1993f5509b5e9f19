package service

// CodeGenerator produces random secrets and human-facing codes.
type CodeGenerator interface {
	// ResetToken returns a hex-encoded random password reset token.
	ResetToken() (string, error)

	// CouponCode returns a fresh loyalty coupon code.
	CouponCode() (string, error)
}
