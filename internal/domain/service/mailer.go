package service

import "context"

// PasswordResetMail carries what the reset email needs.
type PasswordResetMail struct {
	To       string
	Name     string
	ResetURL string
}

// OrderConfirmationLine is one purchased line in the confirmation email.
type OrderConfirmationLine struct {
	ProductID  int64
	Quantity   int
	PriceCents int64
}

// OrderConfirmationMail carries what the order confirmation email needs.
type OrderConfirmationMail struct {
	To         string
	Name       string
	OrderID    string
	TotalCents int64
	Lines      []OrderConfirmationLine
}

// Mailer delivers transactional email.
type Mailer interface {
	// SendPasswordReset sends the password reset link.
	SendPasswordReset(ctx context.Context, mail *PasswordResetMail) error

	// SendOrderConfirmation sends the order receipt.
	SendOrderConfirmation(ctx context.Context, mail *OrderConfirmationMail) error
}
