package payments

import "github.com/stripe/stripe-go/v76"

// CheckoutSessions создание Checkout Session в Stripe (реализуется checkout/session.Client)
type CheckoutSessions interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
