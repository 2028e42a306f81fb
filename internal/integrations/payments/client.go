package payments

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Options параметры Checkout Session
type Options struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

// Client создаёт ссылки на предоплату бронирования через Stripe Checkout
type Client struct {
	sessions CheckoutSessions
	opts     Options
	log      Logger
}

// NewClient создает клиент поверх произвольной реализации CheckoutSessions
func NewClient(sessions CheckoutSessions, opts Options, log Logger) *Client {
	if opts.Currency == "" {
		opts.Currency = "cop"
	}
	return &Client{sessions: sessions, opts: opts, log: log}
}

// NewStripeClient создает клиент с API ключом Stripe
func NewStripeClient(secretKey string, opts Options, log Logger) *Client {
	sc := client.New(secretKey, nil)
	return NewClient(sc.CheckoutSessions, opts, log)
}

// ToMinorUnits переводит сумму в минимальные единицы валюты
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreatePaymentLink создаёт Checkout Session на сумму amount (в минимальных единицах валюты)
// и возвращает URL страницы оплаты. metadata сохраняется в сессии.
func (c *Client) CreatePaymentLink(ctx context.Context, amount int64, description string, metadata map[string]string) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(strings.ToLower(c.opts.Currency)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
					UnitAmount: stripe.Int64(amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(c.opts.SuccessURL),
		CancelURL:  stripe.String(c.opts.CancelURL),
	}
	params.Context = ctx
	params.IdempotencyKey = stripe.String(uuid.NewString())
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	session, err := c.sessions.New(params)
	if err != nil {
		c.log.Error("Failed to create checkout session: amount=%d, error=%v", amount, err)
		return "", fmt.Errorf("%w: CreatePaymentLink: %v", ErrGateway, err)
	}
	if session == nil || session.URL == "" {
		return "", ErrEmptyURL
	}

	c.log.Info("Checkout session created: id=%s, amount=%d", session.ID, amount)
	return session.URL, nil
}
