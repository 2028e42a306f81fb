package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type fakeSessions struct {
	params  *stripe.CheckoutSessionParams
	session *stripe.CheckoutSession
	err     error
}

func (f *fakeSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.params = params
	return f.session, f.err
}

func TestClient_CreatePaymentLink(t *testing.T) {
	sessions := &fakeSessions{session: &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}}
	c := NewClient(sessions, Options{Currency: "COP", SuccessURL: "https://agenda.test/ok", CancelURL: "https://agenda.test/cancel"}, logger.Nop())

	url, err := c.CreatePaymentLink(context.Background(), 2500000, "Reserva Cancha 1", map[string]string{"reservation_id": "42"})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", url)
	require.NotNil(t, sessions.params)
	assert.Equal(t, "payment", *sessions.params.Mode)
	require.Len(t, sessions.params.LineItems, 1)
	assert.Equal(t, int64(2500000), *sessions.params.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "cop", *sessions.params.LineItems[0].PriceData.Currency)
	assert.Equal(t, "42", sessions.params.Metadata["reservation_id"])
	assert.NotEmpty(t, *sessions.params.IdempotencyKey)
}

func TestClient_CreatePaymentLink_Errors(t *testing.T) {
	c := NewClient(&fakeSessions{}, Options{}, logger.Nop())
	_, err := c.CreatePaymentLink(context.Background(), 0, "x", nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	c = NewClient(&fakeSessions{err: errors.New("card_declined")}, Options{}, logger.Nop())
	_, err = c.CreatePaymentLink(context.Background(), 100, "x", nil)
	assert.ErrorIs(t, err, ErrGateway)
	assert.ErrorIs(t, err, domain.ErrExternalService)

	c = NewClient(&fakeSessions{session: &stripe.CheckoutSession{}}, Options{}, logger.Nop())
	_, err = c.CreatePaymentLink(context.Background(), 100, "x", nil)
	assert.ErrorIs(t, err, ErrEmptyURL)
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(2550), ToMinorUnits(25.5))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
}
