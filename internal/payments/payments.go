package payments

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// AmountInCents converts a dollar price to integer minor units by
// truncation, matching what the payment processor expects.
func AmountInCents(price float64) int64 {
	return int64(price * 100)
}

// Service creates payment intents with the remote processor.
type Service struct{}

func NewService(secretKey string) *Service {
	stripe.Key = secretKey
	return &Service{}
}

// CreateIntent authorizes a card charge for the given amount in cents and
// returns only the client-side confirmation secret.
func (s *Service) CreateIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
