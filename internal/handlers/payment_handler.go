package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Foysalhossain/musicy-server/internal/payments"
)

// IntentCreator authorizes a charge for an amount in cents and returns the
// client-side confirmation secret.
type IntentCreator interface {
	CreateIntent(amount int64) (string, error)
}

type PaymentHandler struct {
	intents IntentCreator
}

func NewPaymentHandler(intents IntentCreator) *PaymentHandler {
	return &PaymentHandler{intents: intents}
}

type createIntentInput struct {
	Price float64 `json:"price"`
}

// CreateIntent creates a payment authorization for the given price.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var input createIntentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if input.Price <= 0 {
		respondError(w, http.StatusBadRequest, "Price must be a positive amount")
		return
	}

	clientSecret, err := h.intents.CreateIntent(payments.AmountInCents(input.Price))
	if err != nil {
		log.Printf("Failed to create payment intent: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create payment intent")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}
