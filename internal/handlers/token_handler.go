package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Foysalhossain/musicy-server/internal/auth"
)

type TokenHandler struct {
	tokens *auth.TokenService
}

func NewTokenHandler(tokens *auth.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue signs the posted payload as a session token. The payload becomes
// the token's claims verbatim.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := h.tokens.Issue(payload)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to sign token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
