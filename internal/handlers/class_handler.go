package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/Foysalhossain/musicy-server/internal/models"
)

type ClassStore interface {
	ListClasses(ctx context.Context) ([]models.Class, error)
}

type ClassHandler struct {
	store ClassStore
}

func NewClassHandler(s ClassStore) *ClassHandler {
	return &ClassHandler{store: s}
}

// GetClasses lists all classes, most-enrolled first.
func (h *ClassHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.store.ListClasses(r.Context())
	if err != nil {
		log.Printf("Failed to fetch classes: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch classes")
		return
	}
	respondJSON(w, http.StatusOK, classes)
}
