package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Foysalhossain/musicy-server/internal/models"
	"github.com/Foysalhossain/musicy-server/internal/store"
)

type EnrollmentStore interface {
	CreateEnrollment(ctx context.Context, enrollment models.Enrollment) (*store.InsertResult, error)
	ListEnrollments(ctx context.Context) ([]models.Enrollment, error)
	ListEnrollmentsByEmail(ctx context.Context, email string, paid bool) ([]models.Enrollment, error)
	FindEnrollment(ctx context.Context, id primitive.ObjectID) (*models.Enrollment, error)
	MarkEnrollmentPaid(ctx context.Context, id primitive.ObjectID, paid bool, transactionID, date string) (*store.UpdateResult, error)
	DeleteEnrollment(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error)
}

// ReceiptMailer sends the payment confirmation mail. May be nil.
type ReceiptMailer interface {
	SendPaymentReceipt(to, className, transactionID, date string) error
}

type EnrollmentHandler struct {
	store  EnrollmentStore
	mailer ReceiptMailer
}

func NewEnrollmentHandler(s EnrollmentStore, mailer ReceiptMailer) *EnrollmentHandler {
	return &EnrollmentHandler{store: s, mailer: mailer}
}

type createEnrollmentInput struct {
	ClassID    string  `json:"classId"`
	ClassName  string  `json:"className"`
	Image      string  `json:"image"`
	Instructor string  `json:"instructor"`
	Price      float64 `json:"price"`
	Email      string  `json:"email"`
}

// Create records a user's selection of a class. Enrollments always start
// unpaid regardless of what the client sends.
func (h *EnrollmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input createEnrollmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if input.Email == "" || input.ClassName == "" {
		respondError(w, http.StatusBadRequest, "Email and class name are required")
		return
	}
	classID, err := primitive.ObjectIDFromHex(input.ClassID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid class ID")
		return
	}

	enrollment := models.Enrollment{
		ClassID:    classID,
		ClassName:  input.ClassName,
		Image:      input.Image,
		Instructor: input.Instructor,
		Price:      input.Price,
		Email:      input.Email,
		Paid:       false,
	}

	result, err := h.store.CreateEnrollment(r.Context(), enrollment)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create enrollment")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// List returns every enrollment.
func (h *EnrollmentHandler) List(w http.ResponseWriter, r *http.Request) {
	enrollments, err := h.store.ListEnrollments(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch enrollments")
		return
	}
	respondJSON(w, http.StatusOK, enrollments)
}

// ListUnpaid returns the email's enrollments still awaiting payment.
func (h *EnrollmentHandler) ListUnpaid(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	enrollments, err := h.store.ListEnrollmentsByEmail(r.Context(), email, false)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch enrollments")
		return
	}
	respondJSON(w, http.StatusOK, enrollments)
}

// ListPaid returns the email's paid enrollments.
func (h *EnrollmentHandler) ListPaid(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	enrollments, err := h.store.ListEnrollmentsByEmail(r.Context(), email, true)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch enrollments")
		return
	}
	respondJSON(w, http.StatusOK, enrollments)
}

type confirmPaymentInput struct {
	Payment       models.BoolFlag `json:"payment"`
	TransactionID string          `json:"transactionId"`
	Date          string          `json:"date"`
}

// ConfirmPayment marks an enrollment paid and records the transaction. A
// receipt is mailed afterwards when SMTP is configured; mail failures never
// fail the request.
func (h *EnrollmentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid enrollment ID")
		return
	}

	var input confirmPaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.TransactionID == "" {
		respondError(w, http.StatusBadRequest, "Transaction ID is required")
		return
	}

	result, err := h.store.MarkEnrollmentPaid(r.Context(), id, bool(input.Payment), input.TransactionID, input.Date)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update enrollment")
		return
	}

	if h.mailer != nil && result.MatchedCount > 0 && bool(input.Payment) {
		enrollment, err := h.store.FindEnrollment(r.Context(), id)
		if err == nil && enrollment != nil {
			go func() {
				if err := h.mailer.SendPaymentReceipt(enrollment.Email, enrollment.ClassName, input.TransactionID, input.Date); err != nil {
					log.Printf("Failed to send payment receipt: %v", err)
				}
			}()
		}
	}

	respondJSON(w, http.StatusOK, result)
}

// Delete removes an enrollment by id. Deleting a missing id succeeds with a
// zero deleted count.
func (h *EnrollmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid enrollment ID")
		return
	}

	result, err := h.store.DeleteEnrollment(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete enrollment")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
