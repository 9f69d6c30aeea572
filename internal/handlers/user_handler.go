package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Foysalhossain/musicy-server/internal/models"
	"github.com/Foysalhossain/musicy-server/internal/store"
)

// UserStore is the slice of the record store the user routes need.
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListInstructors(ctx context.Context) ([]models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user models.User) (*store.InsertResult, error)
	SetUserRole(ctx context.Context, id primitive.ObjectID, role models.UserRole, updated time.Time) (*store.UpdateResult, error)
}

type UserHandler struct {
	store UserStore
}

func NewUserHandler(s UserStore) *UserHandler {
	return &UserHandler{store: s}
}

// GetUsers lists every user.
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		log.Printf("Failed to fetch users: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// GetInstructors lists users with the instructor role.
func (h *UserHandler) GetInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.store.ListInstructors(r.Context())
	if err != nil {
		log.Printf("Failed to fetch instructors: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch instructors")
		return
	}
	respondJSON(w, http.StatusOK, instructors)
}

type createUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoUrl"`
	Password string `json:"password"`
}

// CreateUser registers a user on signup. Signup is idempotent by email so
// social-login clients can post the same user on every visit.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input createUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if input.Email == "" || input.Name == "" {
		respondError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	existing, err := h.store.FindUserByEmail(r.Context(), input.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to check email availability")
		return
	}
	if existing != nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{"message": "user already exists"})
		return
	}

	newUser := models.User{
		Name:     input.Name,
		Email:    input.Email,
		PhotoURL: input.PhotoURL,
		Role:     models.RoleStudent,
	}

	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		newUser.Password = string(hashedPassword)
	}

	result, err := h.store.CreateUser(r.Context(), newUser)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// CheckAdmin reports whether the user with the given email has the admin
// role. Unknown emails are simply not admins.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := h.store.FindUserByEmail(r.Context(), email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	admin := user != nil && user.Role == models.RoleAdmin
	respondJSON(w, http.StatusOK, map[string]bool{"admin": admin})
}

type promoteInput struct {
	Role    models.UserRole `json:"role"`
	Updated time.Time       `json:"updated"`
}

// Promote sets a user's role. Serves both the make-admin and
// make-instructor routes; the role comes from the request body.
func (h *UserHandler) Promote(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var input promoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !input.Role.Valid() {
		respondError(w, http.StatusBadRequest, "Invalid role")
		return
	}
	if input.Updated.IsZero() {
		input.Updated = time.Now()
	}

	result, err := h.store.SetUserRole(r.Context(), id, input.Role, input.Updated)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update role")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
