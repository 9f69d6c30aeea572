package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Foysalhossain/musicy-server/internal/auth"
	"github.com/Foysalhossain/musicy-server/internal/handlers"
	"github.com/Foysalhossain/musicy-server/internal/middleware"
	"github.com/Foysalhossain/musicy-server/internal/store"
	"github.com/Foysalhossain/musicy-server/internal/utils"
)

func SetupRouter(s *store.Store, tokens *auth.TokenService, intents handlers.IntentCreator, mailer *utils.Mailer) *mux.Router {
	router := mux.NewRouter()

	// Liveness endpoints
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("music is playing"))
	}).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	userHandler := handlers.NewUserHandler(s)
	classHandler := handlers.NewClassHandler(s)
	var receiptMailer handlers.ReceiptMailer
	if mailer != nil {
		receiptMailer = mailer
	}
	enrollmentHandler := handlers.NewEnrollmentHandler(s, receiptMailer)
	paymentHandler := handlers.NewPaymentHandler(intents)
	tokenHandler := handlers.NewTokenHandler(tokens)

	requireToken := middleware.RequireToken(tokens)

	router.HandleFunc("/instructors", userHandler.GetInstructors).Methods("GET")
	router.HandleFunc("/classes", classHandler.GetClasses).Methods("GET")
	router.HandleFunc("/jwt", tokenHandler.Issue).Methods("POST")

	router.Handle("/userclasses", requireToken(http.HandlerFunc(enrollmentHandler.Create))).Methods("POST")
	router.Handle("/userclasses", requireToken(http.HandlerFunc(enrollmentHandler.List))).Methods("GET")
	router.Handle("/userclasses/{email}", requireToken(http.HandlerFunc(enrollmentHandler.ListUnpaid))).Methods("GET")

	router.HandleFunc("/create-payment-intent", paymentHandler.CreateIntent).Methods("POST")
	router.HandleFunc("/payment/{id}", enrollmentHandler.ConfirmPayment).Methods("PATCH")
	router.HandleFunc("/payment/{email}", enrollmentHandler.ListPaid).Methods("GET")
	router.HandleFunc("/deleteclass/{id}", enrollmentHandler.Delete).Methods("DELETE")

	router.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/users", userHandler.GetUsers).Methods("GET")
	router.HandleFunc("/users/admin/{email}", userHandler.CheckAdmin).Methods("GET")
	router.HandleFunc("/makeadmin/{id}", userHandler.Promote).Methods("PATCH")
	router.HandleFunc("/makeinstructor/{id}", userHandler.Promote).Methods("PATCH")

	return router
}
