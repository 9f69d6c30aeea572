package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/Foysalhossain/musicy-server/internal/auth"
	"github.com/Foysalhossain/musicy-server/internal/config"
	"github.com/Foysalhossain/musicy-server/internal/database"
	"github.com/Foysalhossain/musicy-server/internal/payments"
	"github.com/Foysalhossain/musicy-server/internal/routes"
	"github.com/Foysalhossain/musicy-server/internal/store"
	"github.com/Foysalhossain/musicy-server/internal/utils"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Connect to MongoDB
	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Fatal("Failed to disconnect from MongoDB:", err)
		}
	}()
	log.Println("Pinged your deployment. You successfully connected to MongoDB!")

	// Shared collaborators, built once at startup
	recordStore := store.New(client, cfg.DatabaseName)
	tokens := auth.NewTokenService(cfg.TokenSecret)
	intents := payments.NewService(cfg.PaymentSecretKey)
	mailer := utils.NewMailer(cfg.SMTP)

	// Initialize router
	router := routes.SetupRouter(recordStore, tokens, intents, mailer)

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	// Wrap router with CORS
	handler := c.Handler(router)

	// Start server
	log.Printf("Music is playing on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
