package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/stripe/stripe-go/v82"

	"parkhub/internal/api"
	"parkhub/internal/auth"
	"parkhub/internal/config"
	"parkhub/internal/geocode"
	"parkhub/internal/inventory"
	"parkhub/internal/repository"
	"parkhub/internal/service"
)

func main() {
	cfg := config.Load()

	mongoDB, err := repository.NewMongoDatabase(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if cfg.StripeSecretKey != "" {
		stripe.Key = cfg.StripeSecretKey
	} else {
		log.Println("STRIPE_SECRET_KEY not set, checkout runs in mock mode")
	}

	bookingRepo := repository.NewBookingRepository(mongoDB)
	bookingSvc := service.NewBookingService(bookingRepo, service.NewSenderService())

	geocoder := geocode.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderUserAgent)
	searchSvc := service.NewSearchService(geocoder, inventory.New(nil))

	checkoutSvc := service.NewCheckoutService(cfg.StripeSecretKey, cfg.AppURL, service.NewStripeService())

	searchHandler := api.NewSearchHandler(searchSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	checkoutHandler := api.NewCheckoutHandler(checkoutSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/parking/search", searchHandler.Search).Methods("GET")
	r.HandleFunc("/api/checkout", checkoutHandler.CreateSession).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.ListBookings).Methods("GET")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")

	// Admin endpoints (protected); needs the credential database
	if cfg.DatabaseURL != "" {
		if cfg.JWTSecret == "" {
			log.Fatal("JWT_SECRET must be set when admin endpoints are enabled")
		}
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to open DB: %v", err)
		}
		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}

		adminAuthSvc := service.NewAdminAuthService(repository.NewAdminAuthRepository(db), cfg.JWTSecret)
		adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)
		adminHandler := api.NewAdminHandler(bookingSvc)

		r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

		admin := r.PathPrefix("/admin").Subrouter()
		admin.Use(auth.AdminAuthMiddleware(cfg.JWTSecret))
		admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
		admin.HandleFunc("/users", adminAuthHandler.CreateAdminUser).Methods("POST")
	} else {
		log.Println("DATABASE_URL not set, admin endpoints disabled")
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "Origin"}),
	)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, cors(r)))
}
