package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port string

	// MongoDB (booking records)
	MongoURI string
	MongoDB  string

	// Postgres (admin credentials); empty disables the admin surface
	DatabaseURL string

	// Stripe; empty switches checkout into mock mode
	StripeSecretKey string

	// Public URL used for payment return links when no Origin header is sent
	AppURL string

	JWTSecret string

	// Nominatim geocoding
	GeocoderBaseURL   string
	GeocoderUserAgent string
}

// Load reads configuration from the environment, loading .env first if one
// exists.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "parkhub"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		AppURL:          getEnv("APP_URL", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),

		GeocoderBaseURL:   getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "ParkHub/1.0 (contact: help@parkhub.com)"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
