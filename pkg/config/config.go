package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	JWTSecret           string
	SessionExpiry       time.Duration
	ImageKitPublicKey   string
	ImageKitPrivateKey  string
	ImageKitURLEndpoint string
	ImageKitUploadURL   string
	UploadGrantExpiry   time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	sessionExpiry := 30 * 24 * time.Hour
	if exp := os.Getenv("SESSION_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			sessionExpiry = parsed
		}
	}

	grantExpiry := 30 * time.Minute
	if exp := os.Getenv("UPLOAD_GRANT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			grantExpiry = parsed
		}
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		SessionExpiry:       sessionExpiry,
		ImageKitPublicKey:   os.Getenv("IMAGEKIT_PUBLIC_KEY"),
		ImageKitPrivateKey:  os.Getenv("IMAGEKIT_PRIVATE_KEY"),
		ImageKitURLEndpoint: getEnv("IMAGEKIT_URL_ENDPOINT", "https://ik.imagekit.io/"),
		ImageKitUploadURL:   getEnv("IMAGEKIT_UPLOAD_URL", "https://upload.imagekit.io/api/v1/files/upload"),
		UploadGrantExpiry:   grantExpiry,
	}

	// Missing secrets are a fatal startup condition, not a per-request error.
	for name, value := range map[string]string{
		"DATABASE_URL":         cfg.DatabaseURL,
		"JWT_SECRET":           cfg.JWTSecret,
		"IMAGEKIT_PUBLIC_KEY":  cfg.ImageKitPublicKey,
		"IMAGEKIT_PRIVATE_KEY": cfg.ImageKitPrivateKey,
	} {
		if value == "" {
			log.Fatalf("%s environment variable is required", name)
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
